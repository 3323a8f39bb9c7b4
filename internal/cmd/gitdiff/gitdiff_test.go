// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	oldFile := filepath.Join(dir, "old")
	newFile := filepath.Join(dir, "new")
	if err := os.WriteFile(oldFile, []byte("the quick brown fox\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(newFile, []byte("the slow brown fox\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	const (
		oldHex = "0123456789abcdef0123456789abcdef01234567"
		newHex = "fedcba9876543210fedcba9876543210fedcba98"
	)

	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{
			name: "words",
			args: []string{"gitdiff", "fox.txt", oldFile, oldHex, "100644", newFile, newHex, "100644"},
			want: "diff --git a/fox.txt b/fox.txt\n" +
				"index 0123456789..fedcba9876 100644\n" +
				"--- a/fox.txt\n" +
				"+++ b/fox.txt\n" +
				"the [-quick-]{+slow+} brown fox\n",
		},
		{
			name: "lines-colored",
			args: []string{"gitdiff", "fox.txt", oldFile, oldHex, "100644", newFile, newHex, "100644"},
			env:  map[string]string{"RUNDIFF_BY": "line", "RUNDIFF_COLOR": "1"},
			want: "diff --git a/fox.txt b/fox.txt\n" +
				"index 0123456789..fedcba9876 100644\n" +
				"--- a/fox.txt\n" +
				"+++ b/fox.txt\n" +
				"\033[31mthe quick brown fox\033[0m\n" +
				"\033[32mthe slow brown fox\033[0m\n",
		},
		{
			name: "new-file-renamed",
			args: []string{"gitdiff", "a.txt", "/dev/null", oldHex, ".", newFile, newHex, "100644", "b.txt", "similarity index 0%\n"},
			want: "diff --git a/a.txt b/b.txt\n" +
				"index 0123456789..fedcba9876 100644\n" +
				"--- a/a.txt\n" +
				"+++ b/b.txt\n" +
				"{+the slow brown fox\n+}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got strings.Builder
			if err := run(tt.args, func(k string) string { return tt.env[k] }, &got); err != nil {
				t.Fatalf("run(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.String()); diff != "" {
				t.Errorf("run(...) output is different (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"too-few-args", []string{"gitdiff", "a.txt"}, nil},
		{"missing-file", []string{"gitdiff", "a.txt", "/does/not/exist", "0", "100644", "/dev/null", "0", "."}, nil},
		{"invalid-granularity", []string{"gitdiff", "a.txt", "/dev/null", "0", ".", "/dev/null", "0", "."}, map[string]string{"RUNDIFF_BY": "sentence"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got strings.Builder
			if err := run(tt.args, func(k string) string { return tt.env[k] }, &got); err == nil {
				t.Errorf("run(%v) succeeded, want error", tt.args)
			}
		})
	}
}
