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


package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rundiff/rundiff/internal/config"
	"github.com/rundiff/rundiff/textdiff"
	"github.com/rundiff/rundiff/textdiff/color"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "words",
			opts: []config.Option{
				textdiff.ByWord(),
			},
			want: config.Config{
				Granularity: config.GranularityWord,
			},
		},
		{
			name: "chars",
			opts: []config.Option{
				textdiff.ByChar(),
			},
			want: config.Config{
				Granularity: config.GranularityChar,
			},
		},
		{
			name: "granularity-override",
			opts: []config.Option{
				textdiff.ByChar(),
				textdiff.ByLine(),
			},
			want: config.Config{
				Granularity: config.GranularityLine,
			},
		},
		{
			name: "colors",
			opts: []config.Option{
				textdiff.TerminalColors(),
			},
			want: config.Config{
				Granularity: config.Default.Granularity,
				Color:       &config.DefaultColors,
			},
		},
		{
			name: "custom-colors",
			opts: []config.Option{
				textdiff.TerminalColors(color.Adds(1, 32), color.Equals(2)),
			},
			want: config.Config{
				Granularity: config.Default.Granularity,
				Color: &config.ColorConfig{
					Equal:  "\033[2m",
					Add:    "\033[1;32m",
					Remove: config.DefaultColors.Remove,
				},
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				textdiff.ByWord(),
				textdiff.TerminalColors(color.Removes(9)),
			},
			want: config.Config{
				Granularity: config.GranularityWord,
				Color: &config.ColorConfig{
					Equal:  config.DefaultColors.Equal,
					Add:    config.DefaultColors.Add,
					Remove: "\033[9m",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Split|config.TerminalColors)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptions_notAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FromOptions(...) didn't panic")
		}
		want := "Option textdiff.TerminalColors not allowed here"
		if r != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", r, want)
		}
	}()
	config.FromOptions([]config.Option{textdiff.TerminalColors()}, config.Split)
}
