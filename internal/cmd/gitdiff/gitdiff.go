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


// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// It prints a word diff of every changed file with removed and added words marked inline:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// Terminal colors are used instead of markers if stdout is a terminal. Set RUNDIFF_COLOR to 1 or 0
// to force colors on or off and RUNDIFF_BY to char or line to change the granularity.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rundiff/rundiff/textdiff"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args, os.Getenv, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string, w io.Writer) error {
	// git passes 7 arguments, plus the new path and a rename header for renames.
	if len(args) != 8 && len(args) != 10 {
		return fmt.Errorf("expected 7 or 9 arguments, got %v: %v", len(args)-1, args[1:])
	}

	path, oldFile, oldHex, newFile, newHex, newMode := args[1], args[2], args[3], args[5], args[6], args[7]
	newPath := path
	if len(args) == 10 {
		newPath = args[8]
	}

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %w", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %w", err)
	}

	var opts []textdiff.Option
	switch by := getenv("RUNDIFF_BY"); by {
	case "", "word":
		opts = append(opts, textdiff.ByWord())
	case "char":
		opts = append(opts, textdiff.ByChar())
	case "line":
		opts = append(opts, textdiff.ByLine())
	default:
		return fmt.Errorf("invalid value for RUNDIFF_BY: %q", by)
	}
	var format []textdiff.Option
	switch c := getenv("RUNDIFF_COLOR"); {
	case c == "1", c == "" && isTerminal(w):
		format = append(format, textdiff.TerminalColors())
	}

	out := textdiff.Format(textdiff.Diff(old, new, opts...), format...)

	if _, err := fmt.Fprintf(w, "diff --git a/%s b/%s\nindex %s..%s %s\n--- a/%s\n+++ b/%s\n", path, newPath, short(oldHex), short(newHex), newMode, path, newPath); err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func readFile(name string) (string, error) {
	if name == "/dev/null" {
		return "", nil
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func short(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}
