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


// rundiff compares two files and prints the runs necessary to convert from one to the other.
//
// Usage:
//
//	rundiff [-by line|word|char] [-format inline|runs|json] [-color] [-v] OLD NEW
//	rundiff -stdin < params.json
//
// With -stdin, the tokens are read from a JSON object {"old_arr": [...], "new_arr": [...]} and the
// runs are written as a JSON array of [tag, content, start, end] tuples.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rundiff/rundiff/textdiff"
	"golang.org/x/term"
)

type config struct {
	by      string
	format  string
	color   bool
	stdin   bool
	verbose bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("rundiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.by, "by", "line", "split input by line, word, or char")
	fs.StringVar(&cfg.format, "format", "inline", "output format: inline, runs, or json")
	fs.BoolVar(&cfg.color, "color", false, "use terminal colors instead of markers for inline output, the default if stdout is a terminal")
	fs.BoolVar(&cfg.stdin, "stdin", false, "read JSON diff parameters from stdin and write JSON runs")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var err error
	if cfg.stdin {
		if fs.NArg() > 0 {
			err = fmt.Errorf("unexpected command line arguments with -stdin: %v", fs.Args())
		} else {
			err = diffParams(logger, stdin, stdout)
		}
	} else {
		if fs.NArg() != 2 {
			err = fmt.Errorf("expected 2 files, got %d arguments: %v", fs.NArg(), fs.Args())
		} else {
			err = diffFiles(logger, &cfg, fs.Arg(0), fs.Arg(1), stdout)
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func diffParams(logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	var p textdiff.Params
	if err := json.NewDecoder(stdin).Decode(&p); err != nil {
		return fmt.Errorf("decoding parameters: %w", err)
	}
	start := time.Now()
	rs := textdiff.DiffParams(p)
	logger.Debug("diff", "old_tokens", len(p.Old), "new_tokens", len(p.New), "runs", len(rs), "duration", time.Since(start))
	if err := writeJSON(stdout, rs); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func diffFiles(logger *slog.Logger, cfg *config, oldPath, newPath string, stdout io.Writer) error {
	var split textdiff.Option
	switch cfg.by {
	case "line":
		split = textdiff.ByLine()
	case "word":
		split = textdiff.ByWord()
	case "char":
		split = textdiff.ByChar()
	default:
		return fmt.Errorf("invalid value for -by: %q", cfg.by)
	}

	old, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("reading old file: %w", err)
	}
	new, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("reading new file: %w", err)
	}

	start := time.Now()
	rs := textdiff.Diff(string(old), string(new), split)
	logger.Debug("diff", "old", oldPath, "new", newPath, "by", cfg.by, "runs", len(rs), "duration", time.Since(start))

	switch cfg.format {
	case "inline":
		var opts []textdiff.Option
		if cfg.color || isTerminal(stdout) {
			opts = append(opts, textdiff.TerminalColors())
		}
		_, err = io.WriteString(stdout, textdiff.Format(rs, opts...))
	case "runs":
		for _, r := range rs {
			if _, err = fmt.Fprintf(stdout, "%-3s %d %d %q\n", r.Action.Tag(), r.Start, r.End, r.Content); err != nil {
				break
			}
		}
	case "json":
		err = writeJSON(stdout, rs)
	default:
		return fmt.Errorf("invalid value for -format: %q", cfg.format)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, rs []textdiff.Run) error {
	if rs == nil {
		rs = []textdiff.Run{}
	}
	return json.NewEncoder(w).Encode(rs)
}
