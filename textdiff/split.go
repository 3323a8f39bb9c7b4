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


package textdiff

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/rundiff/rundiff/internal/config"
)

// Split splits text into tokens. Splitting is lossless, concatenating the tokens yields text.
//
// The following options are supported: [ByLine], [ByWord], [ByChar]
func Split(text string, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.Split)
	return splitText(text, cfg.Granularity)
}

func splitText(text string, g config.Granularity) []string {
	if text == "" {
		return nil
	}
	switch g {
	case config.GranularityLine:
		return splitLines(text)
	case config.GranularityWord:
		tokens := words.FromString(text)
		var out []string
		for tokens.Next() {
			out = append(out, tokens.Value())
		}
		return out
	case config.GranularityChar:
		tokens := graphemes.FromString(text)
		out := make([]string, 0, len(text))
		for tokens.Next() {
			out = append(out, tokens.Value())
		}
		return out
	default:
		panic("never reached")
	}
}

// splitLines splits s after every newline. A last line without newline is still a line.
func splitLines(s string) []string {
	n := strings.Count(s, "\n")
	if s[len(s)-1] != '\n' {
		n++
	}
	lines := make([]string, 0, n)
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
