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
	"github.com/rundiff/rundiff/internal/config"
	"github.com/rundiff/rundiff/textdiff/color"
)

// Option configures the behavior of functions in this package.
type Option = config.Option

// ByLine splits text into lines. Every line includes its trailing newline, if any. This is the
// default.
func ByLine() Option {
	return split(config.GranularityLine)
}

// ByWord splits text into words following the word boundaries of Unicode Standard Annex #29.
// Whitespace and punctuation between words are tokens of their own.
func ByWord() Option {
	return split(config.GranularityWord)
}

// ByChar splits text into user-perceived characters (extended grapheme clusters).
func ByChar() Option {
	return split(config.GranularityChar)
}

func split(g config.Granularity) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Granularity = g
		return config.Split
	}
}

// TerminalColors configures [Format] to use ANSI escape sequences instead of markers. Without
// options, removed text is red and added text is green.
func TerminalColors(opts ...color.Option) Option {
	return func(cfg *config.Config) config.Flag {
		cc := config.DefaultColors
		for _, opt := range opts {
			opt(&cc)
		}
		cfg.Color = &cc
		return config.TerminalColors
	}
}
