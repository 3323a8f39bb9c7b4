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


// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// textdiff.Option.
package config

// Granularity describes how text is split into tokens.
type Granularity int

const (
	// Split text into lines, every line includes its newline character.
	GranularityLine Granularity = iota

	// Split text into words as defined by Unicode Standard Annex #29. The whitespace and punctuation
	// between words are tokens too.
	GranularityWord

	// Split text into user-perceived characters (extended grapheme clusters).
	GranularityChar
)

// ColorConfig contains the SGR escape sequences used to color runs. An empty sequence leaves the
// run uncolored.
type ColorConfig struct {
	Equal  string
	Add    string
	Remove string
}

// DefaultColors is the color configuration used if no custom colors are provided.
var DefaultColors = ColorConfig{
	Equal:  "",
	Add:    "\033[32m",
	Remove: "\033[31m",
}

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// Granularity used to split text into tokens.
	Granularity Granularity

	// If set, runs are formatted using terminal colors instead of markers.
	Color *ColorConfig
}

// Default is the default configuration.
var Default = Config{
	Granularity: GranularityLine,
	Color:       nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Split Flag = 1 << iota
	TerminalColors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Split:
		return "textdiff.ByLine, textdiff.ByWord, or textdiff.ByChar"
	case TerminalColors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
