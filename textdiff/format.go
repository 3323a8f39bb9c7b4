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

	"github.com/rundiff/rundiff"
	"github.com/rundiff/rundiff/internal/config"
)

const (
	removeStart = "[-"
	removeEnd   = "-]"
	addStart    = "{+"
	addEnd      = "+}"
	colorReset  = "\033[0m"
)

// Format renders runs inline: Equal content verbatim, removed content as [-text-] and added
// content as {+text+}. With [TerminalColors], the markers are replaced by colors.
//
// The following options are supported: [TerminalColors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Format(rs []Run, opts ...Option) string {
	cfg := config.FromOptions(opts, config.TerminalColors)

	var b strings.Builder
	for _, r := range rs {
		if cfg.Color != nil {
			writeColored(&b, colorOf(cfg.Color, r.Action), r.Content)
			continue
		}
		switch r.Action {
		case rundiff.Equal:
			b.WriteString(r.Content)
		case rundiff.Remove:
			b.WriteString(removeStart)
			b.WriteString(r.Content)
			b.WriteString(removeEnd)
		case rundiff.Add:
			b.WriteString(addStart)
			b.WriteString(r.Content)
			b.WriteString(addEnd)
		default:
			panic("never reached")
		}
	}
	return b.String()
}

func colorOf(cc *config.ColorConfig, a rundiff.Action) string {
	switch a {
	case rundiff.Equal:
		return cc.Equal
	case rundiff.Add:
		return cc.Add
	case rundiff.Remove:
		return cc.Remove
	default:
		panic("never reached")
	}
}

// writeColored writes s in color, resetting the color before every newline so that colors don't
// bleed into the next line.
func writeColored(b *strings.Builder, color, s string) {
	if color == "" {
		b.WriteString(s)
		return
	}
	for s != "" {
		line, rest, found := strings.Cut(s, "\n")
		if line != "" {
			b.WriteString(color)
			b.WriteString(line)
			b.WriteString(colorReset)
		}
		if found {
			b.WriteByte('\n')
		}
		s = rest
	}
}
