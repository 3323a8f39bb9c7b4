
// Package color provides configuration for coloring runs using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents added text in bold green:
//
//	Adds(1, 32)
//
// This is equivalent to the following raw ANSI sequence: \033[1;32m.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"

	"github.com/rundiff/rundiff/internal/config"
)

// A Option makes it possible to configure custom colors in [textdiff.TerminalColors].
//
// [textdiff.TerminalColors]: https://pkg.go.dev/github.com/rundiff/rundiff/textdiff#TerminalColors
type Option func(*config.ColorConfig)

// Equals colors unchanged text. Calling it without parameters leaves unchanged text uncolored.
func Equals(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Equal = code
	}
}

// Adds colors added text.
func Adds(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Add = code
	}
}

// Removes colors removed text.
func Removes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Remove = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
