// Package benchmarks compares the line diffs of this module with other Go diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/rundiff/rundiff"
	"github.com/rundiff/rundiff/textdiff"
	"github.com/sergi/go-diff/diffmatchpatch"
	znkr "znkr.io/diff"
)

const (
	prefixEqual  = " "
	prefixRemove = "-"
	prefixAdd    = "+"
)

// Impl is a diff library. Diff returns the lines of x and y prefixed by " ", "-", or "+", possibly
// with a header. Not all libraries produce a unified diff, but the output is close enough to count
// the edited lines.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "rundiff",
		Diff: func(x, y []byte) []byte {
			var buf bytes.Buffer
			for _, r := range textdiff.Diff(string(x), string(y), textdiff.ByLine()) {
				switch r.Action {
				case rundiff.Equal:
					writeLines(&buf, prefixEqual, r.Content)
				case rundiff.Remove:
					writeLines(&buf, prefixRemove, r.Content)
				case rundiff.Add:
					writeLines(&buf, prefixAdd, r.Content)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "znkr",
		Diff: func(x, y []byte) []byte {
			var buf bytes.Buffer
			for _, e := range znkr.Edits(textdiff.Split(string(x)), textdiff.Split(string(y))) {
				switch e.Op {
				case znkr.Match:
					writeLines(&buf, prefixEqual, e.X)
				case znkr.Delete:
					writeLines(&buf, prefixRemove, e.X)
				case znkr.Insert:
					writeLines(&buf, prefixAdd, e.Y)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			for _, diff := range diffs {
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					writeLines(&buf, prefixAdd, diff.Text)
				case diffmatchpatch.DiffDelete:
					writeLines(&buf, prefixRemove, diff.Text)
				case diffmatchpatch.DiffEqual:
					writeLines(&buf, prefixEqual, diff.Text)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			a := 0
			for _, ch := range changes {
				for ; a < ch.A; a++ {
					writeLines(&buf, prefixEqual, string(d.x[a]))
				}
				for i := range ch.Del {
					writeLines(&buf, prefixRemove, string(d.x[ch.A+i]))
					a++
				}
				for i := range ch.Ins {
					writeLines(&buf, prefixAdd, string(d.y[ch.B+i]))
				}
			}
			for ; a < len(d.x); a++ {
				writeLines(&buf, prefixEqual, string(d.x[a]))
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

// Lookup returns the library with the given name.
func Lookup(name string) (Impl, bool) {
	for _, impl := range Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}

// writeLines writes every line in text with the prefix. A missing newline at the end is added.
func writeLines(buf *bytes.Buffer, prefix, text string) {
	for line := range strings.Lines(text) {
		buf.WriteString(prefix)
		buf.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			buf.WriteByte('\n')
		}
	}
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
