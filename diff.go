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


package rundiff

import (
	"github.com/rundiff/rundiff/internal/myers"
	"github.com/rundiff/rundiff/internal/runs"
)

// Action describes the edit operation of a [Run].
type Action = runs.Action

const (
	Equal  = runs.Equal  // Elements present in both slices
	Add    = runs.Add    // Elements inserted from the right slice
	Remove = runs.Remove // Elements deleted from the left slice
)

// ParseAction returns the action for a tag as returned by [Action.Tag] ("EQ", "ADD", or "RM").
func ParseAction(tag string) (Action, error) {
	return runs.ParseTag(tag)
}

// Run describes a maximal sequence of consecutive elements with the same action. Two adjacent runs
// never have the same action.
//
//   - For Equal and Remove, Tokens is a sub-slice of x.
//   - For Add, Tokens is a sub-slice of y.
//
// Start is the position of the run in the list of runs. End starts at Start and is incremented for
// every additional token merged into the run, i.e. End = Start + len(Tokens) - 1. Start and End
// are not positions in x or y.
type Run[T any] struct {
	Action     Action
	Tokens     []T
	Start, End int
}

// Diff compares the contents of x and y and returns the runs necessary to convert from one to the
// other.
//
// If x and y are identical and not empty, the output is a single Equal run. If both are empty, the
// output has length zero.
//
// The output is deterministic: Identical inputs always result in identical outputs.
func Diff[T comparable](x, y []T) []Run[T] {
	h := myers.Search(x, y)
	eq := func(s, t int) bool { return x[s] == y[t] }
	return build(x, y, runs.Resolve(len(x), len(y), eq, myers.Backtrack(h)))
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns the
// runs necessary to convert from one to the other.
//
// The result is the same as the result of [Diff] if eq is equivalent to ==.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) []Run[T] {
	h := myers.SearchFunc(x, y, eq)
	eq0 := func(s, t int) bool { return eq(x[s], y[t]) }
	return build(x, y, runs.Resolve(len(x), len(y), eq0, myers.Backtrack(h)))
}

// Distance returns the edit distance between x and y, that is the minimal number of deletions and
// insertions to convert from one to the other.
func Distance[T comparable](x, y []T) int {
	return myers.Search(x, y).D()
}

func build[T any](x, y []T, rs []runs.Run) []Run[T] {
	if len(rs) == 0 {
		return nil
	}
	out := make([]Run[T], len(rs))
	for i, r := range rs {
		src := x
		if r.Action == Add {
			src = y
		}
		out[i] = Run[T]{
			Action: r.Action,
			Tokens: src[r.Lo:r.Hi:r.Hi],
			Start:  r.Start,
			End:    r.End,
		}
	}
	return out
}

// Old returns the left input of the diff that resulted in rs.
func Old[T any](rs []Run[T]) []T {
	return collect(rs, Add)
}

// New returns the right input of the diff that resulted in rs.
func New[T any](rs []Run[T]) []T {
	return collect(rs, Remove)
}

// collect concatenates the tokens of all runs except the ones with action skip.
func collect[T any](rs []Run[T], skip Action) []T {
	n := 0
	for _, r := range rs {
		if r.Action != skip {
			n += len(r.Tokens)
		}
	}
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for _, r := range rs {
		if r.Action != skip {
			out = append(out, r.Tokens...)
		}
	}
	return out
}
