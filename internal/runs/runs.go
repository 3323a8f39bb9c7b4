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


// Package runs contains the run resolver, it turns a path through the edit graph into runs, the
// internal representation that's translated to the user facing API.
package runs

import (
	"fmt"

	"github.com/rundiff/rundiff/internal/myers"
)

// Action describes the edit operation of a run.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Action
type Action int

const (
	Equal  Action = iota // Elements present in both inputs
	Add                  // Elements inserted from the right input
	Remove               // Elements deleted from the left input
)

// Tag returns the wire representation of a: "EQ", "ADD", or "RM".
func (a Action) Tag() string {
	switch a {
	case Equal:
		return "EQ"
	case Add:
		return "ADD"
	case Remove:
		return "RM"
	default:
		return a.String()
	}
}

// ParseTag is the inverse of [Action.Tag].
func ParseTag(tag string) (Action, error) {
	switch tag {
	case "EQ":
		return Equal, nil
	case "ADD":
		return Add, nil
	case "RM":
		return Remove, nil
	default:
		return 0, fmt.Errorf("unknown action tag %q", tag)
	}
}

// Run describes a maximal sequence of consecutive elements with the same action.
type Run struct {
	Action Action

	// Element range of the run, x[Lo:Hi] for Equal and Remove, y[Lo:Hi] for Add.
	Lo, Hi int

	// Start is the position of the run in the list of runs. End is incremented for every element
	// merged into the run, i.e. End = Start + Hi - Lo - 1.
	Start, End int
}

// Resolve walks the path described by wps from (0,0) to (n,m) and returns the merged runs.
//
// The waypoints must be ordered as returned by [myers.Backtrack], i.e. the origin side is at the
// end. The function eq must report if x[s] and y[t] are equal.
//
// Resolve panics if the waypoints don't describe a path through the edit graph, this can only
// happen if the invariants of the search were violated.
func Resolve(n, m int, eq func(s, t int) bool, wps []myers.Waypoint) []Run {
	r := resolver{n: n, m: m, eq: eq}

	// Handle the common prefix.
	s, t := r.advance(0, 0)

	for i := len(wps) - 1; i >= 0; i-- {
		w := wps[i]
		if w.Branch == myers.Terminal {
			break
		}
		if w.S != s || w.T != t {
			panic(fmt.Sprintf("waypoint (%d,%d) is not on the path at (%d,%d)", w.S, w.T, s, t))
		}

		switch w.Branch {
		case myers.FromDeletion:
			if s >= n {
				panic(fmt.Sprintf("deletion at s=%d outside of x with length %d", s, n))
			}
			r.push(Remove, s)
			s++
		case myers.FromInsertion:
			if t >= m {
				panic(fmt.Sprintf("insertion at t=%d outside of y with length %d", t, m))
			}
			r.push(Add, t)
			t++
		default:
			panic(fmt.Sprintf("unknown branch: %v", w.Branch))
		}
		s, t = r.advance(s, t)
	}

	if s != n || t != m {
		panic(fmt.Sprintf("path ends in (%d,%d) instead of (%d,%d)", s, t, n, m))
	}
	return r.runs
}

type resolver struct {
	n, m int
	eq   func(s, t int) bool
	runs []Run
}

// advance follows the diagonal from (s, t) as long as possible.
func (r *resolver) advance(s, t int) (int, int) {
	for s < r.n && t < r.m && r.eq(s, t) {
		r.push(Equal, s)
		s++
		t++
	}
	return s, t
}

// push appends the element at pos with action a, either by extending the last run or by starting
// a new one.
func (r *resolver) push(a Action, pos int) {
	if len(r.runs) > 0 {
		last := &r.runs[len(r.runs)-1]
		if last.Action == a {
			if last.Hi != pos {
				panic(fmt.Sprintf("%v element at %d doesn't extend run %d:%d", a, pos, last.Lo, last.Hi))
			}
			last.Hi++
			last.End++
			return
		}
	}
	i := len(r.runs)
	r.runs = append(r.runs, Run{Action: a, Lo: pos, Hi: pos + 1, Start: i, End: i})
}
