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


package myers

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []string
		wantD         int
		wantFrontiers [][]int
	}{
		{
			name:          "empty",
			x:             nil,
			y:             nil,
			wantD:         0,
			wantFrontiers: [][]int{{0}},
		},
		{
			name:          "identical",
			x:             []string{"foo", "bar"},
			y:             []string{"foo", "bar"},
			wantD:         0,
			wantFrontiers: [][]int{{2}},
		},
		{
			name:          "x-empty",
			x:             nil,
			y:             []string{"foo", "bar"},
			wantD:         2,
			wantFrontiers: [][]int{{0}, {0, 1}, {0}},
		},
		{
			name:          "y-empty",
			x:             []string{"foo", "bar", "baz"},
			y:             nil,
			wantD:         3,
			wantFrontiers: [][]int{{0}, {0, 1}, {0, 1, 2}, {0, 1, 2, 3}},
		},
		{
			name:  "ABCABBA_to_CBABAC",
			x:     strings.Split("ABCABBA", ""),
			y:     strings.Split("CBABAC", ""),
			wantD: 5,
			wantFrontiers: [][]int{
				{0},
				{0, 1},
				{2, 2, 3},
				{3, 4, 5, 5},
				{3, 4, 5, 7, 7},
				{3, 4, 5, 7}, // stops at (7,6) on k=1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Search(tt.x, tt.y)
			if h.D() != tt.wantD {
				t.Errorf("Search(...).D() = %v, want %v", h.D(), tt.wantD)
			}
			if diff := cmp.Diff(tt.wantFrontiers, frontiers(h)); diff != "" {
				t.Errorf("Search(...) frontiers differ [-want,+got]:\n%s", diff)
			}

			hf := SearchFunc(tt.x, tt.y, func(a, b string) bool { return a == b })
			if diff := cmp.Diff(frontiers(h), frontiers(hf)); diff != "" {
				t.Errorf("SearchFunc(...) frontiers differ from Search(...) [-Search,+SearchFunc]:\n%s", diff)
			}
		})
	}
}

func TestFrontierAt(t *testing.T) {
	tests := []struct {
		f    Frontier
		k    int
		want int
	}{
		{Frontier{0, []int{4}}, 0, 4},
		{Frontier{0, []int{4}}, 1, -1},
		{Frontier{0, []int{4}}, -1, -1},
		{Frontier{2, []int{2, 2, 3}}, -2, 2},
		{Frontier{2, []int{2, 2, 3}}, 0, 2},
		{Frontier{2, []int{2, 2, 3}}, 2, 3},
		{Frontier{2, []int{2, 2, 3}}, 1, -1},  // wrong parity
		{Frontier{2, []int{2, 2, 3}}, -3, -1}, // out of range
		{Frontier{2, []int{2, 2, 3}}, 4, -1},  // out of range
		{Frontier{5, []int{3, 4, 5, 7}}, 1, 7},
		{Frontier{5, []int{3, 4, 5, 7}}, 3, -1}, // not computed
		{Frontier{5, []int{3, 4, 5, 7}}, 5, -1}, // not computed
	}
	for _, tt := range tests {
		if got := tt.f.At(tt.k); got != tt.want {
			t.Errorf("Frontier{d: %d, s: %v}.At(%d) = %d, want %d", tt.f.d, tt.f.s, tt.k, got, tt.want)
		}
	}
}

func TestBacktrack(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want []Waypoint
	}{
		{
			name: "empty",
			want: []Waypoint{{0, 0, Terminal}},
		},
		{
			name: "identical",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "bar"},
			want: []Waypoint{{2, 2, Terminal}},
		},
		{
			name: "x-empty",
			y:    []string{"foo", "bar"},
			want: []Waypoint{
				{0, 2, Terminal},
				{0, 1, FromInsertion},
				{0, 0, FromInsertion},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			want: []Waypoint{
				{3, 0, Terminal},
				{2, 0, FromDeletion},
				{1, 0, FromDeletion},
				{0, 0, FromDeletion},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []Waypoint{
				{7, 6, Terminal},
				{7, 5, FromInsertion},
				{5, 4, FromDeletion},
				{3, 1, FromInsertion},
				{1, 0, FromDeletion},
				{0, 0, FromDeletion},
			},
		},
		{
			name: "replace-with-common-prefix",
			x:    strings.Split("foo bar", ""),
			y:    strings.Split("foo baz", ""),
			want: []Waypoint{
				{7, 7, Terminal},
				{7, 6, FromInsertion},
				{6, 6, FromDeletion},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Backtrack(Search(tt.x, tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Backtrack(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestBacktrack_randomInputs(t *testing.T) {
	for i := range 20 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		t.Run(fmt.Sprintf("seed=%x", seed), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewChaCha8(seed))
			for range 50 {
				x := make([]byte, rng.IntN(40))
				for s := range x {
					x[s] = 'a' + byte(rng.IntN(4))
				}
				y := make([]byte, rng.IntN(40))
				for t := range y {
					y[t] = 'a' + byte(rng.IntN(4))
				}

				h := Search(x, y)
				if want := lcsDistance(x, y); h.D() != want {
					t.Fatalf("Search(%q, %q).D() = %d, want %d", x, y, h.D(), want)
				}
				checkPath(t, x, y, Backtrack(h))
			}
		})
	}
}

func FuzzBacktrack(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"))
	f.Add([]byte(""), []byte("abc"))
	f.Add([]byte("abc"), []byte(""))
	f.Fuzz(func(t *testing.T, x, y []byte) {
		if len(x)+len(y) > 512 {
			t.Skip("input too large")
		}
		h := Search(x, y)
		wps := Backtrack(h)
		if len(wps) != h.D()+1 {
			t.Errorf("Backtrack(...) returned %d waypoints for a %d-path", len(wps), h.D())
		}
		checkPath(t, x, y, wps)
	})
}

// checkPath verifies that wps describes a path through the edit graph from (0,0) to
// (len(x),len(y)).
func checkPath(t *testing.T, x, y []byte, wps []Waypoint) {
	t.Helper()
	if len(wps) == 0 {
		t.Fatal("empty path")
	}
	if w := wps[0]; w.S != len(x) || w.T != len(y) || w.Branch != Terminal {
		t.Fatalf("path doesn't end in (%d,%d): %v", len(x), len(y), w)
	}

	snake := func(s, t int) (int, int) {
		for s < len(x) && t < len(y) && x[s] == y[t] {
			s++
			t++
		}
		return s, t
	}

	s, u := snake(0, 0)
	for i := len(wps) - 1; i > 0; i-- {
		w := wps[i]
		if w.S != s || w.T != u {
			t.Fatalf("waypoint %v doesn't match position (%d,%d)", w, s, u)
		}
		switch w.Branch {
		case FromDeletion:
			s++
		case FromInsertion:
			u++
		default:
			t.Fatalf("unexpected branch at waypoint %v", w)
		}
		s, u = snake(s, u)
	}
	if s != len(x) || u != len(y) {
		t.Fatalf("path ends in (%d,%d), want (%d,%d)", s, u, len(x), len(y))
	}
}

func frontiers(h History) [][]int {
	out := make([][]int, len(h.Frontiers))
	for d, f := range h.Frontiers {
		if f.d != d {
			panic(fmt.Sprintf("frontier %d has d=%d", d, f.d))
		}
		out[d] = f.s
	}
	return out
}

// lcsDistance computes the edit distance using the textbook dynamic programming solution for the
// longest common subsequence.
func lcsDistance(x, y []byte) int {
	lcs := make([][]int, len(x)+1)
	for s := range lcs {
		lcs[s] = make([]int, len(y)+1)
	}
	for s := len(x) - 1; s >= 0; s-- {
		for t := len(y) - 1; t >= 0; t-- {
			if x[s] == y[t] {
				lcs[s][t] = lcs[s+1][t+1] + 1
			} else {
				lcs[s][t] = max(lcs[s+1][t], lcs[s][t+1])
			}
		}
	}
	return len(x) + len(y) - 2*lcs[0][0]
}
