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

// absent is the s-coordinate reported for diagonals without an endpoint.
const absent = -1

// Frontier contains the endpoints of the furthest reaching d-paths for a single d.
type Frontier struct {
	d int

	// Endpoints on the active diagonals k = -d, -d+2, ..., d. The endpoint on diagonal k is stored
	// in s[(k+d)/2]. Only the s-coordinate is stored since t = s - k.
	s []int
}

// D returns the number of non-diagonal edges of the paths in this frontier.
func (f Frontier) D() int { return f.d }

// At returns the s-coordinate of the endpoint of the furthest reaching d-path on diagonal k or -1
// if there's no such endpoint.
func (f Frontier) At(k int) int {
	if k < -f.d || k > f.d || (k+f.d)%2 != 0 {
		return absent
	}
	i := (k + f.d) / 2
	if i >= len(f.s) {
		// The search stopped before reaching this diagonal.
		return absent
	}
	return f.s[i]
}

// History is the sequence of frontiers for d = 0, 1, ..., D collected by [Search].
type History struct {
	N, M      int // Lengths of x and y.
	Frontiers []Frontier
}

// D returns the edit distance, i.e. the minimal number of deletions and insertions.
func (h History) D() int { return len(h.Frontiers) - 1 }

// Search runs the greedy forward search for a minimal path from (0,0) to (N,M) and returns the
// frontiers of all d-paths up to and including the first one that reaches (N,M).
func Search[T comparable](x, y []T) History {
	return search(x, y, func(a, b T) bool { return a == b })
}

// SearchFunc is like [Search] but uses eq to compare elements.
func SearchFunc[T any](x, y []T, eq func(a, b T) bool) History {
	return search(x, y, eq)
}

func search[T any](x, y []T, eq func(a, b T) bool) History {
	n, m := len(x), len(y)

	// The v-array stores the furthest reaching endpoint of the most recent d-path on diagonal k in
	// v[v0+k]. The frontier for d is computed from the frontier for d-1 only and since the
	// diagonals for d and d-1 are disjoint, a single array is sufficient.
	diagonals := n + m
	v := make([]int, 2*diagonals+1)
	v0 := diagonals

	h := History{N: n, M: m}
	for d := 0; d <= diagonals; d++ {
		f := Frontier{d: d, s: make([]int, 0, d+1)}
		for k := -d; k <= d; k += 2 {
			k0 := v0 + k

			// Find the endpoint after the horizontal or vertical edge.
			var s int
			switch {
			case d == 0:
				// The 0-path starts at the origin.
				s = 0
			case k == -d:
				// Only a vertical edge from k+1 is possible.
				s = v[k0+1]
			case k == d:
				// Only a horizontal edge from k-1 is possible.
				s = v[k0-1] + 1
			case v[k0-1] < v[k0+1]:
				// The vertical edge from k+1 reaches further.
				s = v[k0+1]
			default:
				// The horizontal edge from k-1 reaches at least as far. Taking it when both reach
				// equally far prioritizes deletions over insertions.
				s = v[k0-1] + 1
			}
			t := s - k

			// Then follow the diagonals as long as possible.
			for s < n && t < m && eq(x[s], y[t]) {
				s++
				t++
			}

			v[k0] = s
			f.s = append(f.s, s)

			if s == n && t == m {
				h.Frontiers = append(h.Frontiers, f)
				return h
			}
		}
		h.Frontiers = append(h.Frontiers, f)
	}
	// There's always an (N+M)-path from (0,0) to (N,M).
	panic("never reached")
}
