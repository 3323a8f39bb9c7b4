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


// Package myers contains an implementation of Myers' greedy algorithm that keeps the complete
// search history to reconstruct the path.
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For simplicity, let's say that T is the []byte representation of string and the inputs are x =
// "ABCABBA" and y = "CBABAC". Then we can represent all possible edits from x to y with the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Every vertex corresponds to a state (s, t): the first s elements of x and the first t elements
// of y have been accounted for. A step to the right deletes x[s], a step down inserts y[t] and a
// diagonal step, which only exists where x[s] == y[t], is a match. Horizontal and vertical edges
// cost 1, diagonal edges are free. A minimal diff is a minimum-cost path from (0,0) to (N,M).
//
// We use s and t for the horizontal and vertical coordinates and k = s - t for diagonals. A
// D-path is a path with exactly D non-diagonal edges. A D-path ends on a diagonal in {-D, -D+2,
// ..., D-2, D} and the furthest reaching D-path on diagonal k is a furthest reaching (D-1)-path on
// k-1 followed by a horizontal edge, or one on k+1 followed by a vertical edge, followed by as
// many diagonal edges as possible.
//
// [Search] runs the forward search and records the endpoints of all furthest reaching D-paths, for
// every D, in a [History]. [Backtrack] walks that history back from (N,M) to recover the path.
// Keeping the whole history costs O(D²) memory but it makes the path reconstruction a simple walk
// instead of the recursive divide and conquer of the linear space variant.
//
// Several minimal paths usually exist. Which one is produced is determined by two tie-breaking
// rules that must not change, because they define the output:
//
//   - During the search, when the (D-1)-paths on k-1 and k+1 reach equally far, the horizontal
//     edge (a deletion) is taken.
//   - During the backtrace, the predecessor closer in s wins. If both are equally close, the one
//     closer in t wins.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
