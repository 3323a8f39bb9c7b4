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

// Branch describes how a path continues from a waypoint.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Branch
type Branch int

const (
	Terminal      Branch = iota // The end of the path at (N,M)
	FromDeletion                // A horizontal edge, deleting x[s]
	FromInsertion               // A vertical edge, inserting y[t]
)

// Waypoint is the endpoint of a furthest reaching d-path on the path found by [Backtrack].
type Waypoint struct {
	S, T   int
	Branch Branch
}

// Backtrack reconstructs the path found by [Search] from its history.
//
// The result starts with the terminal waypoint (N,M) and ends with the endpoint of the 0-path.
// Every waypoint except the first carries the branch that leads from it to the previous element
// of the result.
func Backtrack(h History) []Waypoint {
	s, t := h.N, h.M
	wps := make([]Waypoint, 0, len(h.Frontiers))
	wps = append(wps, Waypoint{S: s, T: t, Branch: Terminal})

	for d := h.D(); d > 0; d-- {
		k := s - t
		prev := h.Frontiers[d-1]

		// Candidates are the endpoints of the (d-1)-paths on k+1 (followed by a vertical edge)
		// and on k-1 (followed by a horizontal edge).
		upS, leftS := prev.At(k+1), prev.At(k-1)
		if upS == absent && leftS == absent {
			break
		}
		upT, leftT := upS-k-1, leftS-k+1

		// Pick the predecessor closer to (s, t), preferring the distance in s.
		upGap, leftGap := s-upS, s-leftS
		deletion := leftGap < upGap
		if leftGap == upGap {
			deletion = abs(leftT-t) < abs(upT-t)
		}

		if deletion {
			s, t = leftS, leftT
			wps = append(wps, Waypoint{S: s, T: t, Branch: FromDeletion})
		} else {
			s, t = upS, upT
			wps = append(wps, Waypoint{S: s, T: t, Branch: FromInsertion})
		}
	}
	return wps
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
