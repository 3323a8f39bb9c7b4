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


package main

import (
	"fmt"
	"strings"

	"github.com/rundiff/rundiff"
)

// check validates the runs for x and y: they have to reconstruct both inputs, be maximal and
// non-empty, and edit exactly d tokens. It returns the number of edited tokens.
func check(x, y []string, rs []rundiff.Run[string], d int) (int, error) {
	if got, want := strings.Join(rundiff.Old(rs), ""), strings.Join(x, ""); got != want {
		return 0, fmt.Errorf("runs don't reconstruct the old input")
	}
	if got, want := strings.Join(rundiff.New(rs), ""), strings.Join(y, ""); got != want {
		return 0, fmt.Errorf("runs don't reconstruct the new input")
	}
	edits := 0
	for i, r := range rs {
		if len(r.Tokens) == 0 {
			return 0, fmt.Errorf("run %d is empty", i)
		}
		if i > 0 && rs[i-1].Action == r.Action {
			return 0, fmt.Errorf("runs %d and %d have the same action %v", i-1, i, r.Action)
		}
		if r.Start != i || r.End != i+len(r.Tokens)-1 {
			return 0, fmt.Errorf("run %d has indices [%d, %d], want [%d, %d]", i, r.Start, r.End, i, i+len(r.Tokens)-1)
		}
		if r.Action != rundiff.Equal {
			edits += len(r.Tokens)
		}
	}
	if edits != d {
		return 0, fmt.Errorf("runs edit %d tokens, edit distance is %d", edits, d)
	}
	return edits, nil
}
