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


// Package rundiff computes a minimal edit script between two slices and describes it as a sequence
// of runs of equal, added, and removed elements.
//
// The main function is [Diff]. The elements of the slices are tokens chosen by the caller, for
// example characters, words, or lines. For a diff of text, please see
// [github.com/rundiff/rundiff/textdiff], which takes care of splitting the text.
//
// The diff is computed with Myers' greedy algorithm and is always minimal: the number of added and
// removed elements equals the edit distance between both inputs. When several minimal diffs exist,
// the same one is always chosen, deletions are preferred over insertions.
//
// Performance: The time complexity is O((N+M)D) and the space complexity is O(D²) where N =
// len(x), M = len(y), and D is the edit distance. For inputs with few similarities, this is
// quadratic in the input size, callers should bound the input size if that's a concern.
package rundiff
