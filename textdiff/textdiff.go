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


// Package textdiff provides functions to compare text by line, word, or character and to render
// the result.
package textdiff

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rundiff/rundiff"
	"github.com/rundiff/rundiff/internal/config"
)

// Run is a maximal sequence of tokens with the same action, with the tokens concatenated into
// Content. Start and End have the same meaning as in [rundiff.Run].
//
// The JSON encoding of a run is the array [tag, content, start, end], where tag is one of "EQ",
// "ADD", or "RM".
type Run struct {
	Action     rundiff.Action
	Content    string
	Start, End int
}

// MarshalJSON implements [json.Marshaler].
func (r Run) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]any{r.Action.Tag(), r.Content, r.Start, r.End})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *Run) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding run: %w", err)
	}
	if len(raw) != 4 {
		return fmt.Errorf("decoding run: want 4 elements, got %d", len(raw))
	}
	var (
		tag string
		out Run
	)
	for i, dst := range []any{&tag, &out.Content, &out.Start, &out.End} {
		if err := json.Unmarshal(raw[i], dst); err != nil {
			return fmt.Errorf("decoding run element %d: %w", i, err)
		}
	}
	a, err := rundiff.ParseAction(tag)
	if err != nil {
		return fmt.Errorf("decoding run: %w", err)
	}
	out.Action = a
	*r = out
	return nil
}

// Diff splits x and y into tokens and returns the runs necessary to convert from one to the other.
//
// The following options are supported: [ByLine], [ByWord], [ByChar]
func Diff(x, y string, opts ...Option) []Run {
	cfg := config.FromOptions(opts, config.Split)
	return DiffTokens(splitText(x, cfg.Granularity), splitText(y, cfg.Granularity))
}

// DiffTokens compares two token lists and returns the runs necessary to convert from one to the
// other.
func DiffTokens(x, y []string) []Run {
	rs := rundiff.Diff(x, y)
	if len(rs) == 0 {
		return nil
	}
	out := make([]Run, len(rs))
	for i, r := range rs {
		out[i] = Run{
			Action:  r.Action,
			Content: strings.Join(r.Tokens, ""),
			Start:   r.Start,
			End:     r.End,
		}
	}
	return out
}

// Params are the parameters of a token diff as exchanged in JSON.
type Params struct {
	Old []string `json:"old_arr"`
	New []string `json:"new_arr"`
}

// DiffParams is a shorthand for DiffTokens(p.Old, p.New).
func DiffParams(p Params) []Run {
	return DiffTokens(p.Old, p.New)
}
