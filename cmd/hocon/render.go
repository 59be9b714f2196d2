// Copyright 2026 The HOCON-Go Authors
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

	"gopkg.in/yaml.v3"

	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

// rawNumber renders a decimal exactly as entered, in both JSON (as a bare
// number token) and YAML (as an unquoted scalar), instead of round-tripping
// it through float64.
type rawNumber string

func (n rawNumber) MarshalJSON() ([]byte, error) {
	return []byte(n), nil
}

func (n rawNumber) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: string(n)}, nil
}

// toPlain converts a fully resolved ConfigValue into plain Go values
// (map[string]interface{}, []interface{}, string, bool, rawNumber, nil)
// suitable for json.Marshal or yaml.Marshal. It is a CLI-only convenience,
// not part of the resolver's contract; full HOCON serialization back to
// text lives outside this module entirely.
func toPlain(v adt.Value) (interface{}, error) {
	switch x := v.(type) {
	case *adt.Null:
		return nil, nil
	case *adt.Bool:
		return x.B, nil
	case *adt.Num:
		return rawNumber(x.String()), nil
	case *adt.Str:
		return x.S, nil
	case *adt.List:
		out := make([]interface{}, len(x.Items))
		for i, item := range x.Items {
			p, err := toPlain(item)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case *adt.Object:
		out := make(map[string]interface{}, len(x.Entries))
		for _, e := range x.Entries {
			p, err := toPlain(e.Value)
			if err != nil {
				return nil, err
			}
			out[e.Key] = p
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot render %T: value is not fully resolved", v)
	}
}
