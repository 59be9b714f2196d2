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

// Package treebuild turns a plain YAML document into a ConfigValue tree for
// the resolver to consume. It is explicitly not a HOCON parser: it has no
// notion of comments, unquoted-key ambiguity, file inclusion, or the merge
// semantics spec.md leaves to the (out-of-scope) parser and include loader.
// It exists only to give tests and cmd/hocon a way to hand the resolver a
// tree without one.
//
// On top of plain YAML scalars, maps, and sequences, it recognizes one
// convention: a string scalar containing one or more "${path}" /
// "${?path}" tokens becomes a Reference (if the whole scalar is exactly one
// token) or a Concatenation of string and Reference pieces (otherwise).
package treebuild

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

var substToken = regexp.MustCompile(`\$\{(\??)([^}]*)\}`)

// Build parses data as YAML and returns the resulting ConfigValue tree.
// filename is recorded in every node's Origin for diagnostics.
func Build(data []byte, filename string) (adt.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("treebuild: %w", err)
	}
	if len(doc.Content) == 0 {
		return adt.NewNull(adt.NewOrigin(filename, 1)), nil
	}
	return build(doc.Content[0], filename)
}

func build(n *yaml.Node, filename string) (adt.Value, error) {
	origin := adt.NewOrigin(filename, n.Line)

	switch n.Kind {
	case yaml.DocumentNode:
		return build(n.Content[0], filename)

	case yaml.MappingNode:
		entries := make([]adt.ObjectEntry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val, err := build(n.Content[i+1], filename)
			if err != nil {
				return nil, err
			}
			entries = append(entries, adt.ObjectEntry{Key: key, Value: val})
		}
		return adt.NewObject(origin, entries, false), nil

	case yaml.SequenceNode:
		items := make([]adt.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := build(c, filename)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return adt.NewList(origin, items), nil

	case yaml.ScalarNode:
		return buildScalar(n, origin)

	case yaml.AliasNode:
		return build(n.Alias, filename)

	default:
		return nil, fmt.Errorf("treebuild: %s:%d: unsupported node kind %v", filename, n.Line, n.Kind)
	}
}

func buildScalar(n *yaml.Node, origin *adt.Origin) (adt.Value, error) {
	switch n.Tag {
	case "!!null":
		return adt.NewNull(origin), nil
	case "!!bool":
		return adt.NewBool(origin, n.Value == "true"), nil
	case "!!int", "!!float":
		num, err := adt.NewNum(origin, n.Value)
		if err != nil {
			return nil, fmt.Errorf("treebuild: %s:%d: %w", origin.Filename, origin.Line, err)
		}
		return num, nil
	default:
		return buildStringOrSubstitution(n.Value, origin)
	}
}

// buildStringOrSubstitution splits s on "${...}"/"${?...}" tokens. A string
// that is exactly one token becomes a bare Reference; a string with no
// tokens becomes a Str; anything in between becomes a Concatenation of Str
// and Reference pieces in textual order.
func buildStringOrSubstitution(s string, origin *adt.Origin) (adt.Value, error) {
	matches := substToken.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return adt.NewStr(origin, s), nil
	}

	if len(matches) == 1 && matches[0][0] == 0 && matches[0][1] == len(s) {
		return referenceFromMatch(s, matches[0], origin), nil
	}

	var pieces []adt.Value
	pos := 0
	for _, m := range matches {
		if m[0] > pos {
			pieces = append(pieces, adt.NewStr(origin, s[pos:m[0]]))
		}
		pieces = append(pieces, referenceFromMatch(s, m, origin))
		pos = m[1]
	}
	if pos < len(s) {
		pieces = append(pieces, adt.NewStr(origin, s[pos:]))
	}
	return adt.NewConcatenation(origin, pieces), nil
}

func referenceFromMatch(s string, m []int, origin *adt.Origin) adt.Value {
	optional := s[m[2]:m[3]] == "?"
	path := s[m[4]:m[5]]
	expr := adt.SubstitutionExpression{Path: adt.ParsePath(path), Optional: optional}
	return adt.NewReference(origin, expr, 0)
}
