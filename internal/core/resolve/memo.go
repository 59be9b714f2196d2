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

package resolve

import (
	"strings"

	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

// A MemoKey pairs a node's identity (pointer equality, never structural
// equality) with an optional restriction path.
type MemoKey struct {
	node           adt.Value
	restriction    string
	hasRestriction bool
}

func fullKey(v adt.Value) MemoKey {
	return MemoKey{node: v}
}

func restrictedKey(v adt.Value, restrict adt.Path) MemoKey {
	return MemoKey{node: v, restriction: pathKey(restrict), hasRestriction: true}
}

// pathKey renders a Path into a string safe to use as a map key even when
// segments themselves contain dots, unlike Path.String.
func pathKey(p adt.Path) string {
	return strings.Join(p.Segments(), "\x00")
}

// Memos is a cache from MemoKey to resolved (or partially resolved) value.
//
// Conceptually Put returns a new Memos, per the data model's description of
// functional update: the engine never re-derives a result lost to a failed
// branch. In practice this implementation backs every Memos value returned
// from a single Resolve call with the same map, mutated in place, which is
// the mutable-engine alternative the design notes explicitly allow as long
// as memo and cycle-marker visibility match the functional form. Resolve
// calls never share a Memos with each other, so this is invisible to
// callers.
type Memos struct {
	table map[MemoKey]adt.Value
}

// NewMemos returns an empty memo table.
func NewMemos() Memos {
	return Memos{table: make(map[MemoKey]adt.Value)}
}

// Get looks up v, first under the full-resolution key, then - if restrict is
// non-nil and the full key misses - under the restricted key. A fully
// resolved value cached under the full key satisfies any restricted query,
// since a fully resolved subtree has no unresolved children left to narrow.
func (m Memos) Get(v adt.Value, restrict *adt.Path) (adt.Value, bool) {
	if cached, ok := m.table[fullKey(v)]; ok {
		return cached, true
	}
	if restrict != nil {
		if cached, ok := m.table[restrictedKey(v, *restrict)]; ok {
			return cached, true
		}
	}
	return nil, false
}

// Put records the resolution of original as resolved, keyed by restrict (nil
// for the full-resolution key), and returns the (shared-backing) Memos.
func (m Memos) Put(original adt.Value, restrict *adt.Path, resolved adt.Value) Memos {
	if restrict == nil {
		m.table[fullKey(original)] = resolved
	} else {
		m.table[restrictedKey(original, *restrict)] = resolved
	}
	return m
}
