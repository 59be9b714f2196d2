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

import "github.com/hocon-lang/hocon-go/internal/core/adt"

type override struct {
	original    adt.Value
	replacement adt.Value
}

// Source is the "where do I look up a path" side of substitution
// resolution: a stack of parent objects from the root down to the
// enclosing context of the current substitution, plus an override list used
// to answer self-references against the object currently being built
// instead of re-entering the original, unresolved one.
//
// A single Source is shared, mutated with stack discipline (push on the way
// down, pop on the way back up via defer), across one whole top-level
// Resolve call — the same style the engine's own shared state uses, and for
// the same reason: every push this package makes is undone before the
// frame that made it returns.
type Source struct {
	root      adt.Value
	parents   []*adt.Object
	overrides []override
}

// NewSource returns a Source rooted at root.
func NewSource(root adt.Value) *Source {
	return &Source{root: root}
}

// PushParent records obj as the innermost object currently being descended
// into.
func (s *Source) PushParent(obj *adt.Object) { s.parents = append(s.parents, obj) }

// PopParent undoes the most recent PushParent.
func (s *Source) PopParent() { s.parents = s.parents[:len(s.parents)-1] }

// PushReplace registers that a lookup reaching original should see
// replacement instead, innermost-first.
func (s *Source) PushReplace(original, replacement adt.Value) {
	s.overrides = append(s.overrides, override{original: original, replacement: replacement})
}

// SetReplace updates the replacement for the nearest still-active override
// of original, or pushes a new one if none is active. Used while an object
// is being built entry by entry, so that later entries in the same object
// see earlier entries' already-resolved values when they self-reference.
func (s *Source) SetReplace(original, replacement adt.Value) {
	for i := len(s.overrides) - 1; i >= 0; i-- {
		if s.overrides[i].original == original {
			s.overrides[i].replacement = replacement
			return
		}
	}
	s.PushReplace(original, replacement)
}

// PopReplace undoes the most recent PushReplace.
func (s *Source) PopReplace() { s.overrides = s.overrides[:len(s.overrides)-1] }

// applyOverrides returns the replacement of the innermost override for v, or
// v itself if none is active. It applies at most one override: a
// replacement that is itself overridden is not followed further; one
// substitution per lookup is all object self-merge ever needs.
func (s *Source) applyOverrides(v adt.Value) adt.Value {
	for i := len(s.overrides) - 1; i >= 0; i-- {
		if s.overrides[i].original == v {
			return s.overrides[i].replacement
		}
	}
	return v
}
