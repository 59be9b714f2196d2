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

package adt

// An ObjectEntry is one key/value pair of an Object, in the object's
// iteration order.
type ObjectEntry struct {
	Key   string
	Value Value
}

// Object is a mapping from key to value. Entries preserve insertion order of
// the last-winning merge; that order matters for rendering and for
// deterministic diagnostics, but never for lookup.
//
// IgnoresFallbacks marks an object produced by a plain assignment (as
// opposed to one still participating in an override chain): when such an
// object is encountered while walking a DelayedMerge/DelayedMergeObject
// stack top-down, it shadows every lower-priority layer outright, because
// in HOCON a later "=" assignment discards fallbacks rather than merging
// with them.
type Object struct {
	OriginVal        *Origin
	Entries          []ObjectEntry
	IgnoresFallbacks bool

	index  map[string]int
	status ResolveStatus
}

// NewObject builds an Object from entries, preserving their order.
func NewObject(o *Origin, entries []ObjectEntry, ignoresFallbacks bool) *Object {
	index := make(map[string]int, len(entries))
	children := make([]Value, len(entries))
	for i, e := range entries {
		index[e.Key] = i
		children[i] = e.Value
	}
	return &Object{
		OriginVal:        o,
		Entries:          entries,
		IgnoresFallbacks: ignoresFallbacks,
		index:            index,
		status:           statusOf(children...),
	}
}

func (v *Object) Origin() *Origin       { return v.OriginVal }
func (v *Object) Status() ResolveStatus { return v.status }
func (v *Object) node()                 {}
func (v *Object) value()                {}

// Get returns the value stored at key and whether it was present.
func (v *Object) Get(key string) (Value, bool) {
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.Entries[i].Value, true
}

// With returns a copy of v with key's value replaced by replacement. If key
// is not present, it is appended. Used by the resolver to build the
// resolved sibling of an object one entry at a time without mutating v.
func (v *Object) With(key string, replacement Value) *Object {
	entries := make([]ObjectEntry, len(v.Entries))
	copy(entries, v.Entries)
	if i, ok := v.index[key]; ok {
		entries[i] = ObjectEntry{Key: key, Value: replacement}
	} else {
		entries = append(entries, ObjectEntry{Key: key, Value: replacement})
	}
	return NewObject(v.OriginVal, entries, v.IgnoresFallbacks)
}

// Without returns a copy of v with key removed entirely, used when an
// optional substitution inside an entry's value drops that entry.
func (v *Object) Without(key string) *Object {
	if _, ok := v.index[key]; !ok {
		return v
	}
	entries := make([]ObjectEntry, 0, len(v.Entries)-1)
	for _, e := range v.Entries {
		if e.Key != key {
			entries = append(entries, e)
		}
	}
	return NewObject(v.OriginVal, entries, v.IgnoresFallbacks)
}

// MergeLowerPriority returns a new Object containing every entry of v, plus
// every entry of lower whose key is not already present in v. v's entries
// win; this is the "later object fills in keys missing from the
// accumulator" rule from the merge-stack walk.
func (v *Object) MergeLowerPriority(lower *Object) *Object {
	entries := make([]ObjectEntry, len(v.Entries), len(v.Entries)+len(lower.Entries))
	copy(entries, v.Entries)
	index := make(map[string]int, len(v.index))
	for k, i := range v.index {
		index[k] = i
	}
	for _, e := range lower.Entries {
		if _, ok := index[e.Key]; ok {
			continue
		}
		index[e.Key] = len(entries)
		entries = append(entries, e)
	}
	return NewObject(v.OriginVal, entries, v.IgnoresFallbacks || lower.IgnoresFallbacks)
}
