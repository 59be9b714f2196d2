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

// Package adt defines the abstract data type for a HOCON configuration tree:
// the tagged ConfigValue variants, paths, substitution expressions, and the
// origins attached to every node for diagnostics. It has no notion of
// resolving substitutions; that is the job of the sibling resolve package.
package adt

// A Node is any value in a configuration tree.
type Node interface {
	// Origin returns the diagnostic handle attached to this node at parse
	// (or construction) time. Never nil.
	Origin() *Origin

	node() // enforce internal: only this package defines ConfigValue variants.
}

// A Value is a ConfigValue as described by the data model: one of the ten
// closed variants (Null, Bool, Num, Str, List, Object, Reference,
// Concatenation, DelayedMerge, DelayedMergeObject).
//
// Value identity is pointer identity: two Values are the same node iff they
// are the same pointer, never by structural comparison. Memoization and
// cycle detection both depend on this.
type Value interface {
	Node

	// Status reports whether this value, or any value reachable from it,
	// still contains an unresolved substitution. It is computed once at
	// construction and never recomputed.
	Status() ResolveStatus

	value() // enforce internal
}

// ResolveStatus is whether a Value is fully resolved.
type ResolveStatus int8

const (
	// Resolved means the value and everything reachable from it is free of
	// substitutions.
	Resolved ResolveStatus = iota
	// Unresolved means the value or something reachable from it is, or
	// contains, an unresolved substitution.
	Unresolved
)

func (s ResolveStatus) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "unresolved"
}

// statusOf returns Unresolved if any child is Unresolved, else Resolved.
// Leaves call this with no children and get Resolved.
func statusOf(children ...Value) ResolveStatus {
	for _, c := range children {
		if c.Status() == Unresolved {
			return Unresolved
		}
	}
	return Resolved
}
