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

import "strings"

// A Path is a non-empty, immutable, dotted sequence of key segments, such as
// the path of a substitution expression "${a.b.c}" or the path at which an
// object entry lives.
//
// Path is a value type, but its segments are backed by a slice, so Paths
// cannot be compared with ==; use Path.Equal.
type Path struct {
	segments []string
}

// NewPath builds a Path from its segments. It panics if given no segments;
// a Path is never empty.
func NewPath(segments ...string) Path {
	if len(segments) == 0 {
		panic("adt: empty Path")
	}
	cp := make([]string, len(segments))
	copy(cp, segments)
	return Path{segments: cp}
}

// ParsePath splits a dotted string into a Path. It does not understand
// HOCON's quoting rules for keys containing dots; that is the parser's job.
// It exists so tests and the tree-builder can write paths as plain strings.
func ParsePath(dotted string) Path {
	return NewPath(strings.Split(dotted, ".")...)
}

// Length returns the number of segments.
func (p Path) Length() int { return len(p.segments) }

// First returns the first segment.
func (p Path) First() string { return p.segments[0] }

// Remainder returns the path after dropping the first segment, and whether
// there was a remainder at all (false if p has length 1).
func (p Path) Remainder() (Path, bool) {
	if len(p.segments) <= 1 {
		return Path{}, false
	}
	return Path{segments: p.segments[1:]}, true
}

// SubPath drops the first n segments, returning the remainder and whether
// any segments were left. SubPath(0) returns p unchanged.
func (p Path) SubPath(n int) (Path, bool) {
	if n >= len(p.segments) {
		return Path{}, false
	}
	return Path{segments: p.segments[n:]}, true
}

// Prepend returns a new Path with other's segments in front of p's.
func (p Path) Prepend(other Path) Path {
	combined := make([]string, 0, len(other.segments)+len(p.segments))
	combined = append(combined, other.segments...)
	combined = append(combined, p.segments...)
	return Path{segments: combined}
}

// Append returns a new Path with segment added at the end.
func (p Path) Append(segment string) Path {
	combined := make([]string, len(p.segments)+1)
	copy(combined, p.segments)
	combined[len(p.segments)] = segment
	return Path{segments: combined}
}

// StartsWith reports whether p begins with every segment of other, in order.
func (p Path) StartsWith(other Path) bool {
	if len(other.segments) > len(p.segments) {
		return false
	}
	for i, s := range other.segments {
		if p.segments[i] != s {
			return false
		}
	}
	return true
}

// Equal reports whether p and other have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		if other.segments[i] != s {
			return false
		}
	}
	return true
}

// Segments returns a copy of the underlying segments, safe to mutate.
func (p Path) Segments() []string {
	cp := make([]string, len(p.segments))
	copy(cp, p.segments)
	return cp
}

// String renders the path dotted, with no quoting. Full HOCON quoting rules
// for keys containing dots or other special characters live in the
// out-of-scope serialization layer.
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}
