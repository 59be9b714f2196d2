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

// Absent is not one of the ten tree-shaped ConfigValue variants a parser can
// produce; it is the transient result the resolver gives an optional
// "${?...}" substitution that did not resolve. A value resolving to Absent
// is always consumed and dropped by its immediate parent (the object entry,
// list item, or concatenation piece that held it) before resolution
// continues, so Absent never survives into a final resolved tree.
type Absent struct {
	OriginVal *Origin
}

func NewAbsent(o *Origin) *Absent { return &Absent{OriginVal: o} }

func (v *Absent) Origin() *Origin       { return v.OriginVal }
func (v *Absent) Status() ResolveStatus { return Resolved }
func (v *Absent) node()                 {}
func (v *Absent) value()                {}

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v Value) bool {
	_, ok := v.(*Absent)
	return ok
}
