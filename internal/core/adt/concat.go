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

// Concatenation is the textual juxtaposition of values, e.g. `a ${b} c`.
// It resolves by resolving each piece then joining them per the rules in
// the resolve package: object+object merge, list+list concatenate, or
// scalar string-join.
type Concatenation struct {
	OriginVal *Origin
	Pieces    []Value
	status    ResolveStatus
}

func NewConcatenation(o *Origin, pieces []Value) *Concatenation {
	return &Concatenation{OriginVal: o, Pieces: pieces, status: statusOf(pieces...)}
}

func (v *Concatenation) Origin() *Origin       { return v.OriginVal }
func (v *Concatenation) Status() ResolveStatus { return v.status }
func (v *Concatenation) node()                 {}
func (v *Concatenation) value()                {}
