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

// List is an ordered sequence of values, resolved iff every item is.
type List struct {
	OriginVal *Origin
	Items     []Value
	status    ResolveStatus
}

// NewList builds a List and caches its status.
func NewList(o *Origin, items []Value) *List {
	return &List{OriginVal: o, Items: items, status: statusOf(items...)}
}

func (v *List) Origin() *Origin       { return v.OriginVal }
func (v *List) Status() ResolveStatus { return v.status }
func (v *List) node()                 {}
func (v *List) value()                {}
