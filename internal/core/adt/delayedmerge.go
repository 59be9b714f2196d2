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

// DelayedMerge is an unresolved override stack, top value first: the result
// of merging several conjuncts for the same key where the top one is
// unresolved (e.g. it contains a Reference), so the final shape cannot be
// determined until resolution walks the stack.
type DelayedMerge struct {
	OriginVal *Origin
	Stack     []Value // top first
	status    ResolveStatus
}

func NewDelayedMerge(o *Origin, stack []Value) *DelayedMerge {
	return &DelayedMerge{OriginVal: o, Stack: stack, status: statusOf(stack...)}
}

func (v *DelayedMerge) Origin() *Origin       { return v.OriginVal }
func (v *DelayedMerge) Status() ResolveStatus { return v.status }
func (v *DelayedMerge) node()                 {}
func (v *DelayedMerge) value()                {}

// DelayedMergeObject is a DelayedMerge known, by construction, to resolve to
// an Object: its top layer is an object whose own children are unresolved.
// ResolveSource's lookup algorithm treats this variant specially, walking
// the stack to find a key instead of waiting for full resolution.
type DelayedMergeObject struct {
	OriginVal *Origin
	Stack     []Value // top first
	status    ResolveStatus
}

func NewDelayedMergeObject(o *Origin, stack []Value) *DelayedMergeObject {
	return &DelayedMergeObject{OriginVal: o, Stack: stack, status: statusOf(stack...)}
}

func (v *DelayedMergeObject) Origin() *Origin       { return v.OriginVal }
func (v *DelayedMergeObject) Status() ResolveStatus { return v.status }
func (v *DelayedMergeObject) node()                 {}
func (v *DelayedMergeObject) value()                {}
