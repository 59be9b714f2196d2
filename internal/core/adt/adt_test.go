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

import "testing"

func TestResolveStatusString(t *testing.T) {
	if Resolved.String() != "resolved" {
		t.Errorf("Resolved.String() = %q, want %q", Resolved.String(), "resolved")
	}
	if Unresolved.String() != "unresolved" {
		t.Errorf("Unresolved.String() = %q, want %q", Unresolved.String(), "unresolved")
	}
}

func TestStatusOfNoChildrenIsResolved(t *testing.T) {
	if got := statusOf(); got != Resolved {
		t.Errorf("statusOf() = %v, want Resolved", got)
	}
}

func TestStatusOfAnyUnresolvedChildIsUnresolved(t *testing.T) {
	resolved := NewNull(testOrigin())
	unresolved := NewReference(testOrigin(), SubstitutionExpression{Path: NewPath("a")}, 0)
	if got := statusOf(resolved, unresolved); got != Unresolved {
		t.Errorf("statusOf(resolved, unresolved) = %v, want Unresolved", got)
	}
}

// Every concrete variant below must implement Value, closing the sum type
// to this package via the unexported node()/value() methods.
func TestEveryVariantImplementsValue(t *testing.T) {
	variants := []Value{
		NewNull(testOrigin()),
		NewBool(testOrigin(), true),
		mustNum(t, "1"),
		NewStr(testOrigin(), "s"),
		NewList(testOrigin(), nil),
		NewObject(testOrigin(), nil, false),
		NewReference(testOrigin(), SubstitutionExpression{Path: NewPath("a")}, 0),
		NewConcatenation(testOrigin(), nil),
		NewDelayedMerge(testOrigin(), nil),
		NewDelayedMergeObject(testOrigin(), nil),
		NewAbsent(testOrigin()),
	}
	for _, v := range variants {
		if v.Origin() == nil {
			t.Errorf("%T.Origin() returned nil", v)
		}
	}
}

func mustNum(t *testing.T, s string) *Num {
	t.Helper()
	n, err := NewNum(testOrigin(), s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}
