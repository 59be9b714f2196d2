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

func TestListResolvedWhenEveryItemIs(t *testing.T) {
	list := NewList(testOrigin(), []Value{NewNull(testOrigin()), NewBool(testOrigin(), false)})
	if list.Status() != Resolved {
		t.Errorf("Status() = %v, want Resolved", list.Status())
	}
}

func TestListUnresolvedWithAnyUnresolvedItem(t *testing.T) {
	ref := NewReference(testOrigin(), SubstitutionExpression{Path: NewPath("a")}, 0)
	list := NewList(testOrigin(), []Value{NewNull(testOrigin()), ref})
	if list.Status() != Unresolved {
		t.Errorf("Status() = %v, want Unresolved", list.Status())
	}
}

func TestListEmptyIsResolved(t *testing.T) {
	list := NewList(testOrigin(), nil)
	if list.Status() != Resolved {
		t.Errorf("Status() = %v, want Resolved for an empty list", list.Status())
	}
}

func TestListItemsPreservesOrder(t *testing.T) {
	a := NewNull(testOrigin())
	b := NewBool(testOrigin(), true)
	list := NewList(testOrigin(), []Value{a, b})
	if len(list.Items) != 2 || list.Items[0] != a || list.Items[1] != b {
		t.Errorf("Items = %v, want [%v, %v]", list.Items, a, b)
	}
}

func TestListOrigin(t *testing.T) {
	o := testOrigin()
	list := NewList(o, nil)
	if list.Origin() != o {
		t.Error("Origin() should return the origin passed to NewList")
	}
}
