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

import (
	"testing"

	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

func TestMemosMissOnEmptyTable(t *testing.T) {
	m := NewMemos()
	v := adt.NewStr(adt.NewOrigin("t", 1), "x")
	if _, ok := m.Get(v, nil); ok {
		t.Error("expected a miss on an empty table")
	}
}

func TestMemosPutThenGetFullKey(t *testing.T) {
	m := NewMemos()
	original := adt.NewReference(adt.NewOrigin("t", 1), adt.SubstitutionExpression{Path: adt.NewPath("a")}, 0)
	resolved := adt.NewStr(adt.NewOrigin("t", 1), "resolved")

	m = m.Put(original, nil, resolved)
	got, ok := m.Get(original, nil)
	if !ok || got != resolved {
		t.Fatalf("Get() = %v, %v, want the value just Put", got, ok)
	}
}

func TestMemosRestrictedKeyIsSeparateFromFullKey(t *testing.T) {
	m := NewMemos()
	original := adt.NewObject(adt.NewOrigin("t", 1), nil, false)
	restrict := adt.NewPath("a")
	partial := adt.NewObject(adt.NewOrigin("t", 1), nil, false)

	m = m.Put(original, &restrict, partial)

	if _, ok := m.Get(original, nil); ok {
		t.Error("a restricted Put should not satisfy an unrestricted Get")
	}
	if got, ok := m.Get(original, &restrict); !ok || got != partial {
		t.Errorf("Get() with the same restriction = %v, %v", got, ok)
	}

	other := adt.NewPath("b")
	if _, ok := m.Get(original, &other); ok {
		t.Error("a different restriction path should not hit the same entry")
	}
}

func TestMemosFullKeySatisfiesRestrictedQuery(t *testing.T) {
	m := NewMemos()
	original := adt.NewObject(adt.NewOrigin("t", 1), nil, false)
	resolved := adt.NewObject(adt.NewOrigin("t", 1), nil, false)

	m = m.Put(original, nil, resolved)

	restrict := adt.NewPath("a")
	got, ok := m.Get(original, &restrict)
	if !ok || got != resolved {
		t.Errorf("a fully resolved entry should satisfy any restricted query, got %v, %v", got, ok)
	}
}

func TestMemosIdentityNotStructuralEquality(t *testing.T) {
	m := NewMemos()
	a := adt.NewStr(adt.NewOrigin("t", 1), "same-text")
	b := adt.NewStr(adt.NewOrigin("t", 1), "same-text")

	m = m.Put(a, nil, adt.NewStr(adt.NewOrigin("t", 1), "a-result"))
	if _, ok := m.Get(b, nil); ok {
		t.Error("two distinct *Str pointers with identical content must not share a memo entry")
	}
}

func TestPathKeyAvoidsDotCollision(t *testing.T) {
	dotted := adt.NewPath("a.b")
	split := adt.NewPath("a", "b")

	if pathKey(dotted) == pathKey(split) {
		t.Error("pathKey must distinguish a single segment containing a dot from two segments")
	}
}
