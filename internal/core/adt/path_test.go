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

func TestParsePath(t *testing.T) {
	p := ParsePath("a.b.c")
	if got, want := p.Length(), 3; got != want {
		t.Fatalf("Length() = %d, want %d", got, want)
	}
	if got, want := p.String(), "a.b.c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathRemainder(t *testing.T) {
	p := ParsePath("a.b.c")
	rest, ok := p.Remainder()
	if !ok || rest.String() != "b.c" {
		t.Fatalf("Remainder() = %q, %v, want \"b.c\", true", rest.String(), ok)
	}

	single := NewPath("a")
	if _, ok := single.Remainder(); ok {
		t.Error("Remainder() on single-segment path should report false")
	}
}

func TestPathSubPath(t *testing.T) {
	p := ParsePath("a.b.c")

	if rest, ok := p.SubPath(0); !ok || !rest.Equal(p) {
		t.Errorf("SubPath(0) = %q, want unchanged %q", rest.String(), p.String())
	}
	if rest, ok := p.SubPath(2); !ok || rest.String() != "c" {
		t.Errorf("SubPath(2) = %q, %v, want \"c\", true", rest.String(), ok)
	}
	if _, ok := p.SubPath(3); ok {
		t.Error("SubPath(3) should report false for a 3-segment path")
	}
}

func TestPathPrependAppend(t *testing.T) {
	base := ParsePath("b.c")
	prefixed := base.Prepend(NewPath("a"))
	if got, want := prefixed.String(), "a.b.c"; got != want {
		t.Errorf("Prepend: got %q, want %q", got, want)
	}

	appended := base.Append("d")
	if got, want := appended.String(), "b.c.d"; got != want {
		t.Errorf("Append: got %q, want %q", got, want)
	}
	if base.String() != "b.c" {
		t.Error("Append mutated the receiver")
	}
}

func TestPathStartsWith(t *testing.T) {
	p := ParsePath("a.b.c")
	if !p.StartsWith(ParsePath("a.b")) {
		t.Error("expected a.b.c to start with a.b")
	}
	if p.StartsWith(ParsePath("a.x")) {
		t.Error("did not expect a.b.c to start with a.x")
	}
	if p.StartsWith(ParsePath("a.b.c.d")) {
		t.Error("a path cannot start with something longer than itself")
	}
}

func TestPathEqual(t *testing.T) {
	if !ParsePath("a.b").Equal(NewPath("a", "b")) {
		t.Error("expected equal paths built two different ways to compare equal")
	}
	if ParsePath("a.b").Equal(ParsePath("a.c")) {
		t.Error("did not expect a.b to equal a.c")
	}
}

func TestPathSegmentsIsDefensiveCopy(t *testing.T) {
	p := ParsePath("a.b")
	segs := p.Segments()
	segs[0] = "z"
	if p.First() != "a" {
		t.Error("mutating the slice returned by Segments() leaked into the Path")
	}
}

func TestNewPathPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewPath() with no segments to panic")
		}
	}()
	NewPath()
}
