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

	hoconerrors "github.com/hocon-lang/hocon-go/errors"
	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

func TestMaxDepthIsThirty(t *testing.T) {
	if maxDepth != 30 {
		t.Errorf("maxDepth = %d, want 30 (spec-mandated, not configurable)", maxDepth)
	}
}

// nestedDoc builds depth levels of single-key nesting ("a0: {a1: {... 1}}"),
// which forces genuine recursive resolveObject depth - unlike a flat chain
// of "${...}" references in one object, which resolves incrementally
// (see resolveObject's self-merge override) and never recurses deeply.
func nestedDoc(depth int) string {
	doc := "v: 1\n"
	for i := 0; i < depth; i++ {
		doc = "a" + itoa(depth-1-i) + ":\n" + indent(doc)
	}
	return doc
}

func indent(doc string) string {
	out := ""
	for _, line := range splitLines(doc) {
		out += "  " + line + "\n"
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	return lines
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

func TestResolveNestedWithinBoundSucceeds(t *testing.T) {
	tree := build(t, nestedDoc(15))
	resolved, err := Resolve(tree, Options{})
	if err != nil {
		t.Fatal(err)
	}
	path := make([]string, 15)
	for i := range path {
		path[i] = "a" + itoa(i)
	}
	path = append(path, "v")
	v := mustGet(t, resolved, path...).(*adt.Num)
	if v.String() != "1" {
		t.Errorf("nested v = %v, want 1", v)
	}
}

func TestResolveNestedBeyondBoundFails(t *testing.T) {
	tree := build(t, nestedDoc(35))
	_, err := Resolve(tree, Options{})
	if err == nil {
		t.Fatal("expected a depth-bound error for nesting well beyond 30 levels")
	}
	if _, ok := err.(*hoconerrors.BugError); !ok {
		t.Errorf("expected *hoconerrors.BugError, got %T: %v", err, err)
	}
}

func TestCycleSignalMessage(t *testing.T) {
	if errCycle.Error() == "" {
		t.Error("errCycle should have a non-empty message")
	}
}

func TestContextRestrictAndUnrestricted(t *testing.T) {
	ctx := NewContext(Options{})
	p := adt.NewPath("a")

	restricted := ctx.restrict(p)
	if restricted.restrictToChild == nil || !restricted.restrictToChild.Equal(p) {
		t.Fatal("restrict should set restrictToChild")
	}

	lifted := restricted.unrestricted()
	if lifted.restrictToChild != nil {
		t.Error("unrestricted should clear restrictToChild")
	}
	if restricted.restrictToChild == nil {
		t.Error("unrestricted must not mutate the receiver it was called on")
	}
}
