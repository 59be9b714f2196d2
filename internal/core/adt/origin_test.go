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

func TestOriginString(t *testing.T) {
	o := NewOrigin("app.conf", 7)
	if got, want := o.String(), "app.conf:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOriginStringNoFilename(t *testing.T) {
	o := NewOrigin("", 3)
	if got, want := o.String(), "line 3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOriginStringNilReceiver(t *testing.T) {
	var o *Origin
	if got, want := o.String(), "<unknown>"; got != want {
		t.Errorf("String() on nil = %q, want %q", got, want)
	}
}

func TestNewOriginAssignsDistinctIDs(t *testing.T) {
	a := NewOrigin("t", 1)
	b := NewOrigin("t", 1)
	if a.ID == b.ID {
		t.Error("two separately constructed origins should get distinct IDs")
	}
}
