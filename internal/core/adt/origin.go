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

import (
	"fmt"

	"github.com/google/uuid"
)

// An Origin is the opaque diagnostic handle attached to every ConfigValue
// and surfaced in every error: which file and line produced this node.
//
// Origin also carries a stable ID, assigned once at construction. Pointer
// identity is the primary identity used by memoization and cycle detection
// throughout this package, but values built by the tree-builder or in tests
// are sometimes copied before they ever reach the resolver; ID gives the
// resolver's debug trace (resolve.Debug) an identity to print that survives
// such a copy. The resolver's memo and cycle-marker keys never use ID —
// only the Value pointer.
type Origin struct {
	Filename string
	Line     int
	ID       uuid.UUID
}

// NewOrigin returns an Origin at filename:line with a freshly assigned ID.
func NewOrigin(filename string, line int) *Origin {
	return &Origin{Filename: filename, Line: line, ID: uuid.New()}
}

// String renders the origin the way diagnostics quote a source location.
func (o *Origin) String() string {
	if o == nil {
		return "<unknown>"
	}
	if o.Filename == "" {
		return fmt.Sprintf("line %d", o.Line)
	}
	return fmt.Sprintf("%s:%d", o.Filename, o.Line)
}
