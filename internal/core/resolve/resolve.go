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
	hoconerrors "github.com/hocon-lang/hocon-go/errors"
	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

// Resolve is the resolver's whole external contract (spec §6): given an
// already-parsed-and-merged tree and a set of options, it returns the tree
// with every substitution rewritten to a concrete value.
//
// It never mutates root; it builds and returns a fresh tree. A
// NotPossibleToResolve signal escaping all the way up here — which should
// never happen, since every reference is supposed to catch its own — is
// reported as a BugError rather than silently surfacing an internal type.
func Resolve(root adt.Value, options Options) (adt.Value, error) {
	ctx := NewContext(options)
	source := NewSource(root)

	_, resolved, err := ctx.Resolve(root, source)
	if err != nil {
		if err == errCycle {
			return nil, &hoconerrors.BugError{Msg: "structural cycle escaped without a reference to catch it"}
		}
		return nil, err
	}
	maybeDump(resolved)
	return resolved, nil
}
