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

// Package hocon is the public surface of the substitution resolver: given a
// ConfigValue tree already produced by a parser and include loader (neither
// of which lives in this module), Resolve rewrites every "${...}" into a
// concrete value.
package hocon

import (
	"github.com/hocon-lang/hocon-go/internal/core/adt"
	"github.com/hocon-lang/hocon-go/internal/core/resolve"
)

// ConfigValue is the resolved/unresolved tree type: one of Null, Bool, Num,
// Str, List, Object, Reference, Concatenation, DelayedMerge, or
// DelayedMergeObject.
type ConfigValue = adt.Value

// Options controls the resolver's behavior for a single Resolve call.
type Options = resolve.Options

// Resolve rewrites every substitution reachable from root into a concrete
// value and returns the resolved tree. root is never mutated.
func Resolve(root ConfigValue, options Options) (ConfigValue, error) {
	return resolve.Resolve(root, options)
}
