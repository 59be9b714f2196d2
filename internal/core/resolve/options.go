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

// Package resolve implements the substitution resolver: the engine that
// rewrites a ConfigValue tree's "${...}" references into concrete values.
package resolve

// Options are the knobs the resolver consumes. They are the library's whole
// configuration surface for a single Resolve call.
type Options struct {
	// UseSystemEnvironment, if true, makes a single-segment lookup that
	// misses in the tree fall through to the process environment.
	UseSystemEnvironment bool

	// AllowUnresolved, if true, keeps substitutions that remain
	// unresolvable in the output instead of failing the whole resolution.
	AllowUnresolved bool
}
