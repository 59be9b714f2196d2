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

// A SubstitutionExpression is a parsed "${path}" or "${?path}". It is not
// itself a Value; a Reference wraps one.
type SubstitutionExpression struct {
	Path     Path
	Optional bool
}

// Equal reports whether two expressions have the same path and optionality.
func (e SubstitutionExpression) Equal(other SubstitutionExpression) bool {
	return e.Optional == other.Optional && e.Path.Equal(other.Path)
}

func (e SubstitutionExpression) String() string {
	if e.Optional {
		return "${?" + e.Path.String() + "}"
	}
	return "${" + e.Path.String() + "}"
}
