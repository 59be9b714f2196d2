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

// Reference is an unresolved "${...}" or "${?...}" substitution.
//
// PrefixLength records how many leading segments of Expr.Path were
// prepended because this reference was inherited from an included file: a
// reference written as "${x}" inside an included file "child.conf" that was
// included at path "a.b" becomes, after the parser's merge, a reference to
// "a.b.x" with PrefixLength 2. Lookup tries the stripped path "x" first —
// the meaning the author of "child.conf" actually wrote — and only falls
// back to the full path "a.b.x" if that stripped lookup fails.
type Reference struct {
	OriginVal    *Origin
	Expr         SubstitutionExpression
	PrefixLength int
}

func NewReference(o *Origin, expr SubstitutionExpression, prefixLength int) *Reference {
	return &Reference{OriginVal: o, Expr: expr, PrefixLength: prefixLength}
}

func (v *Reference) Origin() *Origin       { return v.OriginVal }
func (v *Reference) Status() ResolveStatus { return Unresolved }
func (v *Reference) node()                 {}
func (v *Reference) value()                {}
