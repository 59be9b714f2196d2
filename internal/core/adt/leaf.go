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

import "github.com/cockroachdb/apd/v3"

// Null is the JSON/HOCON null literal. Leaves are always Resolved.
type Null struct {
	OriginVal *Origin
}

func NewNull(o *Origin) *Null { return &Null{OriginVal: o} }

func (v *Null) Origin() *Origin       { return v.OriginVal }
func (v *Null) Status() ResolveStatus { return Resolved }
func (v *Null) node()                 {}
func (v *Null) value()                {}

// Bool is a boolean literal.
type Bool struct {
	OriginVal *Origin
	B         bool
}

func NewBool(o *Origin, b bool) *Bool { return &Bool{OriginVal: o, B: b} }

func (v *Bool) Origin() *Origin       { return v.OriginVal }
func (v *Bool) Status() ResolveStatus { return Resolved }
func (v *Bool) node()                 {}
func (v *Bool) value()                {}

// Num is a number literal, kept as an arbitrary-precision decimal so that
// concatenation and stringification never lose precision to a float64
// round-trip. HOCON renders numbers the way they were written, not
// normalized, so Num.D.Text('f') (via Num.String) is authoritative.
type Num struct {
	OriginVal *Origin
	D         apd.Decimal
}

// NewNum parses s (a decimal literal as produced by the lexer) into a Num.
// The parser is expected to have already validated s is numeric; a parse
// failure here is an internal error, not a user-facing one.
func NewNum(o *Origin, s string) (*Num, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &Num{OriginVal: o, D: *d}, nil
}

// NewNumFromDecimal wraps an already-constructed decimal.
func NewNumFromDecimal(o *Origin, d apd.Decimal) *Num {
	return &Num{OriginVal: o, D: d}
}

func (v *Num) Origin() *Origin       { return v.OriginVal }
func (v *Num) Status() ResolveStatus { return Resolved }
func (v *Num) node()                 {}
func (v *Num) value()                {}

func (v *Num) String() string { return v.D.Text('f') }

// Str is a string literal.
type Str struct {
	OriginVal *Origin
	S         string
}

func NewStr(o *Origin, s string) *Str { return &Str{OriginVal: o, S: s} }

func (v *Str) Origin() *Origin       { return v.OriginVal }
func (v *Str) Status() ResolveStatus { return Resolved }
func (v *Str) node()                 {}
func (v *Str) value()                {}

// Stringify renders a resolved leaf value for use inside a Concatenation,
// per the HOCON rule that null renders as empty and numbers/bools render as
// their literal text.
func Stringify(v Value) (string, bool) {
	switch x := v.(type) {
	case *Null:
		return "", true
	case *Bool:
		if x.B {
			return "true", true
		}
		return "false", true
	case *Num:
		return x.String(), true
	case *Str:
		return x.S, true
	default:
		return "", false
	}
}
