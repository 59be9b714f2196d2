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

// Package errors defines the error taxonomy surfaced by the resolver:
// UnresolvedSubstitutionError, WrongTypeError, and BugError, plus a List
// type for reporting several at once. The information available in such
// errors can be most easily retrieved using the Paths, Positions, and Print
// functions, in the style of an errors-list package.
package errors

import (
	"fmt"
	"strings"

	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

// Error is the interface implemented by every error this package defines.
type Error interface {
	error

	// Position returns the origin most relevant to the error, or nil.
	Position() *adt.Origin

	// Path returns the dotted config path the error concerns, if any.
	Path() string
}

// UnresolvedSubstitutionError reports that a required "${...}" substitution
// could not be resolved: the key was missing from the tree (and, if
// applicable, the environment), or it only took part in a cycle of required
// references.
type UnresolvedSubstitutionError struct {
	Expr   adt.SubstitutionExpression
	Origin *adt.Origin
	// Trace is the sequence of origins pushed while resolving the failing
	// substitution, outermost first.
	Trace []*adt.Origin
}

func (e *UnresolvedSubstitutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: unresolved substitution %s", e.Origin, e.Expr)
	for _, t := range e.Trace {
		fmt.Fprintf(&b, "\n\tfrom %s", t)
	}
	return b.String()
}

func (e *UnresolvedSubstitutionError) Position() *adt.Origin { return e.Origin }
func (e *UnresolvedSubstitutionError) Path() string          { return e.Expr.Path.String() }

// WrongTypeError reports that a concatenation mixed pieces across the
// object/list/scalar categories, which HOCON never allows to merge.
type WrongTypeError struct {
	Origin   *adt.Origin
	Path     string
	Expected string
	Actual   string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("%s: wrong type: expected %s, got %s", e.Origin, e.Expected, e.Actual)
}

func (e *WrongTypeError) Position() *adt.Origin { return e.Origin }
func (e *WrongTypeError) Path() string          { return e.Path }

// BugError reports an internal invariant violation: the depth bound was
// exceeded, an unresolved value escaped with allowUnresolved=false, a cycle
// signal reached the top level, or a value had an impossible shape (an
// unknown variant, an empty DelayedMergeObject stack). None of these are meant to be reachable from
// well-formed input; they exist so a violation fails loudly instead of
// silently returning a wrong answer.
type BugError struct {
	Msg string
}

func (e *BugError) Error() string         { return "hocon: internal error: " + e.Msg }
func (e *BugError) Position() *adt.Origin { return nil }
func (e *BugError) Path() string          { return "" }

// List collects more than one Error from a single resolution pass.
type List []Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(l))
	for _, e := range l {
		b.WriteString("\n")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Add appends err to the list. If err is itself a List, its elements are
// flattened in rather than nested.
func (l *List) Add(err Error) {
	if sub, ok := err.(List); ok {
		*l = append(*l, sub...)
		return
	}
	*l = append(*l, err)
}

// Positions returns the distinct Position() of every error reachable from
// err, in order of first occurrence. err may be a single Error or a List;
// anything else yields nil. Grounded on cue/errors.Positions, simplified
// for this package's flatter Error interface (one Position per error,
// rather than a primary position plus InputPositions).
func Positions(err error) []*adt.Origin {
	switch e := err.(type) {
	case List:
		var out []*adt.Origin
		seen := make(map[*adt.Origin]bool, len(e))
		for _, sub := range e {
			for _, p := range Positions(sub) {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
		return out
	case Error:
		if p := e.Position(); p != nil {
			return []*adt.Origin{p}
		}
		return nil
	default:
		return nil
	}
}

// Paths returns the distinct Path() of every error in l, in order of first
// occurrence.
func Paths(l List) []string {
	seen := make(map[string]bool, len(l))
	var out []string
	for _, e := range l {
		p := e.Path()
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Print writes each error in l on its own line.
func Print(l List) string {
	var b strings.Builder
	for _, e := range l {
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return b.String()
}
