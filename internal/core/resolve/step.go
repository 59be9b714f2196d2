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
	"fmt"
	"strings"

	hoconerrors "github.com/hocon-lang/hocon-go/errors"
	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

// step performs exactly one resolution step for original, dispatching on
// its concrete variant. Called only from Resolve, after the memo and cycle
// checks have already passed.
func (ctx ResolveContext) step(original adt.Value, source *Source) (adt.Value, error) {
	switch v := original.(type) {
	case *adt.Null, *adt.Bool, *adt.Num, *adt.Str:
		return original, nil
	case *adt.List:
		return ctx.resolveList(v, source)
	case *adt.Object:
		return ctx.resolveObject(v, source)
	case *adt.Concatenation:
		return ctx.resolveConcatenation(v, source)
	case *adt.DelayedMerge:
		return ctx.resolveDelayedMerge(v, source)
	case *adt.DelayedMergeObject:
		return ctx.resolveDelayedMergeObject(v, source)
	case *adt.Reference:
		return ctx.resolveReference(v, source)
	default:
		return nil, &hoconerrors.BugError{Msg: fmt.Sprintf("unknown ConfigValue variant %T", original)}
	}
}

func (ctx ResolveContext) resolveList(v *adt.List, source *Source) (adt.Value, error) {
	child := ctx.unrestricted()
	items := make([]adt.Value, 0, len(v.Items))
	for _, item := range v.Items {
		_, resolved, err := child.Resolve(item, source)
		if err != nil {
			return nil, err
		}
		if adt.IsAbsent(resolved) {
			continue
		}
		items = append(items, resolved)
	}
	return adt.NewList(v.OriginVal, items), nil
}

// resolveObject resolves each entry in insertion order. While its entries
// are being resolved, a self-reference back to v must see the
// partially-built result so far, not v itself — handled by registering v as
// overridden by the in-progress result and keeping that override current as
// each entry finishes (spec §4.5's "replace" mechanism).
//
// If restrictToChild names one of v's entries, only that entry (and,
// recursively, only its own restricted child) is resolved; every other
// entry is left exactly as it was, which is why the result can come back
// Unresolved even though no error occurred.
func (ctx ResolveContext) resolveObject(v *adt.Object, source *Source) (adt.Value, error) {
	source.PushParent(v)
	defer source.PopParent()

	source.PushReplace(v, v)
	defer source.PopReplace()

	result := v
	var errs hoconerrors.List

	for _, entry := range v.Entries {
		childCtx, shouldResolve := ctx.restrictedChild(entry.Key)
		if !shouldResolve {
			continue
		}

		_, resolved, err := childCtx.Resolve(entry.Value, source)
		if err != nil {
			switch e := err.(type) {
			case *hoconerrors.UnresolvedSubstitutionError:
				errs.Add(e)
				continue
			case hoconerrors.List:
				for _, sub := range e {
					errs.Add(sub)
				}
				continue
			default:
				return nil, err
			}
		}

		if adt.IsAbsent(resolved) {
			result = result.Without(entry.Key)
		} else {
			result = result.With(entry.Key, resolved)
		}
		source.SetReplace(v, result)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return result, nil
}

// restrictedChild decides, for one object entry named key, whether it
// should be resolved at all under the receiver's restriction, and if so
// with what child context (restriction narrowed by one segment, or lifted
// entirely once the restriction path is exhausted).
func (ctx ResolveContext) restrictedChild(key string) (ResolveContext, bool) {
	if ctx.restrictToChild == nil {
		return ctx.unrestricted(), true
	}
	if ctx.restrictToChild.First() != key {
		return ctx, false
	}
	if rem, hasMore := ctx.restrictToChild.Remainder(); hasMore {
		return ctx.restrict(rem), true
	}
	return ctx.unrestricted(), true
}

func (ctx ResolveContext) resolveConcatenation(v *adt.Concatenation, source *Source) (adt.Value, error) {
	child := ctx.unrestricted()
	pieces := make([]adt.Value, 0, len(v.Pieces))
	for _, piece := range v.Pieces {
		_, resolved, err := child.Resolve(piece, source)
		if err != nil {
			return nil, err
		}
		if adt.IsAbsent(resolved) {
			continue
		}
		pieces = append(pieces, resolved)
	}
	return joinConcatenation(v.OriginVal, pieces)
}

func joinConcatenation(origin *adt.Origin, pieces []adt.Value) (adt.Value, error) {
	if len(pieces) == 0 {
		return adt.NewStr(origin, ""), nil
	}
	for _, p := range pieces {
		if p.Status() == adt.Unresolved {
			// allowUnresolved kept one piece as-is; the concatenation as a
			// whole stays unresolved rather than attempting to join.
			return adt.NewConcatenation(origin, pieces), nil
		}
	}

	hasObject, hasList, hasScalar := false, false, false
	for _, p := range pieces {
		switch p.(type) {
		case *adt.Object:
			hasObject = true
		case *adt.List:
			hasList = true
		default:
			hasScalar = true
		}
	}

	switch {
	case hasObject && !hasList && !hasScalar:
		return joinObjects(origin, pieces)
	case hasList && !hasObject && !hasScalar:
		return joinLists(origin, pieces)
	case !hasObject && !hasList:
		return joinScalars(origin, pieces)
	default:
		return nil, &hoconerrors.WrongTypeError{
			Origin: origin, Expected: "a single category (object, list, or scalar)", Actual: "mixed",
		}
	}
}

// joinObjects merges concatenation pieces left to right: a later piece's
// keys win over an earlier piece's, matching normal HOCON override order.
func joinObjects(origin *adt.Origin, pieces []adt.Value) (adt.Value, error) {
	acc := pieces[0].(*adt.Object)
	for _, p := range pieces[1:] {
		obj, ok := p.(*adt.Object)
		if !ok {
			return nil, &hoconerrors.WrongTypeError{Origin: origin, Expected: "object", Actual: fmt.Sprintf("%T", p)}
		}
		acc = obj.MergeLowerPriority(acc)
	}
	return acc, nil
}

func joinLists(origin *adt.Origin, pieces []adt.Value) (adt.Value, error) {
	var items []adt.Value
	for _, p := range pieces {
		l, ok := p.(*adt.List)
		if !ok {
			return nil, &hoconerrors.WrongTypeError{Origin: origin, Expected: "list", Actual: fmt.Sprintf("%T", p)}
		}
		items = append(items, l.Items...)
	}
	return adt.NewList(origin, items), nil
}

func joinScalars(origin *adt.Origin, pieces []adt.Value) (adt.Value, error) {
	var b strings.Builder
	for _, p := range pieces {
		s, ok := adt.Stringify(p)
		if !ok {
			return nil, &hoconerrors.WrongTypeError{Origin: origin, Expected: "scalar", Actual: fmt.Sprintf("%T", p)}
		}
		b.WriteString(s)
	}
	return adt.NewStr(origin, b.String()), nil
}

// resolveDelayedMerge walks the stack top-down. The first non-object
// resolved layer shadows everything below it outright; otherwise objects
// accumulate with earlier (higher-priority) layers' keys winning, until an
// object layer with IgnoresFallbacks set ends the walk.
func (ctx ResolveContext) resolveDelayedMerge(v *adt.DelayedMerge, source *Source) (adt.Value, error) {
	child := ctx.unrestricted()
	var acc adt.Value
	for _, layer := range v.Stack {
		_, resolved, err := child.Resolve(layer, source)
		if err != nil {
			return nil, err
		}
		obj, isObj := resolved.(*adt.Object)
		if !isObj {
			if acc == nil {
				return resolved, nil
			}
			break
		}
		if acc == nil {
			acc = obj
		} else {
			acc = acc.(*adt.Object).MergeLowerPriority(obj)
		}
		if obj.IgnoresFallbacks {
			break
		}
	}
	if acc == nil {
		return adt.NewNull(v.OriginVal), nil
	}
	return acc, nil
}

// resolveDelayedMergeObject is resolveDelayedMerge specialized to the case
// the parser already knows will produce an object.
func (ctx ResolveContext) resolveDelayedMergeObject(v *adt.DelayedMergeObject, source *Source) (adt.Value, error) {
	child := ctx.unrestricted()
	var acc *adt.Object
	for _, layer := range v.Stack {
		_, resolved, err := child.Resolve(layer, source)
		if err != nil {
			return nil, err
		}
		obj, isObj := resolved.(*adt.Object)
		if !isObj {
			if acc == nil {
				return nil, &hoconerrors.WrongTypeError{
					Origin: v.OriginVal, Expected: "object", Actual: fmt.Sprintf("%T", resolved),
				}
			}
			break
		}
		if acc == nil {
			acc = obj
		} else {
			acc = acc.MergeLowerPriority(obj)
		}
		if obj.IgnoresFallbacks {
			break
		}
	}
	if acc == nil {
		return nil, &hoconerrors.BugError{Msg: "DelayedMergeObject has an empty stack"}
	}
	return acc, nil
}

// resolveReference is the only place NotPossibleToResolve is ever caught:
// a required reference promotes it to a fatal UnresolvedSubstitutionError,
// an optional "${?...}" turns it into Absent.
func (ctx ResolveContext) resolveReference(v *adt.Reference, source *Source) (adt.Value, error) {
	target, found, err := ctx.lookupSubst(source, v.Expr, v.PrefixLength)
	if err != nil {
		return ctx.recoverFromCycle(v, err)
	}

	if !found {
		if v.Expr.Optional {
			return adt.NewAbsent(v.OriginVal), nil
		}
		if ctx.options.AllowUnresolved {
			return v, nil
		}
		return nil, ctx.unresolvedError(v)
	}

	_, resolved, err := ctx.unrestricted().Resolve(target, source)
	if err != nil {
		return ctx.recoverFromCycle(v, err)
	}
	return resolved, nil
}

func (ctx ResolveContext) recoverFromCycle(v *adt.Reference, err error) (adt.Value, error) {
	if err != errCycle {
		return nil, err
	}
	if v.Expr.Optional {
		return adt.NewAbsent(v.OriginVal), nil
	}
	if ctx.options.AllowUnresolved {
		return v, nil
	}
	return nil, ctx.unresolvedError(v)
}

func (ctx ResolveContext) unresolvedError(v *adt.Reference) error {
	return &hoconerrors.UnresolvedSubstitutionError{
		Expr:   v.Expr,
		Origin: v.OriginVal,
		Trace:  ctx.trace(),
	}
}
