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
	"os"

	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

var envOrigin = adt.NewOrigin("<environment>", 0)

// lookupSubst resolves expr.Path against source, honoring prefixLength: a
// reference inherited from an included file first tries the path with its
// included-file prefix stripped, and falls back to the full path if that
// fails. See spec §4.5.
func (ctx ResolveContext) lookupSubst(source *Source, expr adt.SubstitutionExpression, prefixLength int) (adt.Value, bool, error) {
	if prefixLength > 0 {
		if stripped, ok := expr.Path.SubPath(prefixLength); ok {
			val, found, err := ctx.lookupPath(source, stripped)
			if err != nil {
				return nil, false, err
			}
			if found {
				return val, true, nil
			}
		}
	}
	return ctx.lookupPath(source, expr.Path)
}

// lookupPath implements the three-step algorithm of spec §4.5: traverse the
// tree (honoring self-merge overrides and delayed-merge stacks), then fall
// through to the process environment for a single-segment path when
// UseSystemEnvironment is set, else report not-found.
func (ctx ResolveContext) lookupPath(source *Source, p adt.Path) (adt.Value, bool, error) {
	root := source.applyOverrides(source.root)
	val, found, err := ctx.lookupIn(root, p, source)
	if err != nil {
		return nil, false, err
	}
	if found {
		return val, true, nil
	}
	if ctx.options.UseSystemEnvironment && p.Length() == 1 {
		if s, ok := os.LookupEnv(p.First()); ok {
			return adt.NewStr(envOrigin, s), true, nil
		}
	}
	return nil, false, nil
}

// lookupIn walks current along remaining, resolving just enough of each
// intermediate node (delayed merges, and any other unresolved value found
// along the way) to keep descending, without resolving the node the path
// finally lands on — that value is returned as-is, still possibly
// unresolved, and it is the caller's job (the Reference resolution step) to
// resolve it to completion.
func (ctx ResolveContext) lookupIn(current adt.Value, remaining adt.Path, source *Source) (adt.Value, bool, error) {
	current = source.applyOverrides(current)

	switch v := current.(type) {
	case *adt.Object:
		val, ok := v.Get(remaining.First())
		if !ok {
			return nil, false, nil
		}
		if rem, hasMore := remaining.Remainder(); hasMore {
			return ctx.lookupIn(val, rem, source)
		}
		return val, true, nil

	case *adt.DelayedMergeObject:
		return ctx.lookupInMergeStack(v.Stack, remaining, source)

	case *adt.DelayedMerge:
		_, resolved, err := ctx.unrestricted().Resolve(current, source)
		if err != nil {
			return nil, false, err
		}
		return ctx.lookupIn(resolved, remaining, source)

	default:
		if current.Status() == adt.Unresolved {
			_, resolved, err := ctx.unrestricted().Resolve(current, source)
			if err != nil {
				return nil, false, err
			}
			return ctx.lookupIn(resolved, remaining, source)
		}
		// A concrete leaf or list has no key to descend into.
		return nil, false, nil
	}
}

// lookupInMergeStack walks a DelayedMergeObject's stack top-down, resolving
// each layer only as far as needed to tell whether it is an object
// containing remaining's first segment. The first layer that is a resolved
// non-object value shadows everything below it and ends the search; an
// object layer with IgnoresFallbacks set does the same once its own lookup
// misses.
func (ctx ResolveContext) lookupInMergeStack(stack []adt.Value, remaining adt.Path, source *Source) (adt.Value, bool, error) {
	for _, layer := range stack {
		resolvedLayer := layer
		if layer.Status() == adt.Unresolved {
			_, r, err := ctx.unrestricted().Resolve(layer, source)
			if err != nil {
				return nil, false, err
			}
			resolvedLayer = r
		}

		obj, isObj := resolvedLayer.(*adt.Object)
		if !isObj {
			return nil, false, nil // non-object layer shadows everything below
		}

		val, ok := obj.Get(remaining.First())
		if ok {
			if rem, hasMore := remaining.Remainder(); hasMore {
				return ctx.lookupIn(val, rem, source)
			}
			return val, true, nil
		}
		if obj.IgnoresFallbacks {
			return nil, false, nil
		}
	}
	return nil, false, nil
}
