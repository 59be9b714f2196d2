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

	hoconerrors "github.com/hocon-lang/hocon-go/errors"
	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

// maxDepth bounds resolveStack usage. It is load-bearing: it converts
// pathological or mis-restricted inputs into a diagnosable error instead of
// a stack overflow. Keep it exactly 30.
const maxDepth = 30

// engineState is the genuinely shared, mutated-in-place part of a
// ResolveContext: memos accumulate monotonically for the lifetime of one
// top-level Resolve call, and cycleMarkers/trace are maintained as proper
// stacks, pushed before recursing into a node and popped (via defer) on the
// way back out. This gives the same visibility spec.md §9's functional
// description calls for without copying a map on every recursive step; see
// DESIGN.md for why this mutable-engine shape was chosen over literally
// threading a new map through every return.
type engineState struct {
	memos        Memos
	cycleMarkers map[adt.Value]bool
	trace        []*adt.Origin
}

// ResolveContext is the resolver engine described in spec §4.6.
// restrictToChild is the only field that genuinely differs between sibling
// recursive calls, so it alone is carried by value; everything else lives
// behind the shared *engineState pointer.
type ResolveContext struct {
	state           *engineState
	options         Options
	restrictToChild *adt.Path
}

// NewContext returns a fresh engine for one top-level Resolve call.
func NewContext(options Options) ResolveContext {
	return ResolveContext{
		state: &engineState{
			memos:        NewMemos(),
			cycleMarkers: make(map[adt.Value]bool),
		},
		options: options,
	}
}

func (ctx ResolveContext) restrict(p adt.Path) ResolveContext {
	ctx.restrictToChild = &p
	return ctx
}

func (ctx ResolveContext) unrestricted() ResolveContext {
	ctx.restrictToChild = nil
	return ctx
}

// cycleSignal is NotPossibleToResolve (spec §7): raised when the engine
// detects it has been asked to resolve a node it is already in the middle
// of resolving. It is recoverable — the Reference resolution step is the
// only place that ever observes it, since references are the only way a
// cycle can arise in an otherwise acyclic tree (spec §9).
type cycleSignal struct{}

func (*cycleSignal) Error() string { return "hocon: not possible to resolve (cycle)" }

var errCycle error = &cycleSignal{}

// Resolve implements spec §4.6 step by step: depth guard, memo check, cycle
// check, one dispatch to the value-specific resolution step, then
// memoization under the key the result's status calls for.
func (ctx ResolveContext) Resolve(original adt.Value, source *Source) (ResolveContext, adt.Value, error) {
	if len(ctx.state.trace) >= maxDepth {
		return ctx, nil, &hoconerrors.BugError{
			Msg: fmt.Sprintf("resolve too deep (over %d) at %s", maxDepth, original.Origin()),
		}
	}

	if cached, ok := ctx.state.memos.Get(original, ctx.restrictToChild); ok {
		return ctx, cached, nil
	}

	if ctx.state.cycleMarkers[original] {
		return ctx, nil, errCycle
	}

	maybeTraceEnter(original)
	ctx.state.trace = append(ctx.state.trace, original.Origin())
	ctx.state.cycleMarkers[original] = true
	defer func() {
		ctx.state.trace = ctx.state.trace[:len(ctx.state.trace)-1]
		delete(ctx.state.cycleMarkers, original)
	}()

	resolved, err := ctx.step(original, source)
	if err != nil {
		return ctx, nil, err
	}

	switch {
	case resolved.Status() == adt.Resolved:
		ctx.state.memos = ctx.state.memos.Put(original, nil, resolved)
	case ctx.restrictToChild != nil:
		ctx.state.memos = ctx.state.memos.Put(original, ctx.restrictToChild, resolved)
	case ctx.options.AllowUnresolved:
		ctx.state.memos = ctx.state.memos.Put(original, nil, resolved)
	default:
		return ctx, nil, &hoconerrors.BugError{
			Msg: "unresolved value escaped with allowUnresolved=false: " + original.Origin().String(),
		}
	}

	return ctx, resolved, nil
}

// trace returns a copy of the current origin stack, outermost first, for
// embedding in an UnresolvedSubstitutionError.
func (ctx ResolveContext) trace() []*adt.Origin {
	cp := make([]*adt.Origin, len(ctx.state.trace))
	copy(cp, ctx.state.trace)
	return cp
}
