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
	"os"

	"github.com/kr/pretty"
	"github.com/hocon-lang/hocon-go/internal/core/adt"
)

// Debug, when set, makes a completed Resolve call dump its result tree to
// stderr with github.com/kr/pretty. It costs nothing when false and is
// meant to be flipped from a test or from cmd/hocon's --debug flag, never
// left on in a library build.
var Debug = false

func maybeDump(v adt.Value) {
	if !Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "hocon: resolved tree:\n%# v\n", pretty.Formatter(v))
}

// maybeTraceEnter logs, when Debug is enabled, that resolution is
// recursing into original. It prints Origin.ID alongside the source
// location because a node built by the tree-builder or a test is often
// copied before it is handed to Resolve, so its pointer identity (what
// cycleMarkers and memos actually key on) isn't stable enough to grep a log
// for across such a copy; ID is.
func maybeTraceEnter(v adt.Value) {
	if !Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "hocon: entering %s (id=%s)\n", v.Origin(), v.Origin().ID)
}
