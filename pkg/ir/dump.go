// Copyright hamp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"fmt"
	"strings"
)

// String renders a module's statement list for debugging, the Go
// equivalent of original_source/hamp/_show.py's code-list pretty-printer
// and grounded on the teacher's own fmt.Stringer convention for module-like
// types (pkg/schema/module.go: ModuleMap.String()). This is a debugging aid
// only, not the FIRRTL emitter (see pkg/firrtl).
func (m *Module) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s:\n", m.QualifiedName())
	dumpStmts(&b, m.Code, 1)
	return b.String()
}

func dumpStmts(b *strings.Builder, stmts []Stmt, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, s := range stmts {
		switch v := s.(type) {
		case Connect:
			fmt.Fprintf(b, "%s%s <= %s\n", pad, dumpExpr(v.LHS), dumpExpr(v.RHS))
		case When:
			fmt.Fprintf(b, "%swhen %s:\n", pad, dumpExpr(v.Cond))
			dumpStmts(b, v.Body, indent+1)
		case ElseWhen:
			fmt.Fprintf(b, "%selse when %s:\n", pad, dumpExpr(v.Cond))
			dumpStmts(b, v.Body, indent+1)
		case Else:
			fmt.Fprintf(b, "%selse:\n", pad)
			dumpStmts(b, v.Body, indent+1)
		case Printf:
			fmt.Fprintf(b, "%sprintf(%q, ...)\n", pad, v.Format)
		case Assertf:
			fmt.Fprintf(b, "%sassertf(%s, %q, ...)\n", pad, dumpExpr(v.Pred), v.Format)
		case Coverf:
			fmt.Fprintf(b, "%scoverf(%s, %q)\n", pad, dumpExpr(v.Pred), v.Format)
		}
	}
}

func dumpExpr(e *Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch p := e.Payload.(type) {
	case Lit:
		return p.Value.String()
	case Var:
		return p.Name
	case FieldAccess:
		return dumpExpr(p.Base) + "." + p.Field
	case Index:
		return dumpExpr(p.Base) + "[" + dumpExpr(p.Idx) + "]"
	case Bits:
		return fmt.Sprintf("%s[%d:%d]", dumpExpr(p.Base), p.Msb, p.Lsb)
	case InstPort:
		return p.Inst + "." + p.Port
	case OpExpr:
		parts := make([]string, len(p.Args))
		for i, a := range p.Args {
			parts[i] = dumpExpr(a)
		}
		return fmt.Sprintf("%s(%s)", p.Op, strings.Join(parts, ", "))
	default:
		return "?"
	}
}
