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
package firrtl

import (
	"fmt"
	"strings"

	"github.com/telemarkguru/hamp/pkg/ir"
)

// renderLit renders an integer literal typed (UInt<N>(v) / SInt<N>(v)).
func renderLit(e *ir.Expr) string {
	lit := e.Payload.(ir.Lit)
	return fmt.Sprintf("%s(%s)", renderType(e.Type), lit.Value.String())
}

// renderBareLit renders an integer literal as a bare immediate, used for
// operator parameters that are not themselves operands (shift-by-constant,
// bits' hi/lo, pad's n).
func renderBareLit(e *ir.Expr) string {
	lit := e.Payload.(ir.Lit)
	return lit.Value.String()
}

// opTemplate is the fixed per-operator rendering template (spec.md §4.7).
// %s placeholders are filled positionally by the operator's arguments.
var opTemplate = map[ir.Op]string{
	ir.OpAdd:  "add(%s, %s)",
	ir.OpSub:  "sub(%s, %s)",
	ir.OpMul:  "mul(%s, %s)",
	ir.OpDiv:  "div(%s, %s)",
	ir.OpRem:  "rem(%s, %s)",
	ir.OpEq:   "eq(%s, %s)",
	ir.OpNeq:  "neq(%s, %s)",
	ir.OpGt:   "gt(%s, %s)",
	ir.OpGeq:  "geq(%s, %s)",
	ir.OpLt:   "lt(%s, %s)",
	ir.OpLeq:  "leq(%s, %s)",
	ir.OpAnd:  "and(%s, %s)",
	ir.OpOr:   "or(%s, %s)",
	ir.OpXor:  "xor(%s, %s)",
	ir.OpNot:  "not(%s)",
	ir.OpNeg:  "neg(%s)",
	ir.OpCvt:  "cvt(%s)",
	ir.OpOrr:  "orr(%s)",
	ir.OpAndr: "andr(%s)",
	ir.OpXorr: "xorr(%s)",
	ir.OpCat:  "cat(%s, %s)",
}

// renderExpr renders e as a FIRRTL expression.
func renderExpr(e *ir.Expr) string {
	switch p := e.Payload.(type) {
	case ir.Lit:
		return renderLit(e)
	case ir.Var:
		return p.Name
	case ir.FieldAccess:
		return renderExpr(p.Base) + "." + p.Field
	case ir.Index:
		return fmt.Sprintf("%s[%s]", renderExpr(p.Base), renderExpr(p.Idx))
	case ir.Bits:
		return fmt.Sprintf("bits(%s, %d, %d)", renderExpr(p.Base), p.Msb, p.Lsb)
	case ir.InstPort:
		return p.Inst + "." + p.Port
	case ir.OpExpr:
		return renderOp(p)
	default:
		return "?expr?"
	}
}

func renderOp(p ir.OpExpr) string {
	switch p.Op {
	case ir.OpShl:
		// Constant shift amount renders shl(x,k) with a bare immediate;
		// a dynamic amount renders dshl(x,y) with a full expression.
		if _, ok := p.Args[1].Payload.(ir.Lit); ok {
			return fmt.Sprintf("shl(%s, %s)", renderExpr(p.Args[0]), renderBareLit(p.Args[1]))
		}
		return fmt.Sprintf("dshl(%s, %s)", renderExpr(p.Args[0]), renderExpr(p.Args[1]))
	case ir.OpShr:
		if _, ok := p.Args[1].Payload.(ir.Lit); ok {
			return fmt.Sprintf("shr(%s, %s)", renderExpr(p.Args[0]), renderBareLit(p.Args[1]))
		}
		return fmt.Sprintf("dshr(%s, %s)", renderExpr(p.Args[0]), renderExpr(p.Args[1]))
	case ir.OpPad:
		return fmt.Sprintf("pad(%s, %s)", renderExpr(p.Args[0]), renderBareLit(p.Args[1]))
	case ir.OpAsUint:
		return fmt.Sprintf("asUInt(%s)", renderExpr(p.Args[0]))
	case ir.OpAsSint:
		return fmt.Sprintf("asSInt(%s)", renderExpr(p.Args[0]))
	case ir.OpAsClock:
		return fmt.Sprintf("asClock(%s)", renderExpr(p.Args[0]))
	case ir.OpAsAsyncRst:
		return fmt.Sprintf("asAsyncReset(%s)", renderExpr(p.Args[0]))
	}
	tmpl, ok := opTemplate[p.Op]
	if !ok {
		return "?op?"
	}
	args := make([]any, len(p.Args))
	for i, a := range p.Args {
		args[i] = renderExpr(a)
	}
	return fmt.Sprintf(tmpl, args...)
}

// renderFormat translates hamp's printf/assertf/coverf mini format
// language (%b/%d/%x, %% escaped) into FIRRTL's native printf string form,
// which uses the same verbs.
func renderFormat(format string, args []*ir.Expr) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	for _, a := range args {
		b.WriteString(", ")
		b.WriteString(renderExpr(a))
	}
	return b.String()
}
