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
package validate

import (
	"fmt"

	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// checkStmts walks a statement list recursively, validating connects,
// control-flow conditions, and verification statements.
func checkStmts(db *ir.Database, m *ir.Module, stmts []ir.Stmt) []error {
	var errs []error
	for _, s := range stmts {
		switch v := s.(type) {
		case ir.Connect:
			errs = append(errs, checkExpr(db, m, v.LHS)...)
			errs = append(errs, checkExpr(db, m, v.RHS)...)
			if !hwtype.Equivalent(v.LHS.Type, v.RHS.Type, false) {
				errs = append(errs, fmt.Errorf("%s: connect type mismatch: %s <= %s", m.QualifiedName(), v.LHS.Type, v.RHS.Type))
			}
		case ir.When:
			errs = append(errs, requireU1(m, v.Cond)...)
			errs = append(errs, checkStmts(db, m, v.Body)...)
		case ir.ElseWhen:
			errs = append(errs, requireU1(m, v.Cond)...)
			errs = append(errs, checkStmts(db, m, v.Body)...)
		case ir.Else:
			errs = append(errs, checkStmts(db, m, v.Body)...)
		case ir.Printf:
			errs = append(errs, checkVerification(m, v.Clock, nil, v.Enable, v.Format, v.Args)...)
		case ir.Assertf:
			errs = append(errs, checkVerification(m, v.Clock, v.Pred, v.Enable, v.Format, v.Args)...)
		case ir.Coverf:
			errs = append(errs, checkVerification(m, v.Clock, v.Pred, v.Enable, v.Format, nil)...)
		}
	}
	return errs
}

func requireU1(m *ir.Module, e *ir.Expr) []error {
	it, ok := e.Type.AsInt()
	if !ok || it.Signed() || it.Width() != 1 {
		return []error{fmt.Errorf("%s: condition must be u1, got %s", m.QualifiedName(), e.Type)}
	}
	return nil
}

func checkVerification(m *ir.Module, clock, pred, enable *ir.Expr, format string, args []*ir.Expr) []error {
	var errs []error
	if !hwtype.IsClock(clock.Type) {
		errs = append(errs, fmt.Errorf("%s: verification statement clock is not clock-typed", m.QualifiedName()))
	}
	if pred != nil {
		errs = append(errs, requireU1(m, pred)...)
	}
	errs = append(errs, requireU1(m, enable)...)
	for _, a := range args {
		if !a.Type.Ground() {
			errs = append(errs, fmt.Errorf("%s: verification statement argument is not ground-typed: %s", m.QualifiedName(), a.Type))
		}
	}
	if n := countPlaceholders(format); n != len(args) {
		errs = append(errs, fmt.Errorf("%s: placeholders vs arguments mismatch %d != %d", m.QualifiedName(), n, len(args)))
	}
	return errs
}

// countPlaceholders mirrors pkg/builder's rule (%b/%d/%x, %% escaped).
func countPlaceholders(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			continue
		}
		switch format[i+1] {
		case '%':
			i++
		case 'b', 'd', 'x':
			n++
			i++
		}
	}
	return n
}

// checkExpr walks an expression tree validating operator-rule consistency:
// every OpExpr's declared Type must equal what the operator's own width/sign
// rule would infer from its arguments (spec.md §8 Invariant 2). This is
// intentionally a re-derivation rather than a call back into pkg/builder,
// since the validator must also catch a Database assembled by hand (not
// through the builder) with an inconsistent type.
func checkExpr(db *ir.Database, m *ir.Module, e *ir.Expr) []error {
	if e == nil {
		return nil
	}
	var errs []error
	switch p := e.Payload.(type) {
	case ir.FieldAccess:
		errs = append(errs, checkExpr(db, m, p.Base)...)
		st, ok := p.Base.Type.AsStruct()
		if !ok {
			errs = append(errs, fmt.Errorf("%s: field access on non-struct type %s", m.QualifiedName(), p.Base.Type))
			break
		}
		if _, ok := st.Field(p.Field); !ok {
			errs = append(errs, fmt.Errorf("%s: no such field %q on %s", m.QualifiedName(), p.Field, st))
		}
	case ir.Index:
		errs = append(errs, checkExpr(db, m, p.Base)...)
		errs = append(errs, checkExpr(db, m, p.Idx)...)
		if _, ok := p.Base.Type.AsArray(); !ok {
			errs = append(errs, fmt.Errorf("%s: index on non-array type %s", m.QualifiedName(), p.Base.Type))
		}
	case ir.Bits:
		errs = append(errs, checkExpr(db, m, p.Base)...)
		it, ok := p.Base.Type.AsInt()
		if !ok {
			errs = append(errs, fmt.Errorf("%s: bit slice on non-integer type %s", m.QualifiedName(), p.Base.Type))
			break
		}
		if p.Msb < p.Lsb {
			errs = append(errs, fmt.Errorf("%s: slice msb %d below lsb %d", m.QualifiedName(), p.Msb, p.Lsb))
		}
		if it.Sized() && p.Msb >= it.Width() {
			errs = append(errs, fmt.Errorf("%s: slice msb %d exceeds bitwidth %d", m.QualifiedName(), p.Msb, it.Width()))
		}
	case ir.InstPort:
		d, ok := m.Data[p.Inst]
		if !ok || d.Kind != ir.KindInstance {
			errs = append(errs, fmt.Errorf("%s: %q is not an instance", m.QualifiedName(), p.Inst))
			break
		}
		target, ok := db.Module(d.Circuit + "::" + d.Module)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: instance %q refers to undefined module %s::%s", m.QualifiedName(), p.Inst, d.Circuit, d.Module))
			break
		}
		if _, ok := target.Get(p.Port); !ok {
			errs = append(errs, fmt.Errorf("%s: %s is not a port of %s", m.QualifiedName(), p.Port, target.QualifiedName()))
		}
	case ir.Var:
		d, ok := m.Data[p.Name]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no such member %q", m.QualifiedName(), p.Name))
		} else if d.Type != nil && e.Type != nil && !hwtype.Equal(d.Type, e.Type) {
			errs = append(errs, fmt.Errorf("%s: reference to %q has type %s but member is declared %s",
				m.QualifiedName(), p.Name, e.Type, d.Type))
		}
	case ir.OpExpr:
		for _, a := range p.Args {
			errs = append(errs, checkExpr(db, m, a)...)
		}
		if want, err := inferOpType(p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.QualifiedName(), err))
		} else if !hwtype.Equal(want, e.Type) {
			errs = append(errs, fmt.Errorf("%s: operator %s declared type %s does not match inferred type %s",
				m.QualifiedName(), p.Op, e.Type, want))
		}
	}
	return errs
}
