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

// inferOpType re-derives the width/signedness an operator expression ought
// to have from its argument types, independent of pkg/builder, per spec.md
// §4.3's operator table. It intentionally duplicates that table rather than
// calling into the builder: the validator must also be able to catch a
// Database assembled by hand whose declared OpExpr.Type disagrees with the
// rule, not just one produced by the builder itself.
func inferOpType(op ir.OpExpr) (hwtype.Type, error) {
	args := op.Args
	intArg := func(i int) (hwtype.IntType, error) {
		it, ok := args[i].Type.AsInt()
		if !ok {
			return nil, fmt.Errorf("operator %s argument %d is not an integer type (%s)", op.Op, i, args[i].Type)
		}
		return it, nil
	}

	switch op.Op {
	case ir.OpAdd, ir.OpSub:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if a.Signed() != b.Signed() {
			return nil, fmt.Errorf("operator %s operands have mismatched sign", op.Op)
		}
		return signedInt(a.Signed(), max(a.Width(), b.Width())+1), nil
	case ir.OpMul:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if a.Signed() != b.Signed() {
			return nil, fmt.Errorf("operator %s operands have mismatched sign", op.Op)
		}
		return signedInt(a.Signed(), a.Width()+b.Width()), nil
	case ir.OpDiv:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if a.Signed() != b.Signed() {
			return nil, fmt.Errorf("operator %s operands have mismatched sign", op.Op)
		}
		w := a.Width()
		if a.Signed() {
			w++
		}
		return signedInt(a.Signed(), w), nil
	case ir.OpRem:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if a.Signed() != b.Signed() {
			return nil, fmt.Errorf("operator %s operands have mismatched sign", op.Op)
		}
		return signedInt(a.Signed(), min(a.Width(), b.Width())), nil
	case ir.OpAnd, ir.OpOr, ir.OpXor:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if a.Signed() != b.Signed() {
			return nil, fmt.Errorf("operator %s operands have mismatched sign", op.Op)
		}
		return hwtype.Uint(max(a.Width(), b.Width())), nil
	case ir.OpEq, ir.OpNeq, ir.OpGt, ir.OpGeq, ir.OpLt, ir.OpLeq:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if a.Signed() != b.Signed() {
			return nil, fmt.Errorf("operator %s operands have mismatched sign", op.Op)
		}
		return hwtype.U1(), nil
	case ir.OpShl:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if b.Signed() {
			return nil, fmt.Errorf("operator %s shift amount must be unsigned", op.Op)
		}
		if lit, ok := args[1].Payload.(ir.Lit); ok {
			return signedInt(a.Signed(), a.Width()+uint(lit.Value.Int64())), nil
		}
		w := a.Width()
		return signedInt(a.Signed(), w+(uint(1)<<w-1)), nil
	case ir.OpShr:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		if b.Signed() {
			return nil, fmt.Errorf("operator %s shift amount must be unsigned", op.Op)
		}
		if lit, ok := args[1].Payload.(ir.Lit); ok {
			k := uint(lit.Value.Int64())
			w := uint(1)
			if a.Width() > k {
				w = a.Width() - k
			}
			return signedInt(a.Signed(), w), nil
		}
		return signedInt(a.Signed(), a.Width()), nil
	case ir.OpNeg:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		return hwtype.Sint(a.Width() + 1), nil
	case ir.OpNot:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		return hwtype.Uint(a.Width()), nil
	case ir.OpCvt:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		if a.Signed() {
			return a, nil
		}
		return hwtype.Sint(a.Width() + 1), nil
	case ir.OpOrr, ir.OpAndr, ir.OpXorr:
		if _, err := intArg(0); err != nil {
			return nil, err
		}
		return hwtype.U1(), nil
	case ir.OpCat:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		b, err := intArg(1)
		if err != nil {
			return nil, err
		}
		return hwtype.Uint(a.Width() + b.Width()), nil
	case ir.OpPad:
		a, err := intArg(0)
		if err != nil {
			return nil, err
		}
		lit, ok := args[1].Payload.(ir.Lit)
		if !ok {
			return nil, fmt.Errorf("operator %s pad amount must be a literal", op.Op)
		}
		n := uint(lit.Value.Int64())
		return signedInt(a.Signed(), max(a.Width(), n)), nil
	case ir.OpAsUint:
		return hwtype.Uint(hwtype.BitSize(args[0].Type)), nil
	case ir.OpAsSint:
		return hwtype.Sint(hwtype.BitSize(args[0].Type)), nil
	case ir.OpAsClock:
		return hwtype.Clock(), nil
	case ir.OpAsAsyncRst:
		return hwtype.AsyncReset(), nil
	default:
		return nil, fmt.Errorf("unknown operator %s", op.Op)
	}
}

func signedInt(signed bool, width uint) hwtype.Type {
	if signed {
		return hwtype.Sint(width)
	}
	return hwtype.Uint(width)
}
