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
package builder

import (
	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// sameSign checks both operands have matching integer signedness and
// returns that common signedness, per spec.md §4.3's operator
// constraint table.
func sameSign(a, bt hwtype.IntType) (bool, error) {
	if a.Signed() != bt.Signed() {
		return false, typeErrorf("Both operands must have same sign")
	}
	return a.Signed(), nil
}

func intType(signed bool, width uint) hwtype.Type {
	if signed {
		return hwtype.Sint(width)
	}
	return hwtype.Uint(width)
}

func binOp(op ir.Op, a, b *ir.Expr, resultType hwtype.Type) *ir.Expr {
	return &ir.Expr{Type: resultType, Payload: ir.OpExpr{Op: op, Args: []*ir.Expr{a, b}}}
}

func unOp(op ir.Op, a *ir.Expr, resultType hwtype.Type) *ir.Expr {
	return &ir.Expr{Type: resultType, Payload: ir.OpExpr{Op: op, Args: []*ir.Expr{a}}}
}

// Add builds a+b. Width = max(w(L),w(R))+1, signedness of L.
func Add(a, b *ir.Expr) (*ir.Expr, error) { return addSub(ir.OpAdd, a, b) }

// Sub builds a-b. Same width rule as Add.
func Sub(a, b *ir.Expr) (*ir.Expr, error) { return addSub(ir.OpSub, a, b) }

func addSub(op ir.Op, a, b *ir.Expr) (*ir.Expr, error) {
	a, b, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	signed, err := sameSign(la, lb)
	if err != nil {
		return nil, err
	}
	w := max(la.Width(), lb.Width()) + 1
	return binOp(op, a, b, intType(signed, w)), nil
}

// Mul builds a*b. Width = w(L)+w(R), signedness of L.
func Mul(a, b *ir.Expr) (*ir.Expr, error) {
	a, b, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	signed, err := sameSign(la, lb)
	if err != nil {
		return nil, err
	}
	return binOp(ir.OpMul, a, b, intType(signed, la.Width()+lb.Width())), nil
}

// Div builds a//b. Width = w(L)+(signed?1:0), signedness of L.
func Div(a, b *ir.Expr) (*ir.Expr, error) {
	a, b, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	signed, err := sameSign(la, lb)
	if err != nil {
		return nil, err
	}
	w := la.Width()
	if signed {
		w++
	}
	return binOp(ir.OpDiv, a, b, intType(signed, w)), nil
}

// Rem builds a%b. Width = min(w(L),w(R)), signedness of L.
func Rem(a, b *ir.Expr) (*ir.Expr, error) {
	a, b, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	signed, err := sameSign(la, lb)
	if err != nil {
		return nil, err
	}
	return binOp(ir.OpRem, a, b, intType(signed, min(la.Width(), lb.Width()))), nil
}

func bitwise(op ir.Op, a, b *ir.Expr) (*ir.Expr, error) {
	a, b, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	if _, err := sameSign(la, lb); err != nil {
		return nil, err
	}
	return binOp(op, a, b, hwtype.Uint(max(la.Width(), lb.Width()))), nil
}

// BitAnd builds a&b: uint, width max(w(L),w(R)).
func BitAnd(a, b *ir.Expr) (*ir.Expr, error) { return bitwise(ir.OpAnd, a, b) }

// BitOr builds a|b: uint, width max(w(L),w(R)).
func BitOr(a, b *ir.Expr) (*ir.Expr, error) { return bitwise(ir.OpOr, a, b) }

// BitXor builds a^b: uint, width max(w(L),w(R)).
func BitXor(a, b *ir.Expr) (*ir.Expr, error) { return bitwise(ir.OpXor, a, b) }

func compare(op ir.Op, a, b *ir.Expr) (*ir.Expr, error) {
	a, b, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	if _, err := sameSign(la, lb); err != nil {
		return nil, err
	}
	return binOp(op, a, b, hwtype.U1()), nil
}

// Eq, Neq, Gt, Geq, Lt, Leq build comparison expressions: u1, operands must
// share signedness.
func Eq(a, b *ir.Expr) (*ir.Expr, error)  { return compare(ir.OpEq, a, b) }
func Neq(a, b *ir.Expr) (*ir.Expr, error) { return compare(ir.OpNeq, a, b) }
func Gt(a, b *ir.Expr) (*ir.Expr, error)  { return compare(ir.OpGt, a, b) }
func Geq(a, b *ir.Expr) (*ir.Expr, error) { return compare(ir.OpGeq, a, b) }
func Lt(a, b *ir.Expr) (*ir.Expr, error)  { return compare(ir.OpLt, a, b) }
func Leq(a, b *ir.Expr) (*ir.Expr, error) { return compare(ir.OpLeq, a, b) }

func requireUnsignedShiftAmount(b *ir.Expr) (hwtype.IntType, error) {
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	if lb.Signed() {
		return nil, typeErrorf("shift amount must be unsigned")
	}
	return lb, nil
}

// constUint returns the literal value of b if it is a constant unsigned
// literal, else ok is false (meaning the shift amount is a dynamic
// expression).
func constUint(b *ir.Expr) (uint, bool) {
	lit, ok := b.Payload.(ir.Lit)
	if !ok {
		return 0, false
	}
	return uint(lit.Value.Int64()), true
}

// Shl builds a<<b. By-constant: width = w(L)+k. By-expr: worst-case width
// w(L) + 2^w(L) - 1.
func Shl(a, b *ir.Expr) (*ir.Expr, error) {
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	if _, err := requireUnsignedShiftAmount(b); err != nil {
		return nil, err
	}
	if k, ok := constUint(b); ok {
		return binOp(ir.OpShl, a, b, intType(la.Signed(), la.Width()+k)), nil
	}
	w := la.Width()
	worst := w + (uint(1)<<w - 1)
	return binOp(ir.OpShl, a, b, intType(la.Signed(), worst)), nil
}

// Shr builds a>>b. By-constant: width = max(w(L)-k,1). By-expr: width =
// w(L).
func Shr(a, b *ir.Expr) (*ir.Expr, error) {
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	if _, err := requireUnsignedShiftAmount(b); err != nil {
		return nil, err
	}
	if k, ok := constUint(b); ok {
		w := uint(1)
		if la.Width() > k {
			w = la.Width() - k
		}
		return binOp(ir.OpShr, a, b, intType(la.Signed(), w)), nil
	}
	return binOp(ir.OpShr, a, b, intType(la.Signed(), la.Width())), nil
}

// Neg builds unary -a: sint, width w+1.
func Neg(a *ir.Expr) (*ir.Expr, error) {
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	return unOp(ir.OpNeg, a, hwtype.Sint(la.Width()+1)), nil
}

// BitNot builds unary ~a: uint, width w.
func BitNot(a *ir.Expr) (*ir.Expr, error) {
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	return unOp(ir.OpNot, a, hwtype.Uint(la.Width())), nil
}

// Cvt builds a signed-casting identity/widen: identity if already signed,
// else sint with width w+1.
func Cvt(a *ir.Expr) (*ir.Expr, error) {
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	if la.Signed() {
		return a, nil
	}
	return unOp(ir.OpCvt, a, hwtype.Sint(la.Width()+1)), nil
}

func reduce(op ir.Op, a *ir.Expr) (*ir.Expr, error) {
	if _, err := asInt(a); err != nil {
		return nil, err
	}
	return unOp(op, a, hwtype.U1()), nil
}

// Orr, Andr, Xorr build reduction operators: u1.
func Orr(a *ir.Expr) (*ir.Expr, error)  { return reduce(ir.OpOrr, a) }
func Andr(a *ir.Expr) (*ir.Expr, error) { return reduce(ir.OpAndr, a) }
func Xorr(a *ir.Expr) (*ir.Expr, error) { return reduce(ir.OpXorr, a) }

// Cat builds cat(a,b): uint, width w(a)+w(b).
func Cat(a, b *ir.Expr) (*ir.Expr, error) {
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	lb, err := asInt(b)
	if err != nil {
		return nil, err
	}
	return binOp(ir.OpCat, a, b, hwtype.Uint(la.Width()+lb.Width())), nil
}

// Pad builds pad(a,n): same signedness as a, width max(w(a),n).
func Pad(a *ir.Expr, n uint) (*ir.Expr, error) {
	la, err := asInt(a)
	if err != nil {
		return nil, err
	}
	nExpr := &ir.Expr{Type: hwtype.Uint(hwtype.MinBitsFor(bigFromUint(n), false)), Payload: ir.Lit{Value: bigFromUint(n)}}
	return binOp(ir.OpPad, a, nExpr, intType(la.Signed(), max(la.Width(), n))), nil
}

// AsUint reinterprets a ground-typed expression as an unsigned integer of
// the same bit width.
func AsUint(a *ir.Expr) (*ir.Expr, error) {
	if !a.Type.Ground() {
		return nil, typeErrorf("as_uint requires a ground-typed operand, got %s", a.Type)
	}
	return unOp(ir.OpAsUint, a, hwtype.Uint(hwtype.BitSize(a.Type))), nil
}

// AsSint reinterprets a ground-typed expression as a signed integer of the
// same bit width.
func AsSint(a *ir.Expr) (*ir.Expr, error) {
	if !a.Type.Ground() {
		return nil, typeErrorf("as_sint requires a ground-typed operand, got %s", a.Type)
	}
	return unOp(ir.OpAsSint, a, hwtype.Sint(hwtype.BitSize(a.Type))), nil
}

// AsClock reinterprets a single-bit ground expression as a clock.
func AsClock(a *ir.Expr) (*ir.Expr, error) {
	if !a.Type.Ground() || hwtype.BitSize(a.Type) != 1 {
		return nil, typeErrorf("as_clock requires a 1-bit ground operand, got %s", a.Type)
	}
	return unOp(ir.OpAsClock, a, hwtype.Clock()), nil
}

// AsAsyncReset reinterprets a single-bit ground expression as an
// asynchronous reset.
func AsAsyncReset(a *ir.Expr) (*ir.Expr, error) {
	if !a.Type.Ground() || hwtype.BitSize(a.Type) != 1 {
		return nil, typeErrorf("as_async_reset requires a 1-bit ground operand, got %s", a.Type)
	}
	return unOp(ir.OpAsAsyncRst, a, hwtype.AsyncReset()), nil
}
