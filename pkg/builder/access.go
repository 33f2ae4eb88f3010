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

// FieldAccess builds a.field. The base must be a struct type and field
// must exist.
func FieldAccess(base *ir.Expr, field string) (*ir.Expr, error) {
	s, ok := base.Type.AsStruct()
	if !ok {
		return nil, typeErrorf("%s is not a struct", base.Type)
	}
	f, ok := s.Field(field)
	if !ok {
		return nil, nameErrorf("no such field %q", field)
	}
	return &ir.Expr{Type: f.Type, Payload: ir.FieldAccess{Base: base, Field: field}}, nil
}

// IndexConst builds a[i] for a compile-time-constant index. It is
// bounds-checked immediately: rejects iff i is outside [0,size).
func IndexConst(base *ir.Expr, i int) (*ir.Expr, error) {
	a, ok := base.Type.AsArray()
	if !ok {
		return nil, typeErrorf("%s is not an array", base.Type)
	}
	if i < 0 || uint(i) >= a.Size {
		return nil, indexErrorf("index %d out of range (size=%d)", i, a.Size)
	}
	idx := ir.NewLit(hwtype.Uint(hwtype.MinBitsFor(bigFromUint(uint(i)), false)), int64(i))
	return &ir.Expr{Type: a.Elem, Payload: ir.Index{Base: base, Idx: idx}}, nil
}

// IndexExpr builds a[i] for a dynamic, unsigned-expression index. Bounds
// are only checked at simulation/elaboration time downstream, never here.
func IndexExpr(base, idx *ir.Expr) (*ir.Expr, error) {
	a, ok := base.Type.AsArray()
	if !ok {
		return nil, typeErrorf("%s is not an array", base.Type)
	}
	it, err := asInt(idx)
	if err != nil {
		return nil, err
	}
	if it.Signed() {
		return nil, typeErrorf("array index must be unsigned")
	}
	return &ir.Expr{Type: a.Elem, Payload: ir.Index{Base: base, Idx: idx}}, nil
}

// Slice builds a[hi:lo], a bit slice over an integer-typed expression.
// Rejects iff hi < lo or hi >= bitwidth(a); step sizes are not supported.
func Slice(base *ir.Expr, hi, lo uint) (*ir.Expr, error) {
	it, err := asInt(base)
	if err != nil {
		return nil, typeErrorf("cannot slice non-integer type %s", base.Type)
	}
	if hi < lo {
		return nil, indexErrorf("slice high bound %d is below low bound %d", hi, lo)
	}
	if !it.Sized() {
		return nil, indexErrorf("cannot slice unsized integer %s", base.Type)
	}
	if hi >= it.Width() {
		return nil, indexErrorf("slice high bound %d exceeds bitwidth %d", hi, it.Width())
	}
	return &ir.Expr{Type: hwtype.Uint(hi - lo + 1), Payload: ir.Bits{Base: base, Msb: hi, Lsb: lo}}, nil
}
