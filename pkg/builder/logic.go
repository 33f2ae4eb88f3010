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

// LogicValue normalizes an operand for use in And/Or/Not, per spec.md
// §4.3's boolean-reduction rule: a multi-bit or signed integer operand is
// OR-reduced to u1; a u1 passes through unchanged; a plain (untyped)
// literal becomes u1(0) or u1(1) by its truthiness.
func LogicValue(e *ir.Expr) (*ir.Expr, error) {
	if isUntyped(e) {
		lit := e.Payload.(ir.Lit)
		v := int64(0)
		if lit.Value.Sign() != 0 {
			v = 1
		}
		return ir.NewLit(hwtype.U1(), v), nil
	}
	it, ok := e.Type.AsInt()
	if !ok {
		return nil, typeErrorf("logic value requires an integer operand, got %s", e.Type)
	}
	if it.Width() == 1 && !it.Signed() {
		return e, nil
	}
	return Orr(e)
}

// And builds the hardware-valued logical AND of one or more operands.
// Unlike the host language's `and`, all operands are always evaluated --
// there is no short-circuit at circuit-build time (spec.md §4.5).
func And(ops ...*ir.Expr) (*ir.Expr, error) {
	return reduceLogic(BitAnd, ops)
}

// Or builds the hardware-valued logical OR of one or more operands.
func Or(ops ...*ir.Expr) (*ir.Expr, error) {
	return reduceLogic(BitOr, ops)
}

func reduceLogic(combine func(a, b *ir.Expr) (*ir.Expr, error), ops []*ir.Expr) (*ir.Expr, error) {
	if len(ops) == 0 {
		return nil, valueErrorf("logical reduction requires at least one operand")
	}
	norm := make([]*ir.Expr, len(ops))
	for i, o := range ops {
		n, err := LogicValue(o)
		if err != nil {
			return nil, err
		}
		norm[i] = n
	}
	result := norm[0]
	for _, n := range norm[1:] {
		next, err := combine(result, n)
		if err != nil {
			return nil, err
		}
		result = next
	}
	return result, nil
}

// Not builds the hardware-valued logical negation of op.
func Not(op *ir.Expr) (*ir.Expr, error) {
	n, err := LogicValue(op)
	if err != nil {
		return nil, err
	}
	return BitNot(n)
}
