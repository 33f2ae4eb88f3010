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
// Package builder implements the typed expression builder (§4.3) and the
// module builder (§4.4): width/signedness inference over hardware
// expressions, lvalue resolution with flip-direction algebra, and
// when/else-when/else scoped control-flow regions.
package builder

import (
	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// Untyped constructs a bare integer literal with no resolved type yet. It
// must be combined with at least one already-typed operand; the operator
// functions in this package coerce it to that operand's signedness and to
// the minimal width that holds its value (spec.md §4.3 "Operand
// coercion").
func Untyped(v int64) *ir.Expr {
	return ir.NewLit(nil, v)
}

func isUntyped(e *ir.Expr) bool {
	return e.Type == nil
}

// coercePair resolves operand coercion between a and b: if exactly one
// side is untyped, it is sized to the other side's signedness and to the
// minimal width holding its literal value. Returns an error if both sides
// are untyped (nothing to infer from) or if the typed side is not an
// integer.
func coercePair(a, b *ir.Expr) (*ir.Expr, *ir.Expr, error) {
	au, bu := isUntyped(a), isUntyped(b)
	if !au && !bu {
		return a, b, nil
	}
	if au && bu {
		return nil, nil, typeErrorf("cannot infer type: both operands are untyped literals")
	}
	typed, untyped := a, b
	if bu {
		typed, untyped = b, a
	}
	it, ok := typed.Type.AsInt()
	if !ok {
		return nil, nil, typeErrorf("cannot coerce literal against non-integer type %s", typed.Type)
	}
	lit := untyped.Payload.(ir.Lit)
	width := hwtype.MinBitsFor(lit.Value, it.Signed())
	var resolvedType hwtype.Type
	if it.Signed() {
		resolvedType = hwtype.Sint(width)
	} else {
		resolvedType = hwtype.Uint(width)
	}
	resolved := &ir.Expr{Type: resolvedType, Payload: lit}
	if au {
		return resolved, b, nil
	}
	return a, resolved, nil
}

func asInt(e *ir.Expr) (hwtype.IntType, error) {
	it, ok := e.Type.AsInt()
	if !ok {
		return nil, typeErrorf("expected integer operand, got %s", e.Type)
	}
	return it, nil
}

