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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

func TestIndexConstBoundsCheck(t *testing.T) {
	arr := &ir.Expr{Type: hwtype.Index(hwtype.Uint(8), 4), Payload: ir.Var{Name: "a"}}
	_, err := IndexConst(arr, 3)
	require.NoError(t, err)
	_, err = IndexConst(arr, 4)
	assert.Error(t, err)
	_, err = IndexConst(arr, -1)
	assert.Error(t, err)
}

func TestIndexExprRejectsSigned(t *testing.T) {
	arr := &ir.Expr{Type: hwtype.Index(hwtype.Uint(8), 4), Payload: ir.Var{Name: "a"}}
	idx := ir.NewLit(hwtype.Sint(2), 1)
	_, err := IndexExpr(arr, idx)
	assert.Error(t, err)
}

// spec.md §8 boundary behavior: a[hi:lo] rejects iff hi<lo or
// hi>=bitwidth(a).
func TestSliceBounds(t *testing.T) {
	base := ir.NewLit(hwtype.Uint(8), 0)
	_, err := Slice(base, 3, 5)
	assert.Error(t, err, "hi < lo must be rejected")

	_, err = Slice(base, 8, 0)
	assert.Error(t, err, "hi >= bitwidth must be rejected")

	e, err := Slice(base, 7, 2)
	require.NoError(t, err)
	it, ok := e.Type.AsInt()
	require.True(t, ok)
	assert.Equal(t, uint(6), it.Width())
}

func TestSliceRejectsNonInteger(t *testing.T) {
	s := &ir.Expr{Type: hwtype.NewStruct("S"), Payload: ir.Var{Name: "s"}}
	_, err := Slice(s, 3, 0)
	assert.Error(t, err)
}

func TestFieldAccessUnknownField(t *testing.T) {
	st := hwtype.NewStruct("S", hwtype.Field{Name: "x", Type: hwtype.Uint(4)})
	base := &ir.Expr{Type: st, Payload: ir.Var{Name: "v"}}
	_, err := FieldAccess(base, "y")
	assert.Error(t, err)
}
