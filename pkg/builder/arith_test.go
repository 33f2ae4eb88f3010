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

func u(w uint) *ir.Expr { return ir.NewLit(hwtype.Uint(w), 0) }
func s(w uint) *ir.Expr { return ir.NewLit(hwtype.Sint(w), 0) }

func TestAddWidthAndSign(t *testing.T) {
	e, err := Add(u(4), u(6))
	require.NoError(t, err)
	it, _ := e.Type.AsInt()
	assert.Equal(t, uint(7), it.Width())
	assert.False(t, it.Signed())
}

func TestMulWidth(t *testing.T) {
	e, err := Mul(u(4), u(6))
	require.NoError(t, err)
	it, _ := e.Type.AsInt()
	assert.Equal(t, uint(10), it.Width())
}

// spec.md §8 scenario 4: uint[4] + sint[4] is a build-time type error with
// this exact wording.
func TestSignMismatchRejected(t *testing.T) {
	_, err := Add(u(4), s(4))
	require.Error(t, err)
	assert.Equal(t, "type error: Both operands must have same sign", err.Error())
}

func TestUntypedLiteralCoercion(t *testing.T) {
	e, err := Add(u(4), Untyped(3))
	require.NoError(t, err)
	it, _ := e.Type.AsInt()
	assert.False(t, it.Signed())
}

func TestShlConstWidth(t *testing.T) {
	amt := ir.NewLit(hwtype.Uint(2), 2)
	e, err := Shl(u(4), amt)
	require.NoError(t, err)
	it, _ := e.Type.AsInt()
	assert.Equal(t, uint(6), it.Width())
}

func TestShlDynamicWorstCase(t *testing.T) {
	dyn := &ir.Expr{Type: hwtype.Uint(3), Payload: ir.Var{Name: "shamt"}}
	e, err := Shl(u(4), dyn)
	require.NoError(t, err)
	it, _ := e.Type.AsInt()
	assert.Equal(t, uint(4+(1<<4)-1), it.Width())
}

func TestShrRejectsSignedAmount(t *testing.T) {
	_, err := Shr(u(8), s(3))
	assert.Error(t, err)
}

func TestCatWidth(t *testing.T) {
	e, err := Cat(u(4), u(3))
	require.NoError(t, err)
	it, _ := e.Type.AsInt()
	assert.Equal(t, uint(7), it.Width())
}

func TestPadWidens(t *testing.T) {
	e, err := Pad(u(4), 8)
	require.NoError(t, err)
	it, _ := e.Type.AsInt()
	assert.Equal(t, uint(8), it.Width())
}

func TestAsClockRequiresSingleBit(t *testing.T) {
	_, err := AsClock(u(2))
	assert.Error(t, err)
	_, err = AsClock(u(1))
	assert.NoError(t, err)
}
