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
package hwtype

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintTypeBounds(t *testing.T) {
	tests := []struct {
		name  string
		width uint
		value int64
		ok    bool
	}{
		{"zero of u8", 8, 0, true},
		{"max of u8", 8, 255, true},
		{"over max of u8", 8, 256, false},
		{"negative rejected", 8, -1, false},
		{"unsized accepts anything", 0, 1 << 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty := Uint(tt.width)
			_, err := NewIntValue(ty, big.NewInt(tt.value))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSintTypeBounds(t *testing.T) {
	ty := Sint(4)
	_, err := NewIntValue(ty, big.NewInt(-8))
	assert.NoError(t, err, "sint[4] should hold -8")
	_, err = NewIntValue(ty, big.NewInt(7))
	assert.NoError(t, err, "sint[4] should hold 7")
	_, err = NewIntValue(ty, big.NewInt(-9))
	assert.Error(t, err, "sint[4] should reject -9")
	_, err = NewIntValue(ty, big.NewInt(8))
	assert.Error(t, err, "sint[4] should reject 8")
}

func TestArrayOutermostFirst(t *testing.T) {
	// T[2][3] means 3 arrays of 2 (outer size 3, inner size 2).
	ty := Index(Index(Uint(4), 2), 3)
	assert.Equal(t, uint(3), ty.Size)
	inner, ok := ty.Elem.AsArray()
	assert.True(t, ok)
	assert.Equal(t, uint(2), inner.Size)
	assert.Equal(t, "uint[4][2][3]", ty.String())
}

func TestUint1CanonicalName(t *testing.T) {
	assert.Equal(t, "uint[1]", U1().String())
	assert.True(t, Equal(U1(), Uint(1)))
}

func TestEquivalentIgnoresWidth(t *testing.T) {
	assert.True(t, Equivalent(Uint(4), Uint(8), false))
	assert.False(t, Equivalent(Uint(4), Sint(4), false), "signedness must still match")
	assert.False(t, Equal(Uint(4), Uint(8)), "strict equality requires matching width")
}

func TestStructEqualityByShape(t *testing.T) {
	s1 := NewStruct("Foo", Field{"a", Uint(4), false}, Field{"b", Uint(1), true})
	s2 := NewStruct("Bar", Field{"a", Uint(4), false}, Field{"b", Uint(1), true})
	assert.True(t, Equal(s1, s2), "struct equality is by shape, not by declared name")
}

func TestBitSize(t *testing.T) {
	s := NewStruct("Foo", Field{"a", Uint(4), false}, Field{"b", Uint(8), false})
	assert.Equal(t, uint(12), BitSize(s))
	arr := NewArray(3, Uint(4))
	assert.Equal(t, uint(12), BitSize(arr))
	assert.Equal(t, uint(1), BitSize(Clock()))
}

func TestBitSizePanicsOnUnsized(t *testing.T) {
	assert.Panics(t, func() { BitSize(Uint(0)) })
}

func TestMinMaxUnsized(t *testing.T) {
	_, _, ok := MinMax(Uint(0))
	assert.False(t, ok)
}
