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
	"fmt"
	"math/big"
)

// UintType is an unsigned integer of a given bit width. A width of 0 means
// unsized: the width is inferred by context during lowering.
type UintType struct {
	NumBits uint
}

// SintType is a two's-complement signed integer of a given bit width. A
// width of 0 means unsized.
type SintType struct {
	NumBits uint
}

// Cache interns integer types by width so repeated construction of, e.g.,
// Uint(8) returns values that compare equal under Equal without a deep walk
// every time. This mirrors keeping per-width instances cheap to construct,
// the same role the teacher's schema.Type implementations play by being
// small immutable value types.
type Cache struct {
	uints map[uint]*UintType
	sints map[uint]*SintType
}

// NewCache constructs an empty, ready-to-use type cache.
func NewCache() *Cache {
	return &Cache{uints: map[uint]*UintType{}, sints: map[uint]*SintType{}}
}

// Default is a per-process default cache, preserved only as a convenience
// the way the original source keeps a default database — callers that need
// isolation should construct their own Cache.
var Default = NewCache()

// Uint returns the cached unsigned integer type of the given width (0 for
// unsized). u1 is not special-cased: Uint(1) and U1() return the same
// cached type.
func (c *Cache) Uint(width uint) *UintType {
	if t, ok := c.uints[width]; ok {
		return t
	}
	t := &UintType{NumBits: width}
	c.uints[width] = t
	return t
}

// Sint returns the cached signed integer type of the given width (0 for
// unsized).
func (c *Cache) Sint(width uint) *SintType {
	if t, ok := c.sints[width]; ok {
		return t
	}
	t := &SintType{NumBits: width}
	c.sints[width] = t
	return t
}

// Uint is shorthand for Default.Uint.
func Uint(width uint) *UintType { return Default.Uint(width) }

// Sint is shorthand for Default.Sint.
func Sint(width uint) *SintType { return Default.Sint(width) }

// U1 is the canonical single-bit unsigned type (uint[1]).
func U1() *UintType { return Default.Uint(1) }

func (t *UintType) Kind() Kind { return KindUint }
func (t *SintType) Kind() Kind { return KindSint }

func (t *UintType) Ground() bool { return true }
func (t *SintType) Ground() bool { return true }

func (t *UintType) AsInt() (IntType, bool) { return t, true }
func (t *SintType) AsInt() (IntType, bool) { return t, true }

func (t *UintType) AsArray() (*ArrayType, bool)   { return nil, false }
func (t *SintType) AsArray() (*ArrayType, bool)   { return nil, false }
func (t *UintType) AsStruct() (*StructType, bool) { return nil, false }
func (t *SintType) AsStruct() (*StructType, bool) { return nil, false }

func (t *UintType) Width() uint  { return t.NumBits }
func (t *SintType) Width() uint  { return t.NumBits }
func (t *UintType) Signed() bool { return false }
func (t *SintType) Signed() bool { return true }
func (t *UintType) Sized() bool  { return t.NumBits > 0 }
func (t *SintType) Sized() bool  { return t.NumBits > 0 }

func (t *UintType) String() string {
	if t.NumBits == 0 {
		return "UInt"
	}
	return fmt.Sprintf("uint[%d]", t.NumBits)
}

func (t *SintType) String() string {
	if t.NumBits == 0 {
		return "SInt"
	}
	return fmt.Sprintf("sint[%d]", t.NumBits)
}

// MinMax returns the inclusive value range for an integer type. For unsized
// integers it returns ok=false, meaning the range is unbounded.
func MinMax(t IntType) (min, max *big.Int, ok bool) {
	if !t.Sized() {
		return nil, nil, false
	}
	w := t.Width()
	if t.Signed() {
		max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w-1), big.NewInt(1))
		min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), w-1))
	} else {
		min = big.NewInt(0)
		max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w), big.NewInt(1))
	}
	return min, max, true
}

// InRange reports whether v is a legal value of integer type t.
func InRange(t IntType, v *big.Int) bool {
	min, max, ok := MinMax(t)
	if !ok {
		return true
	}
	return v.Cmp(min) >= 0 && v.Cmp(max) <= 0
}

// MinBitsFor returns the minimum number of bits required to hold v under
// the given signedness, used when coercing a plain integer literal to the
// width of its sibling operand.
func MinBitsFor(v *big.Int, signed bool) uint {
	if v.Sign() == 0 {
		return 1
	}
	if signed {
		var w uint = 1
		for {
			min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), w-1))
			max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w-1), big.NewInt(1))
			if v.Cmp(min) >= 0 && v.Cmp(max) <= 0 {
				return w
			}
			w++
		}
	}
	var w uint = 1
	for {
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), w), big.NewInt(1))
		if v.Cmp(max) <= 0 {
			return w
		}
		w++
	}
}
