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

import "fmt"

// ArrayType is a fixed-length array of a single element type. Size must be
// at least 1.
//
// Array-of-array construction follows the "outermost-first" convention
// settled by SPEC_FULL.md (Open Question 1): Index(size) called on an
// existing array type appends a new outermost dimension, so
//
//	Index(Index(Uint(4), 2), 3)   // == uint[4][2][3] textually
//
// produces an ArrayType whose outermost Size is 3 and whose Elem is the
// array of size 2 of uint[4] -- i.e. "3 arrays of 2", mirroring the
// original source's rotate-and-append loop in _Array.__getitem__, which
// walks to the innermost array and resets its size before wrapping a fresh
// outer dimension around it.
type ArrayType struct {
	Size uint
	Elem Type
}

func (t *ArrayType) Kind() Kind                       { return KindArray }
func (t *ArrayType) Ground() bool                     { return false }
func (t *ArrayType) AsInt() (IntType, bool)           { return nil, false }
func (t *ArrayType) AsArray() (*ArrayType, bool)      { return t, true }
func (t *ArrayType) AsStruct() (*StructType, bool)    { return nil, false }

func (t *ArrayType) String() string {
	// t.Elem.String() recurses for nested arrays, so the innermost
	// dimension is rendered first and each enclosing Index() call appends
	// its own size to the right -- e.g. Index(Index(T, a), b) renders
	// "T[a][b]", matching FIRRTL's outermost-last textual nesting.
	return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size)
}

// NewArray constructs an array type of the given size and element type.
// Size must be >= 1.
func NewArray(size uint, elem Type) *ArrayType {
	if size < 1 {
		panic("hwtype: array size must be >= 1")
	}
	return &ArrayType{Size: size, Elem: elem}
}

// Index builds a new array dimension over t. If t is already an array,
// the new dimension becomes the new outermost dimension (see the type
// doc comment above for the outermost-first rule).
func Index(t Type, size uint) *ArrayType {
	return NewArray(size, t)
}
