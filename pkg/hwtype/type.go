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
// Package hwtype implements the hardware type system: sized integers,
// clocks and resets, arrays, structs with per-field flip direction, and
// instance types. Types are immutable value objects compared structurally.
package hwtype

import "fmt"

// Kind identifies the tag of a hardware type.
type Kind uint8

// The complete set of hardware type kinds.
const (
	KindUint Kind = iota
	KindSint
	KindClock
	KindReset
	KindAsyncReset
	KindSyncReset
	KindArray
	KindStruct
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindSint:
		return "sint"
	case KindClock:
		return "clock"
	case KindReset:
		return "reset"
	case KindAsyncReset:
		return "async_reset"
	case KindSyncReset:
		return "sync_reset"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// Type is implemented by every hardware type. Types are compared
// structurally; there is no nominal identity beyond struct field order.
type Type interface {
	fmt.Stringer
	// Kind returns this type's tag.
	Kind() Kind
	// AsInt returns the integer view of this type, if any.
	AsInt() (IntType, bool)
	// AsArray returns the array view of this type, if any.
	AsArray() (*ArrayType, bool)
	// AsStruct returns the struct view of this type, if any.
	AsStruct() (*StructType, bool)
	// Ground reports whether this is a non-aggregate type (integer, clock,
	// or reset).
	Ground() bool
}

// IntType is the common view over Uint/Sint types.
type IntType interface {
	Type
	// Width returns the bit width, or 0 for an unsized integer.
	Width() uint
	// Signed reports whether this integer type is signed.
	Signed() bool
	// Sized reports whether this integer type has a concrete width.
	Sized() bool
}

// Equal reports whether t1 and t2 are strictly equal: their trees match
// exactly, including integer widths.
func Equal(t1, t2 Type) bool {
	return Equivalent(t1, t2, true)
}

// Equivalent reports whether t1 and t2 match ignoring integer widths when
// sizes is false. Signedness is always compared.
func Equivalent(t1, t2 Type, sizes bool) bool {
	if t1.Kind() != t2.Kind() {
		return false
	}
	switch t1.Kind() {
	case KindUint, KindSint:
		i1, _ := t1.AsInt()
		i2, _ := t2.AsInt()
		if i1.Signed() != i2.Signed() {
			return false
		}
		if !sizes {
			return true
		}
		return i1.Width() == i2.Width()
	case KindClock, KindReset, KindAsyncReset, KindSyncReset:
		return true
	case KindArray:
		a1, _ := t1.AsArray()
		a2, _ := t2.AsArray()
		if a1.Size != a2.Size {
			return false
		}
		return Equivalent(a1.Elem, a2.Elem, sizes)
	case KindStruct:
		s1, _ := t1.AsStruct()
		s2, _ := t2.AsStruct()
		if len(s1.Fields) != len(s2.Fields) {
			return false
		}
		for i, f1 := range s1.Fields {
			f2 := s2.Fields[i]
			if f1.Name != f2.Name || f1.Flip != f2.Flip {
				return false
			}
			if !Equivalent(f1.Type, f2.Type, sizes) {
				return false
			}
		}
		return true
	case KindInstance:
		in1 := t1.(*InstanceType)
		in2 := t2.(*InstanceType)
		return in1.Circuit == in2.Circuit && in1.Module == in2.Module
	default:
		return false
	}
}

// BitSize returns the number of bits required to represent a value of type
// t. It panics if t is an unsized integer, matching the spec's statement
// that unsized integers have no defined bitsize.
func BitSize(t Type) uint {
	switch t.Kind() {
	case KindUint, KindSint:
		it, _ := t.AsInt()
		if !it.Sized() {
			panic(fmt.Sprintf("hwtype: %s has no defined bitsize", t))
		}
		return it.Width()
	case KindClock, KindReset, KindAsyncReset, KindSyncReset:
		return 1
	case KindArray:
		a, _ := t.AsArray()
		return a.Size * BitSize(a.Elem)
	case KindStruct:
		s, _ := t.AsStruct()
		var total uint
		for _, f := range s.Fields {
			total += BitSize(f.Type)
		}
		return total
	default:
		panic(fmt.Sprintf("hwtype: %s has no bitsize", t))
	}
}
