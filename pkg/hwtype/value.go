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

// Value is a concrete, bounds-checked value of a hardware type. It is used
// for register reset values, constant literals, and constant struct/array
// literals that the emitter must synthesize as hidden wires.
type Value struct {
	Type Type
	// Int holds the value for Uint/Sint types.
	Int *big.Int
	// Elems holds per-index values for Array types.
	Elems []Value
	// Fields holds per-name values for Struct types.
	Fields map[string]Value
}

// NewIntValue validates v against t's range and returns a Value. It rejects
// iff v is out of t's [min,max] range (unsized integers accept anything).
func NewIntValue(t IntType, v *big.Int) (Value, error) {
	if !InRange(t, v) {
		return Value{}, &ValueError{Msg: fmt.Sprintf("%s cannot hold value %s", t, v.String())}
	}
	return Value{Type: t, Int: new(big.Int).Set(v)}, nil
}

// NewArrayValue constructs an array value from an ordered element list.
// Missing trailing entries are filled with the zero value of the element
// type. It is an error to supply more elements than the array size.
func NewArrayValue(t *ArrayType, elems []Value) (Value, error) {
	if uint(len(elems)) > t.Size {
		return Value{}, &ValueError{Msg: fmt.Sprintf("array[%d] given %d initializers", t.Size, len(elems))}
	}
	out := make([]Value, t.Size)
	copy(out, elems)
	for i := uint(len(elems)); i < t.Size; i++ {
		z, err := Zero(t.Elem)
		if err != nil {
			return Value{}, err
		}
		out[i] = z
	}
	return Value{Type: t, Elems: out}, nil
}

// NewStructValue constructs a struct value from a name->value map. Fields
// absent from the map default to their zero value.
func NewStructValue(t *StructType, fields map[string]Value) (Value, error) {
	out := make(map[string]Value, len(t.Fields))
	for _, f := range t.Fields {
		if v, ok := fields[f.Name]; ok {
			out[f.Name] = v
			continue
		}
		z, err := Zero(f.Type)
		if err != nil {
			return Value{}, err
		}
		out[f.Name] = z
	}
	return Value{Type: t, Fields: out}, nil
}

// Zero returns the default-initialized value of type t.
func Zero(t Type) (Value, error) {
	switch t.Kind() {
	case KindUint, KindSint:
		it, _ := t.AsInt()
		return NewIntValue(it, big.NewInt(0))
	case KindClock, KindReset, KindAsyncReset, KindSyncReset:
		return Value{Type: t, Int: big.NewInt(0)}, nil
	case KindArray:
		a, _ := t.AsArray()
		return NewArrayValue(a, nil)
	case KindStruct:
		s, _ := t.AsStruct()
		return NewStructValue(s, nil)
	default:
		return Value{}, &ValueError{Msg: fmt.Sprintf("%s has no zero value", t)}
	}
}

// ValueError reports a literal out of range, or an ill-formed value
// construction (struct/array initializer mismatch).
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return e.Msg }
