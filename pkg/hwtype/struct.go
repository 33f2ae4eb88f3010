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

import "strings"

// Field describes one member of a struct type: its name, type, and flip
// direction. Flip inverts signal direction when the enclosing struct
// traverses a port boundary.
type Field struct {
	Name string
	Type Type
	Flip bool
}

// StructType is a nominally-structural aggregate of named, directional
// fields. Equality between struct types is by shape (field name, type,
// flip), never by a declared name.
type StructType struct {
	Name   string // optional, informational only; not part of equality
	Fields []Field
}

// NewStruct constructs a struct type from an ordered field list.
func NewStruct(name string, fields ...Field) *StructType {
	return &StructType{Name: name, Fields: fields}
}

func (t *StructType) Kind() Kind                    { return KindStruct }
func (t *StructType) Ground() bool                  { return false }
func (t *StructType) AsInt() (IntType, bool)        { return nil, false }
func (t *StructType) AsArray() (*ArrayType, bool)   { return nil, false }
func (t *StructType) AsStruct() (*StructType, bool) { return t, true }

func (t *StructType) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range t.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		if f.Flip {
			b.WriteString("flip ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type.String())
	}
	b.WriteByte('}')
	return b.String()
}

// Field looks up a field by name. The second return is false if no such
// field exists.
func (t *StructType) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// InstanceType references a module definition by its two-part
// circuit/module name, never by pointer; the database is the arena and all
// cross-references are string keys.
type InstanceType struct {
	Circuit string
	Module  string
}

// NewInstance constructs an instance type referencing circuit::module.
func NewInstance(circuit, module string) *InstanceType {
	return &InstanceType{Circuit: circuit, Module: module}
}

func (t *InstanceType) Kind() Kind                    { return KindInstance }
func (t *InstanceType) Ground() bool                  { return false }
func (t *InstanceType) AsInt() (IntType, bool)        { return nil, false }
func (t *InstanceType) AsArray() (*ArrayType, bool)   { return nil, false }
func (t *InstanceType) AsStruct() (*StructType, bool) { return nil, false }
func (t *InstanceType) String() string                { return t.Circuit + "::" + t.Module }
