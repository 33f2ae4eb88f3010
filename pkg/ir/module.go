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
package ir

import "github.com/telemarkguru/hamp/pkg/hwtype"

// MemberKind tags the role a named member of a module plays.
type MemberKind uint8

// The complete set of module member kinds.
const (
	KindInput MemberKind = iota
	KindOutput
	KindWire
	KindRegister
	KindInstance
	KindAttribute
	KindMemory
)

func (k MemberKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindWire:
		return "wire"
	case KindRegister:
		return "register"
	case KindInstance:
		return "instance"
	case KindAttribute:
		return "attribute"
	case KindMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// MemorySpec describes a memory member's port groups, depth and latencies
// (original_source/hamp/_module.py's `memory` builder, supplemented per
// SPEC_FULL.md §C: the distilled spec.md omits memories entirely).
type MemorySpec struct {
	Depth        uint
	Readers      []string
	Writers      []string
	Readwriters  []string
	ReadLatency  uint
	WriteLatency uint
}

// RegisterReset describes a register's reset signal and reset value. A nil
// *RegisterReset on a Member means the register is not reset.
type RegisterReset struct {
	Signal string
	Value  hwtype.Value
}

// Member is the descriptor tuple for one named entry of a module: its
// kind, type, and kind-specific auxiliary fields.
type Member struct {
	Kind MemberKind
	Type hwtype.Type

	// Register-only fields.
	Clock string
	Reset *RegisterReset

	// Instance-only fields (redundant with Type.(*hwtype.InstanceType),
	// kept for cheap access without a type assertion).
	Circuit string
	Module  string

	// Attribute-only field: an arbitrary JSON-like value.
	Value any

	// Memory-only field.
	Memory *MemorySpec

	// Attrs holds free-form per-member metadata (e.g. CSR annotations on
	// a register), orthogonal to Value above which is reserved for
	// KindAttribute members themselves.
	Attrs map[string]any
}

// Module is a single hardware module: an ordered set of member-name lists
// per kind, a lookup table from member name to descriptor, and an ordered
// statement list.
type Module struct {
	Circuit string
	Name    string

	Inputs     []string
	Outputs    []string
	Wires      []string
	Registers  []string
	Instances  []string
	Attributes []string
	Memories   []string

	Data map[string]*Member
	Code []Stmt
}

// QualifiedName returns "circuit::name".
func (m *Module) QualifiedName() string { return m.Circuit + "::" + m.Name }

func newModule(circuit, name string) *Module {
	return &Module{
		Circuit: circuit,
		Name:    name,
		Data:    map[string]*Member{},
	}
}

// Has reports whether name is a defined member of m.
func (m *Module) Has(name string) bool {
	_, ok := m.Data[name]
	return ok
}

// Get returns the descriptor for name, if any.
func (m *Module) Get(name string) (*Member, bool) {
	d, ok := m.Data[name]
	return d, ok
}

// listFor returns a pointer to the ordered name slice for kind.
func (m *Module) listFor(kind MemberKind) *[]string {
	switch kind {
	case KindInput:
		return &m.Inputs
	case KindOutput:
		return &m.Outputs
	case KindWire:
		return &m.Wires
	case KindRegister:
		return &m.Registers
	case KindInstance:
		return &m.Instances
	case KindAttribute:
		return &m.Attributes
	case KindMemory:
		return &m.Memories
	default:
		panic("ir: unknown member kind")
	}
}

// reservedNames cannot be used as module member names because they
// collide with stdlib operator names (spec.md §4.4 via
// original_source/hamp/_module.py: _Module._RESERVED).
var reservedNames = map[string]bool{"cat": true}

// Add appends a new, not-previously-present member. Names are never
// renamed or removed once added (append-only within a build pass, per
// spec.md §3 Lifecycle).
func (m *Module) Add(name string, member *Member) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if reservedNames[name] {
		return nameErrorf("name %q is reserved", name)
	}
	if m.Has(name) {
		return nameErrorf("member %s already defined in module %s", name, m.QualifiedName())
	}
	m.Data[name] = member
	list := m.listFor(member.Kind)
	*list = append(*list, name)
	return nil
}

// FirstClockInput returns the first input port of clock type declared so
// far in the module, in declaration order. Used to infer a register's
// clock when omitted (spec.md §4.4).
func (m *Module) FirstClockInput() (string, bool) {
	for _, name := range m.Inputs {
		d := m.Data[name]
		if hwtype.IsClock(d.Type) {
			return name, true
		}
	}
	return "", false
}

// SoleClockInput returns the module's single clock input, used to infer
// the clock of a printf/assertf/coverf statement when omitted (spec.md
// §4.4). ok is false when the module has zero or more than one clock
// input, in which case the caller must supply one explicitly.
func (m *Module) SoleClockInput() (string, bool) {
	found := ""
	count := 0
	for _, name := range m.Inputs {
		d := m.Data[name]
		if hwtype.IsClock(d.Type) {
			found = name
			count++
		}
	}
	return found, count == 1
}

// FirstResetInput returns the first input port whose type is reset-like
// (Reset/AsyncReset/SyncReset/u1), in declaration order.
func (m *Module) FirstResetInput() (string, bool) {
	for _, name := range m.Inputs {
		d := m.Data[name]
		if hwtype.IsResetLike(d.Type) {
			return name, true
		}
	}
	return "", false
}

// clone copies m under a new circuit/name. The per-kind name lists, every
// member descriptor struct and every statement struct (including
// When/ElseWhen/Else bodies) are duplicated, so adding or replacing members
// or statements in the clone never affects the source. The Reset and Memory
// pointers and the Attrs maps of descriptors, and the attribute maps of
// statements, are shared with the source, not copied.
func (m *Module) clone(circuit, name string) *Module {
	out := newModule(circuit, name)
	out.Inputs = append([]string{}, m.Inputs...)
	out.Outputs = append([]string{}, m.Outputs...)
	out.Wires = append([]string{}, m.Wires...)
	out.Registers = append([]string{}, m.Registers...)
	out.Instances = append([]string{}, m.Instances...)
	out.Attributes = append([]string{}, m.Attributes...)
	out.Memories = append([]string{}, m.Memories...)
	for k, v := range m.Data {
		cp := *v
		out.Data[k] = &cp
	}
	out.Code = cloneStmts(m.Code)
	return out
}
