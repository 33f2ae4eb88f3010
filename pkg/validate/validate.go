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
// Package validate checks a built ir.Database for structural and typing
// well-formedness (spec.md §4.6). Every check returns the errors it finds
// rather than stopping at the first one, mirroring the teacher's
// Table.Consistent aggregation pattern (pkg/schema/module.go).
package validate

import (
	"fmt"

	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// Database checks every circuit and module in db, returning the
// concatenation of all errors found. A nil/empty result means db is
// well-formed.
func Database(db *ir.Database) []error {
	var errs []error
	for circuitName, circuit := range db.Circuits {
		for moduleName, m := range circuit {
			if m.Circuit != circuitName || m.Name != moduleName {
				errs = append(errs, fmt.Errorf("module stored under %s::%s but self-reports %s::%s",
					circuitName, moduleName, m.Circuit, m.Name))
			}
			errs = append(errs, Module(db, m)...)
		}
	}
	return errs
}

// Module checks a single module against db for membership partitioning,
// type well-formedness, operator-rule consistency, connect
// type-equivalence, register reset validity, instance existence, and
// verification-statement argument/placeholder counts.
func Module(db *ir.Database, m *ir.Module) []error {
	var errs []error
	errs = append(errs, checkMembership(m)...)
	errs = append(errs, checkTypesWellFormed(m)...)
	errs = append(errs, checkRegisters(m)...)
	errs = append(errs, checkInstances(db, m)...)
	errs = append(errs, checkStmts(db, m, m.Code)...)
	return errs
}

// checkMembership verifies every per-kind name list is consistent with the
// Data table: every listed name resolves to a descriptor of the matching
// kind, and every descriptor appears in exactly one list.
func checkMembership(m *ir.Module) []error {
	var errs []error
	check := func(kind ir.MemberKind, names []string) {
		for _, name := range names {
			d, ok := m.Data[name]
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %s listed as %s but has no descriptor", m.QualifiedName(), name, kind))
				continue
			}
			if d.Kind != kind {
				errs = append(errs, fmt.Errorf("%s: %s listed as %s but descriptor kind is %s", m.QualifiedName(), name, kind, d.Kind))
			}
		}
	}
	check(ir.KindInput, m.Inputs)
	check(ir.KindOutput, m.Outputs)
	check(ir.KindWire, m.Wires)
	check(ir.KindRegister, m.Registers)
	check(ir.KindInstance, m.Instances)
	check(ir.KindAttribute, m.Attributes)
	check(ir.KindMemory, m.Memories)

	listed := len(m.Inputs) + len(m.Outputs) + len(m.Wires) + len(m.Registers) + len(m.Instances) + len(m.Attributes) + len(m.Memories)
	if listed != len(m.Data) {
		errs = append(errs, fmt.Errorf("%s: %d members in Data but %d listed across kind lists", m.QualifiedName(), len(m.Data), listed))
	}
	return errs
}

// checkTypesWellFormed rejects members whose declared type is malformed:
// zero-size arrays (already guarded by hwtype.NewArray but re-checked here
// defensively for Databases assembled by hand) and structs with duplicate
// field names. Instance references are checked by checkInstances instead.
func checkTypesWellFormed(m *ir.Module) []error {
	var errs []error
	for name, d := range m.Data {
		if d.Type == nil {
			continue // attributes carry no type
		}
		if err := wellFormedType(d.Type); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", m.QualifiedName(), name, err))
		}
	}
	return errs
}

func wellFormedType(t hwtype.Type) error {
	switch {
	case t == nil:
		return fmt.Errorf("nil type")
	case t.Kind() == hwtype.KindArray:
		a, _ := t.AsArray()
		if a.Size == 0 {
			return fmt.Errorf("array type %s has zero size", t)
		}
		return wellFormedType(a.Elem)
	case t.Kind() == hwtype.KindStruct:
		st, _ := t.AsStruct()
		seen := map[string]bool{}
		for _, f := range st.Fields {
			if seen[f.Name] {
				return fmt.Errorf("struct type %s has duplicate field %q", t, f.Name)
			}
			seen[f.Name] = true
			if err := wellFormedType(f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkRegisters verifies every register's clock is really clock-typed,
// its reset signal (if any) is reset-like, and its reset value's type is
// equivalent to the register's own type.
func checkRegisters(m *ir.Module) []error {
	var errs []error
	for _, name := range m.Registers {
		d := m.Data[name]
		if d.Clock == "" {
			errs = append(errs, fmt.Errorf("%s.%s: register has no clock", m.QualifiedName(), name))
		} else if cd, ok := m.Data[d.Clock]; !ok || !hwtype.IsClock(cd.Type) {
			errs = append(errs, fmt.Errorf("%s.%s: clock signal %q is not clock-typed", m.QualifiedName(), name, d.Clock))
		}
		if d.Reset == nil {
			continue
		}
		rd, ok := m.Data[d.Reset.Signal]
		if !ok || !hwtype.IsResetLike(rd.Type) {
			errs = append(errs, fmt.Errorf("%s.%s: reset signal %q is not reset-like", m.QualifiedName(), name, d.Reset.Signal))
		}
		if !hwtype.Equivalent(d.Type, d.Reset.Value.Type, false) {
			errs = append(errs, fmt.Errorf("%s.%s: reset value type %s does not match register type %s",
				m.QualifiedName(), name, d.Reset.Value.Type, d.Type))
		}
	}
	return errs
}

// checkInstances verifies every declared instance references a module that
// actually exists in db.
func checkInstances(db *ir.Database, m *ir.Module) []error {
	var errs []error
	for _, name := range m.Instances {
		d := m.Data[name]
		if _, ok := db.Module(d.Circuit + "::" + d.Module); !ok {
			errs = append(errs, fmt.Errorf("%s.%s: instance refers to undefined module %s::%s",
				m.QualifiedName(), name, d.Circuit, d.Module))
		}
	}
	return errs
}
