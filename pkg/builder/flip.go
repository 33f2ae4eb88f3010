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
	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// direction is the effective access direction of an lvalue path: whether
// assigning through it is a legal connect target.
type direction int

const (
	dirRead direction = iota
	dirWrite
	dirEither
)

func (d direction) flip() direction {
	switch d {
	case dirRead:
		return dirWrite
	case dirWrite:
		return dirRead
	default:
		return dirEither
	}
}

func (d direction) writable() bool { return d == dirWrite || d == dirEither }

// lvalueDirection computes the effective access direction of e by walking
// its access path and XOR-ing flip bits along the way (spec.md §4.4): the
// root member's kind sets the starting direction (input => read, output
// => write, wire/register => either; an instance root's direction is
// swapped, since an instance's input is written from the enclosing
// module). Each struct-field traversal XORs in that field's flip bit.
func (b *Module) lvalueDirection(e *ir.Expr) (direction, error) {
	switch p := e.Payload.(type) {
	case ir.Var:
		d, ok := b.Rec.Get(p.Name)
		if !ok {
			return 0, nameErrorf("no such member %q in module %s", p.Name, b.Rec.QualifiedName())
		}
		switch d.Kind {
		case ir.KindInput:
			return dirRead, nil
		case ir.KindOutput:
			return dirWrite, nil
		case ir.KindWire, ir.KindRegister:
			return dirEither, nil
		default:
			return 0, typeErrorf("%s is not an assignable member", p.Name)
		}
	case ir.InstPort:
		d, ok := b.Rec.Get(p.Inst)
		if !ok {
			return 0, nameErrorf("no such instance %q in module %s", p.Inst, b.Rec.QualifiedName())
		}
		target, ok := b.DB.Module(d.Circuit + "::" + d.Module)
		if !ok {
			return 0, nameErrorf("instance %q refers to undefined module %s::%s", p.Inst, d.Circuit, d.Module)
		}
		pd, ok := target.Get(p.Port)
		if !ok {
			return 0, nameErrorf("%s is not a port of module %s", p.Port, target.QualifiedName())
		}
		// Swapped: an instance's input port is a write target from the
		// enclosing module, and its output port is read from it.
		switch pd.Kind {
		case ir.KindInput:
			return dirWrite, nil
		case ir.KindOutput:
			return dirRead, nil
		default:
			return 0, typeErrorf("%s is not a port of module %s", p.Port, target.QualifiedName())
		}
	case ir.FieldAccess:
		baseDir, err := b.lvalueDirection(p.Base)
		if err != nil {
			return 0, err
		}
		st, ok := p.Base.Type.AsStruct()
		if !ok {
			return 0, typeErrorf("%s is not a struct", p.Base.Type)
		}
		f, ok := st.Field(p.Field)
		if !ok {
			return 0, nameErrorf("no such field %q", p.Field)
		}
		if f.Flip {
			return baseDir.flip(), nil
		}
		return baseDir, nil
	case ir.Index:
		return b.lvalueDirection(p.Base)
	default:
		return 0, typeErrorf("expression is not a valid assignment target")
	}
}

// Connect resolves lhs to an lvalue and, if its effective direction is
// write-allowed, emits a connect statement once rhs's type is equivalent
// to lhs's (ignoring integer widths, per spec.md §4.4's "Type checking on
// connect").
func (b *Module) Connect(lhs, rhs *ir.Expr) error {
	dir, err := b.lvalueDirection(lhs)
	if err != nil {
		return err
	}
	if !dir.writable() {
		return typeErrorf("target is not writable (read-only access direction)")
	}
	if !hwtype.Equivalent(lhs.Type, rhs.Type, false) {
		return typeErrorf("cannot connect value of type %s to target of type %s", rhs.Type, lhs.Type)
	}
	b.emit(ir.Connect{LHS: lhs, RHS: rhs})
	return nil
}
