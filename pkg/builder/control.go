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

// requireU1 rejects any condition that isn't exactly u1: conditions are
// never implicitly reduced the way And/Or/Not operands are (spec.md §4.4).
func requireU1(e *ir.Expr) error {
	it, ok := e.Type.AsInt()
	if !ok || it.Signed() || it.Width() != 1 {
		return typeErrorf("condition must be u1, got %s", e.Type)
	}
	return nil
}

// If opens a when-region: body runs with the builder's code cursor pointed
// at a fresh statement slice, which becomes the When statement's Body once
// body returns (spec.md §4.4's cursor save/capture/restore pattern).
func (b *Module) If(cond *ir.Expr, body func(*Module) error) error {
	if err := requireU1(cond); err != nil {
		return err
	}
	saved := b.cursor
	var captured []ir.Stmt
	b.cursor = &captured
	if err := body(b); err != nil {
		b.cursor = saved
		return err
	}
	b.cursor = saved
	b.emit(ir.When{Cond: cond, Body: captured})
	return nil
}

// Elif continues a when/else-when ladder. cond's statement must immediately
// follow a When or ElseWhen already appended to the current cursor.
func (b *Module) Elif(cond *ir.Expr, body func(*Module) error) error {
	if err := requireU1(cond); err != nil {
		return err
	}
	if err := b.requirePrecedingWhen(); err != nil {
		return err
	}
	saved := b.cursor
	var captured []ir.Stmt
	b.cursor = &captured
	if err := body(b); err != nil {
		b.cursor = saved
		return err
	}
	b.cursor = saved
	b.emit(ir.ElseWhen{Cond: cond, Body: captured})
	return nil
}

// Else closes a when/else-when ladder.
func (b *Module) Else(body func(*Module) error) error {
	if err := b.requirePrecedingWhen(); err != nil {
		return err
	}
	saved := b.cursor
	var captured []ir.Stmt
	b.cursor = &captured
	if err := body(b); err != nil {
		b.cursor = saved
		return err
	}
	b.cursor = saved
	b.emit(ir.Else{Body: captured})
	return nil
}

// requirePrecedingWhen enforces that Elif/Else immediately follow a When or
// ElseWhen in the current scope (spec.md §4.4: "elif/else must follow an
// open when-ladder").
func (b *Module) requirePrecedingWhen() error {
	cur := *b.cursor
	if len(cur) == 0 {
		return typeErrorf("elif/else must immediately follow a when or elif")
	}
	switch cur[len(cur)-1].(type) {
	case ir.When, ir.ElseWhen:
		return nil
	default:
		return typeErrorf("elif/else must immediately follow a when or elif")
	}
}

// defaultEnable returns u1(1), the implicit enable for printf/assertf/coverf
// when none is supplied (spec.md §9 Open Question 3).
func defaultEnable() *ir.Expr {
	return ir.NewLit(hwtype.U1(), 1)
}
