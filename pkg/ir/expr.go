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

import (
	"math/big"

	"github.com/telemarkguru/hamp/pkg/hwtype"
)

// Op identifies an expression operator. The full set corresponds exactly
// to spec.md §3's Payload operator list.
type Op string

// The complete set of expression operators.
const (
	OpAdd         Op = "+"
	OpSub         Op = "-"
	OpMul         Op = "*"
	OpDiv         Op = "//"
	OpRem         Op = "%"
	OpEq          Op = "=="
	OpNeq         Op = "!="
	OpGt          Op = ">"
	OpGeq         Op = ">="
	OpLt          Op = "<"
	OpLeq         Op = "<="
	OpShr         Op = ">>"
	OpShl         Op = "<<"
	OpAnd         Op = "&"
	OpOr          Op = "|"
	OpXor         Op = "^"
	OpNot         Op = "not"
	OpNeg         Op = "neg"
	OpCvt         Op = "cvt"
	OpOrr         Op = "orr"
	OpAndr        Op = "andr"
	OpXorr        Op = "xorr"
	OpCat         Op = "cat"
	OpPad         Op = "pad"
	OpAsUint      Op = "as_uint"
	OpAsSint      Op = "as_sint"
	OpAsClock     Op = "as_clock"
	OpAsAsyncRst  Op = "as_async_reset"
)

// Expr is a typed expression node: an inferred hwtype.Type paired with a
// Payload. No Expr escapes the builder (pkg/builder) without a fully
// resolved Type (spec.md §4.3).
type Expr struct {
	Type    hwtype.Type
	Payload Payload
}

// Payload is the closed set of expression node shapes. It is a sealed
// interface (an unexported marker method) rather than an `any` + type
// switch, mirroring the small sealed-interface IR node pattern the teacher
// uses for its own term/constraint hierarchies (pkg/ir/term, pkg/schema/constraint).
type Payload interface {
	payload()
}

// Lit is an integer literal.
type Lit struct {
	Value *big.Int
}

func (Lit) payload() {}

// NewLit constructs a literal expr of the given type (Uint or Sint).
func NewLit(t hwtype.IntType, v int64) *Expr {
	return &Expr{Type: t, Payload: Lit{Value: big.NewInt(v)}}
}

// Var is a variable name: the root of an access chain, referring to a
// module member (port, wire, register, or instance).
type Var struct {
	Name string
}

func (Var) payload() {}

// FieldAccess is struct field access ("." subexpr field-name).
type FieldAccess struct {
	Base  *Expr
	Field string
}

func (FieldAccess) payload() {}

// Index is array indexing ("[]" subexpr index-expr).
type Index struct {
	Base *Expr
	Idx  *Expr
}

func (Index) payload() {}

// Bits is a bit slice ("bits" subexpr msb lsb).
type Bits struct {
	Base     *Expr
	Msb, Lsb uint
}

func (Bits) payload() {}

// InstPort is an instance port reference (".", (Instance,circ,mod),
// inst-name, port-name).
type InstPort struct {
	Inst string
	Port string
}

func (InstPort) payload() {}

// OpExpr is operator application (op arg*).
type OpExpr struct {
	Op   Op
	Args []*Expr
}

func (OpExpr) payload() {}

// Root returns the variable name at the root of an access chain of
// FieldAccess, Index and Bits payloads over a Var; InstPort roots at the
// instance name.
func Root(e *Expr) (string, bool) {
	switch p := e.Payload.(type) {
	case Var:
		return p.Name, true
	case FieldAccess:
		return Root(p.Base)
	case Index:
		return Root(p.Base)
	case Bits:
		return Root(p.Base)
	case InstPort:
		return p.Inst, true
	default:
		return "", false
	}
}
