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
package validate

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telemarkguru/hamp/pkg/builder"
	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// spec.md §8 Invariant 4: "Validator passes iff the IR was produced by the
// builder" -- building never produces a validator failure.
func TestBuilderOutputAlwaysValid(t *testing.T) {
	db := ir.NewDatabase()
	b, err := builder.NewModule(db, "top", "counter")
	require.NoError(t, err)
	require.NoError(t, b.Input("clk", hwtype.Clock()))
	require.NoError(t, b.Input("rst", hwtype.AsyncReset()))
	require.NoError(t, b.Input("en", hwtype.U1()))
	require.NoError(t, b.Output("out", hwtype.Uint(10)))

	zero, err := hwtype.NewIntValue(hwtype.Uint(10), big.NewInt(0))
	require.NoError(t, err)
	require.NoError(t, b.Register("cnt", hwtype.Uint(10), builder.RegisterSpec{Value: &zero}))

	en, err := b.Ref("en")
	require.NoError(t, err)
	err = b.If(en, func(b *builder.Module) error {
		cnt, err := b.Ref("cnt")
		if err != nil {
			return err
		}
		sum, err := builder.Add(cnt, builder.Untyped(1))
		if err != nil {
			return err
		}
		sliced, err := builder.Slice(sum, 9, 0)
		if err != nil {
			return err
		}
		return b.Connect(cnt, sliced)
	})
	require.NoError(t, err)

	out, err := b.Ref("out")
	require.NoError(t, err)
	cnt, err := b.Ref("cnt")
	require.NoError(t, err)
	require.NoError(t, b.Connect(out, cnt))

	errs := Database(db)
	assert.Empty(t, errs)
}

func TestDetectsConnectTypeMismatch(t *testing.T) {
	db := ir.NewDatabase()
	m, err := db.CreateModule("top", "bad")
	require.NoError(t, err)
	require.NoError(t, m.Add("i", &ir.Member{Kind: ir.KindInput, Type: hwtype.Sint(4)}))
	require.NoError(t, m.Add("o", &ir.Member{Kind: ir.KindOutput, Type: hwtype.Uint(4)}))
	m.Code = append(m.Code, ir.Connect{
		LHS: &ir.Expr{Type: hwtype.Uint(4), Payload: ir.Var{Name: "o"}},
		RHS: &ir.Expr{Type: hwtype.Sint(4), Payload: ir.Var{Name: "i"}},
	})
	errs := Database(db)
	assert.NotEmpty(t, errs)
}

func TestDetectsInconsistentOperatorType(t *testing.T) {
	db := ir.NewDatabase()
	m, err := db.CreateModule("top", "bad2")
	require.NoError(t, err)
	require.NoError(t, m.Add("a", &ir.Member{Kind: ir.KindInput, Type: hwtype.Uint(4)}))
	require.NoError(t, m.Add("o", &ir.Member{Kind: ir.KindOutput, Type: hwtype.Uint(4)}))
	aExpr := &ir.Expr{Type: hwtype.Uint(4), Payload: ir.Var{Name: "a"}}
	one := ir.NewLit(hwtype.Uint(1), 1)
	// Declared type is wrong: Add should widen to 5 bits, not 4.
	badSum := &ir.Expr{Type: hwtype.Uint(4), Payload: ir.OpExpr{Op: ir.OpAdd, Args: []*ir.Expr{aExpr, one}}}
	m.Code = append(m.Code, ir.Connect{
		LHS: &ir.Expr{Type: hwtype.Uint(4), Payload: ir.Var{Name: "o"}},
		RHS: badSum,
	})
	errs := Database(db)
	assert.NotEmpty(t, errs)
}

func TestDetectsUndefinedInstance(t *testing.T) {
	db := ir.NewDatabase()
	m, err := db.CreateModule("top", "bad3")
	require.NoError(t, err)
	require.NoError(t, m.Add("inst", &ir.Member{
		Kind: ir.KindInstance, Type: hwtype.NewInstance("top", "missing"),
		Circuit: "top", Module: "missing",
	}))
	errs := Database(db)
	assert.NotEmpty(t, errs)
}
