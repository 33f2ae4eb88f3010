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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

func newClockedModule(t *testing.T) (*Module, *ir.Expr) {
	t.Helper()
	db := ir.NewDatabase()
	b, err := NewModule(db, "top", "m")
	require.NoError(t, err)
	require.NoError(t, b.Input("clk", hwtype.Clock()))
	require.NoError(t, b.Input("en", hwtype.U1()))
	en, err := b.Ref("en")
	require.NoError(t, err)
	return b, en
}

// spec.md §8 scenario 6: printf(clk, en, "%x %d", a) raises exactly this
// value error.
func TestPrintfPlaceholderMismatch(t *testing.T) {
	b, en := newClockedModule(t)
	a := ir.NewLit(hwtype.Uint(4), 3)
	err := b.Printf(nil, en, "%x %d", a)
	require.Error(t, err)
	assert.Equal(t, "value error: Placeholders vs arguments mismatch 2 != 1", err.Error())
}

func TestPrintfClockInference(t *testing.T) {
	b, en := newClockedModule(t)
	a := ir.NewLit(hwtype.Uint(4), 3)
	require.NoError(t, b.Printf(nil, en, "%d", a))
	require.Len(t, b.Rec.Code, 1)
	pf := b.Rec.Code[0].(ir.Printf)
	v, ok := pf.Clock.Payload.(ir.Var)
	require.True(t, ok)
	assert.Equal(t, "clk", v.Name)
}

func TestPrintfDefaultEnable(t *testing.T) {
	b, _ := newClockedModule(t)
	require.NoError(t, b.Printf(nil, nil, "hello"))
	pf := b.Rec.Code[0].(ir.Printf)
	lit, ok := pf.Enable.Payload.(ir.Lit)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Value.Int64())
}

func TestAssertfRequiresU1Pred(t *testing.T) {
	b, en := newClockedModule(t)
	pred := ir.NewLit(hwtype.Uint(4), 1)
	err := b.Assertf(nil, pred, en, "bad")
	assert.Error(t, err)
}

func TestCoverfNoPlaceholders(t *testing.T) {
	b, en := newClockedModule(t)
	pred := ir.NewLit(hwtype.U1(), 1)
	require.NoError(t, b.Coverf(nil, pred, en, "hit"))
}

func TestResolveClockErrorsWhenAmbiguous(t *testing.T) {
	db := ir.NewDatabase()
	b, err := NewModule(db, "top", "twoclocks")
	require.NoError(t, err)
	require.NoError(t, b.Input("clk1", hwtype.Clock()))
	require.NoError(t, b.Input("clk2", hwtype.Clock()))
	pred := ir.NewLit(hwtype.U1(), 1)
	err = b.Coverf(nil, pred, nil, "x")
	assert.Error(t, err)
}
