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

func TestConnectRejectsReadOnlyTarget(t *testing.T) {
	db := ir.NewDatabase()
	b, err := NewModule(db, "top", "m")
	require.NoError(t, err)
	require.NoError(t, b.Input("a", hwtype.Uint(4)))
	require.NoError(t, b.Output("b", hwtype.Uint(4)))
	a, err := b.Ref("a")
	require.NoError(t, err)
	bOut, err := b.Ref("b")
	require.NoError(t, err)
	// a is an input: read-only from inside the module, so it cannot be an
	// lvalue.
	err = b.Connect(a, bOut)
	assert.Error(t, err)
}

func TestConnectRejectsNonEquivalentTypes(t *testing.T) {
	db := ir.NewDatabase()
	b, err := NewModule(db, "top", "m")
	require.NoError(t, err)
	require.NoError(t, b.Output("o", hwtype.Uint(4)))
	require.NoError(t, b.Input("i", hwtype.Sint(4)))
	o, err := b.Ref("o")
	require.NoError(t, err)
	i, err := b.Ref("i")
	require.NoError(t, err)
	err = b.Connect(o, i)
	assert.Error(t, err)
}

// spec.md §8 scenario 2: a mux instantiated inside mux4, wiring instance
// ports -- instance-root direction swap (an instance's input is written
// from the enclosing module, its output read from it).
func TestInstancePortDirectionSwap(t *testing.T) {
	db := ir.NewDatabase()
	mux, err := NewModule(db, "top", "mux")
	require.NoError(t, err)
	require.NoError(t, mux.Input("a", hwtype.Uint(8)))
	require.NoError(t, mux.Input("b", hwtype.Uint(8)))
	require.NoError(t, mux.Input("sel", hwtype.U1()))
	require.NoError(t, mux.Output("x", hwtype.Uint(8)))

	top, err := NewModule(db, "top", "mux4")
	require.NoError(t, err)
	require.NoError(t, top.Input("a0", hwtype.Uint(8)))
	require.NoError(t, top.Output("x", hwtype.Uint(8)))
	require.NoError(t, top.Instance("m1", "top", "mux"))

	m1a, err := top.Port("m1", "a")
	require.NoError(t, err)
	a0, err := top.Ref("a0")
	require.NoError(t, err)
	// m1.a is an instance input port: writable from mux4.
	require.NoError(t, top.Connect(m1a, a0))

	m1x, err := top.Port("m1", "x")
	require.NoError(t, err)
	topX, err := top.Ref("x")
	require.NoError(t, err)
	// m1.x is an instance output port: readable from mux4, so it may
	// appear on the right of connect, driving mux4's own output.
	require.NoError(t, top.Connect(topX, m1x))

	// The reverse direction is illegal: m1.x cannot be written from mux4.
	err = top.Connect(m1x, a0)
	assert.Error(t, err)

	require.Len(t, top.Rec.Code, 2)
}
