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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateModuleRejectsDuplicate(t *testing.T) {
	db := NewDatabase()
	_, err := db.CreateModule("mycircuit", "mymod")
	require.NoError(t, err)
	_, err = db.CreateModule("mycircuit", "mymod")
	assert.Error(t, err)
	var nameErr *NameError
	assert.ErrorAs(t, err, &nameErr)
}

func TestCreateModuleRejectsMalformedName(t *testing.T) {
	db := NewDatabase()
	_, err := db.CreateModule("mycircuit", "1bad")
	assert.Error(t, err)
}

func TestUniqueAppendsSuffix(t *testing.T) {
	db := NewDatabase()
	_, err := db.CreateModule("c", "foo")
	require.NoError(t, err)
	assert.Equal(t, "c::foo_1", db.Unique("c::foo"))
	_, err = db.CreateModule("c", "foo_1")
	require.NoError(t, err)
	assert.Equal(t, "c::foo_2", db.Unique("c::foo"))
}

func TestSingleSegmentNameAutoexpands(t *testing.T) {
	db := NewDatabase()
	m, err := db.CreateModule("top", "top")
	require.NoError(t, err)
	assert.Equal(t, "top::top", m.QualifiedName())
	found, ok := db.Module("top")
	require.True(t, ok)
	assert.Same(t, m, found)
}

func TestCloneIsDeepCopy(t *testing.T) {
	db := NewDatabase()
	m, err := db.CreateModule("c", "orig")
	require.NoError(t, err)
	require.NoError(t, m.Add("w", &Member{Kind: KindWire}))
	clone, err := db.Clone("c::orig", "c::copy")
	require.NoError(t, err)
	assert.NotSame(t, m, clone)
	assert.True(t, clone.Has("w"))

	// Mutating the clone's member table must not affect the source.
	clone.Data["w"].Attrs = map[string]any{"x": 1}
	assert.Nil(t, m.Data["w"].Attrs)
}

func TestCloneRejectsExistingTarget(t *testing.T) {
	db := NewDatabase()
	_, err := db.CreateModule("c", "a")
	require.NoError(t, err)
	_, err = db.CreateModule("c", "b")
	require.NoError(t, err)
	_, err = db.Clone("c::a", "c::b")
	assert.Error(t, err)
}
