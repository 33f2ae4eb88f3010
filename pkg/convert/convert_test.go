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
package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const src = `package counter

//hamp:convert
func build(b *Module) error {
	if b.Enable && !b.Held {
		if err := b.Connect(b.Out, b.In); err != nil {
			return err
		}
	} else if b.Reset {
		return b.Connect(b.Out, b.Zero)
	}
	return nil
}
`

func TestRewriteConvertsTaggedIfChain(t *testing.T) {
	out, err := Rewrite([]byte(src), "counter.go")
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "b.If(builder.And(b.Enable, builder.Not(b.Held))")
	assert.Contains(t, text, "b.Elif(b.Reset")
	assert.Contains(t, text, "func(b *Module) error")
	assert.Contains(t, text, "DO NOT EDIT")
}

func TestRewriteErrorsWithoutTaggedFunction(t *testing.T) {
	_, err := Rewrite([]byte(`package p

func plain() {
	if x {
	}
}
`), "plain.go")
	assert.Error(t, err)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "counter_hamp.go", OutputName("counter.go"))
	assert.Equal(t, "weird_hamp.go", OutputName("weird"))
}
