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
package hampcli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTripsThroughEnviron(t *testing.T) {
	cfg := Config{Mode: ModeVerilog, Circuit: "top", Top: "counter", OutputDir: "/tmp/out"}
	for _, kv := range cfg.Environ() {
		parts := splitEnv(kv)
		t.Setenv(parts[0], parts[1])
	}
	got, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestConfigFromEnvRequiresCircuitAndTop(t *testing.T) {
	os.Unsetenv("HAMP_CIRCUIT")
	os.Unsetenv("HAMP_TOP")
	_, err := ConfigFromEnv()
	assert.Error(t, err)
}

func TestConfigFromEnvDefaultsOutputDir(t *testing.T) {
	t.Setenv("HAMP_CIRCUIT", "top")
	t.Setenv("HAMP_TOP", "counter")
	t.Setenv("HAMP_OUTPUT_DIR", "")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDir)
}

func splitEnv(kv string) [2]string {
	for i := 0; i < len(kv); i++ {
		if kv[i] == '=' {
			return [2]string{kv[:i], kv[i+1:]}
		}
	}
	return [2]string{kv, ""}
}
