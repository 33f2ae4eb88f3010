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
// Package hampcli is the small runtime counterpart to cmd/hamp: since Go has
// no portable way to import an arbitrary caller-named package and pull a
// value out of it, a hamp circuit's "go-package" is a normal `package main`
// that builds its own ir.Database with pkg/builder and then hands it to
// Run, which does whatever `hamp build`/`hamp verilog` asked for (passed
// down as environment variables set by the subprocess that invoked `go run`
// on the package, mirroring how the teacher's own pkg/cmd/generate.go shells
// out to an external tool and inspects its exit status rather than linking
// against it).
package hampcli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/telemarkguru/hamp/pkg/firrtl"
	"github.com/telemarkguru/hamp/pkg/ir"
	"github.com/telemarkguru/hamp/pkg/validate"
)

// Mode selects what Run does once the circuit has been built.
type Mode string

const (
	ModeBuild   Mode = "build"
	ModeVerilog Mode = "verilog"
)

// Config is read from the environment hamp build/verilog populate before
// running `go run` on the target package (SPEC_FULL.md §B).
type Config struct {
	Mode      Mode
	Circuit   string
	Top       string
	OutputDir string
}

const (
	envMode    = "HAMP_MODE"
	envCircuit = "HAMP_CIRCUIT"
	envTop     = "HAMP_TOP"
	envOutDir  = "HAMP_OUTPUT_DIR"
)

// ConfigFromEnv reads the Config a `hamp build`/`hamp verilog` subprocess
// set for its child `go run` invocation.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Mode:      Mode(os.Getenv(envMode)),
		Circuit:   os.Getenv(envCircuit),
		Top:       os.Getenv(envTop),
		OutputDir: os.Getenv(envOutDir),
	}
	if cfg.Circuit == "" || cfg.Top == "" {
		return cfg, fmt.Errorf("hampcli: %s and %s must be set (run via `hamp build`/`hamp verilog`)", envCircuit, envTop)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}

// Environ renders cfg as the environment hamp build/verilog pass to their
// `go run` child.
func (cfg Config) Environ() []string {
	return []string{
		envMode + "=" + string(cfg.Mode),
		envCircuit + "=" + cfg.Circuit,
		envTop + "=" + cfg.Top,
		envOutDir + "=" + cfg.OutputDir,
	}
}

// Run validates db and then emits FIRRTL (ModeBuild) or FIRRTL+Verilog
// (ModeVerilog), per the Config found in the environment. It is the last
// call a hamp circuit's main() makes.
func Run(db *ir.Database) error {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return err
	}
	if errs := validate.Database(db); len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("validation: %v", e)
		}
		return fmt.Errorf("hampcli: %d validation error(s)", len(errs))
	}

	switch cfg.Mode {
	case ModeVerilog:
		path, err := firrtl.Verilog(db, cfg.Circuit, cfg.Top, cfg.OutputDir)
		if err != nil {
			return err
		}
		log.Debugf("wrote %s", path)
	case ModeBuild, "":
		path, err := firrtl.Firrtl(db, cfg.Circuit, cfg.Top, cfg.OutputDir)
		if err != nil {
			return err
		}
		log.Debugf("wrote %s", path)
	default:
		return fmt.Errorf("hampcli: unknown mode %q", cfg.Mode)
	}
	return nil
}
