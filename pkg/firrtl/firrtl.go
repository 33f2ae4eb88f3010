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
package firrtl

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/telemarkguru/hamp/pkg/ir"
)

// Version is the FIRRTL dialect version this emitter targets (spec.md §6).
const Version = "4.2.0"

// RenderCircuit renders every module of the named circuit: top first,
// marked as the public module, then the remaining modules sorted by name.
func RenderCircuit(db *ir.Database, circuitName, top string) (string, error) {
	circuit, ok := db.Circuits[circuitName]
	if !ok {
		return "", &ir.NameError{Msg: fmt.Sprintf("no such circuit %q", circuitName)}
	}
	if _, ok := circuit[top]; !ok {
		return "", &ir.NameError{Msg: fmt.Sprintf("top module %q not found in circuit %q", top, circuitName)}
	}

	names := make([]string, 0, len(circuit))
	for name := range circuit {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "FIRRTL version %s\n", Version)
	fmt.Fprintf(&b, "circuit %s :\n", circuitName)

	for _, name := range names {
		if warnsGenericReset(circuit[name]) {
			log.Warnf("module %s::%s uses generic Reset; rendering as AsyncReset per current policy", circuitName, name)
		}
	}

	b.WriteString(RenderModule(circuit[top], true))
	for _, name := range names {
		if name == top {
			continue
		}
		b.WriteString(RenderModule(circuit[name], false))
	}
	return b.String(), nil
}

func warnsGenericReset(m *ir.Module) bool {
	for _, name := range append(append(append([]string{}, m.Inputs...), m.Outputs...), m.Wires...) {
		if usesGenericReset(m.Data[name].Type) {
			return true
		}
	}
	return false
}

// Firrtl writes the rendered circuit to odir/name.fir and returns the full
// output path (spec.md §6: "firrtl(circuits, db, name, odir) writes
// odir/name.fir").
func Firrtl(db *ir.Database, circuitName, top, odir string) (string, error) {
	text, err := RenderCircuit(db, circuitName, top)
	if err != nil {
		return "", fmt.Errorf("firrtl: %w", err)
	}
	if err := os.MkdirAll(odir, 0o755); err != nil {
		return "", fmt.Errorf("firrtl: %w", err)
	}
	path := filepath.Join(odir, circuitName+".fir")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("firrtl: %w", err)
	}
	log.Debugf("wrote %s", path)
	return path, nil
}

// Verilog renders the circuit, writes the .fir file, then invokes firtool
// (named by $FIRTOOL, falling back to "firtool") to produce odir/name.v
// (spec.md §6).
func Verilog(db *ir.Database, circuitName, top, odir string) (string, error) {
	firPath, err := Firrtl(db, circuitName, top, odir)
	if err != nil {
		return "", err
	}
	tool := os.Getenv("FIRTOOL")
	if tool == "" {
		tool = "firtool"
	}
	vPath := filepath.Join(odir, circuitName+".v")
	cmd := exec.Command(tool, "--verilog", "-o="+vPath, firPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Debugf("running %s --verilog -o=%s %s", tool, vPath, firPath)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("firtool failed: %w", err)
	}
	return vPath, nil
}
