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
	"math/big"
	"strings"

	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// constWire is a hidden wire synthesized to hold a constant struct/array
// literal, e.g. an aggregate register reset value (spec.md §4.7: "Constant
// struct/array literals are synthesized as a hidden wire-of-const T with
// per-leaf connects").
type constWire struct {
	name     string
	register string // name of the register this wire was synthesized for
	typ      hwtype.Type
	leaves   []leafConnect
}

type leafConnect struct {
	path string // e.g. "_K0.a.b[2]"
	lit  hwtype.Value
}

// collectConstWires scans m's registers for aggregate (non-ground) reset
// values and synthesizes one hidden wire per such register.
func collectConstWires(m *ir.Module) []constWire {
	var wires []constWire
	n := 0
	for _, name := range m.Registers {
		d := m.Data[name]
		if d.Reset == nil || d.Reset.Value.Type.Ground() {
			continue
		}
		wname := fmt.Sprintf("_K%d", n)
		n++
		var leaves []leafConnect
		collectLeaves(wname, d.Reset.Value, &leaves)
		wires = append(wires, constWire{name: wname, register: name, typ: d.Reset.Value.Type, leaves: leaves})
	}
	return wires
}

func collectLeaves(path string, v hwtype.Value, out *[]leafConnect) {
	switch v.Type.Kind() {
	case hwtype.KindArray:
		for i, elem := range v.Elems {
			collectLeaves(fmt.Sprintf("%s[%d]", path, i), elem, out)
		}
	case hwtype.KindStruct:
		st, _ := v.Type.AsStruct()
		for _, f := range st.Fields {
			collectLeaves(path+"."+f.Name, v.Fields[f.Name], out)
		}
	default:
		*out = append(*out, leafConnect{path: path, lit: v})
	}
}

func renderValueLit(v hwtype.Value) string {
	_, ok := v.Type.AsInt()
	if !ok {
		return v.Type.String()
	}
	return fmt.Sprintf("%s(%s)", renderType(v.Type), valueInt(v).String())
}

func valueInt(v hwtype.Value) *big.Int {
	if v.Int != nil {
		return v.Int
	}
	return big.NewInt(0)
}

// RenderModule renders a single module body, isTop marking whether it gets
// the `public` keyword (the circuit's top module, spec.md §6).
func RenderModule(m *ir.Module, isTop bool) string {
	var b strings.Builder
	kw := "module"
	if isTop {
		kw = "public module"
	}
	fmt.Fprintf(&b, "  %s %s :\n", kw, m.Name)

	for _, name := range m.Inputs {
		fmt.Fprintf(&b, "    input %s : %s\n", name, renderType(m.Data[name].Type))
	}
	for _, name := range m.Outputs {
		fmt.Fprintf(&b, "    output %s : %s\n", name, renderType(m.Data[name].Type))
	}
	b.WriteString("\n")

	constWires := collectConstWires(m)
	for _, w := range constWires {
		fmt.Fprintf(&b, "    wire %s : %s\n", w.name, renderType(w.typ))
	}
	for _, name := range m.Wires {
		fmt.Fprintf(&b, "    wire %s : %s\n", name, renderType(m.Data[name].Type))
	}
	for _, name := range m.Registers {
		d := m.Data[name]
		if d.Reset == nil {
			fmt.Fprintf(&b, "    reg %s : %s, %s\n", name, renderType(d.Type), d.Clock)
			continue
		}
		resetVal := ""
		if d.Reset.Value.Type.Ground() {
			resetVal = renderValueLit(d.Reset.Value)
		} else {
			for _, w := range constWires {
				if w.register == name {
					resetVal = w.name
					break
				}
			}
		}
		fmt.Fprintf(&b, "    regreset %s : %s, %s, %s, %s\n", name, renderType(d.Type), d.Clock, d.Reset.Signal, resetVal)
	}
	for _, name := range m.Instances {
		d := m.Data[name]
		fmt.Fprintf(&b, "    inst %s of %s\n", name, d.Module)
	}
	for _, name := range m.Memories {
		renderMemory(&b, name, m.Data[name])
	}
	b.WriteString("\n")

	for _, w := range constWires {
		for _, leaf := range w.leaves {
			fmt.Fprintf(&b, "    %s <= %s\n", leaf.path, renderValueLit(leaf.lit))
		}
	}
	renderStmts(&b, m.Code, 1)
	return b.String()
}

func renderMemory(b *strings.Builder, name string, d *ir.Member) {
	spec := d.Memory
	fmt.Fprintf(b, "    mem %s :\n", name)
	fmt.Fprintf(b, "      data-type => %s\n", renderType(d.Type))
	fmt.Fprintf(b, "      depth => %d\n", spec.Depth)
	for _, r := range spec.Readers {
		fmt.Fprintf(b, "      reader => %s\n", r)
	}
	for _, w := range spec.Writers {
		fmt.Fprintf(b, "      writer => %s\n", w)
	}
	for _, rw := range spec.Readwriters {
		fmt.Fprintf(b, "      readwriter => %s\n", rw)
	}
	fmt.Fprintf(b, "      read-latency => %d\n", spec.ReadLatency)
	fmt.Fprintf(b, "      write-latency => %d\n", spec.WriteLatency)
	b.WriteString("      read-under-write => undefined\n")
}
