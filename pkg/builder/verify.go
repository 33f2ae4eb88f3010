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
	"strings"

	"github.com/telemarkguru/hamp/pkg/hwtype"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// resolveClock returns clock unchanged if supplied (validating it really is
// a clock-typed signal), or infers the module's sole clock input when nil
// (spec.md §4.4; uses ir.Module.SoleClockInput, erroring unless the module
// declares exactly one clock input).
func (b *Module) resolveClock(clock *ir.Expr) (*ir.Expr, error) {
	if clock != nil {
		if !hwtype.IsClock(clock.Type) {
			return nil, typeErrorf("clock argument must be clock-typed, got %s", clock.Type)
		}
		return clock, nil
	}
	name, ok := b.Rec.SoleClockInput()
	if !ok {
		return nil, valueErrorf("clock omitted and module %s does not declare exactly one clock input", b.Rec.QualifiedName())
	}
	return b.Ref(name)
}

// countPlaceholders counts the %b/%d/%x format verbs in format, skipping
// escaped %% sequences (spec.md §4.4's printf/assertf/coverf format mini-
// language).
func countPlaceholders(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 >= len(format) {
			break
		}
		switch format[i+1] {
		case '%':
			i++
		case 'b', 'd', 'x':
			n++
			i++
		}
	}
	return n
}

// checkPlaceholders errors with the exact wording of spec.md §8 scenario 6
// when the format string's placeholder count doesn't match the number of
// arguments supplied.
func checkPlaceholders(format string, argc int) error {
	n := countPlaceholders(format)
	if n != argc {
		return valueErrorf("Placeholders vs arguments mismatch %d != %d", n, argc)
	}
	return nil
}

func requireGroundArgs(args []*ir.Expr) error {
	for _, a := range args {
		if !a.Type.Ground() {
			return typeErrorf("verification statement arguments must be ground types, got %s", a.Type)
		}
	}
	return nil
}

// Printf emits a simulation-time formatted print. clock may be nil to infer
// the module's sole clock input; enable may be nil, defaulting to u1(1).
func (b *Module) Printf(clock, enable *ir.Expr, format string, args ...*ir.Expr) error {
	ck, err := b.resolveClock(clock)
	if err != nil {
		return err
	}
	if enable == nil {
		enable = defaultEnable()
	} else if err := requireU1(enable); err != nil {
		return err
	}
	if err := requireGroundArgs(args); err != nil {
		return err
	}
	if err := checkPlaceholders(format, len(args)); err != nil {
		return err
	}
	b.emit(ir.Printf{Clock: ck, Enable: enable, Format: format, Args: args})
	return nil
}

// Assertf emits a simulation-time assertion: pred must hold whenever enable
// is true, else format/args are reported.
func (b *Module) Assertf(clock, pred, enable *ir.Expr, format string, args ...*ir.Expr) error {
	ck, err := b.resolveClock(clock)
	if err != nil {
		return err
	}
	if err := requireU1(pred); err != nil {
		return err
	}
	if enable == nil {
		enable = defaultEnable()
	} else if err := requireU1(enable); err != nil {
		return err
	}
	if err := requireGroundArgs(args); err != nil {
		return err
	}
	if err := checkPlaceholders(format, len(args)); err != nil {
		return err
	}
	b.emit(ir.Assertf{Clock: ck, Pred: pred, Enable: enable, Format: format, Args: args})
	return nil
}

// Coverf records a coverage point: pred is sampled whenever enable is true.
// Unlike Printf/Assertf it takes no interpolation arguments, matching
// spec.md's literal coverf(clk?, pred, en?, fmt) signature.
func (b *Module) Coverf(clock, pred, enable *ir.Expr, format string) error {
	ck, err := b.resolveClock(clock)
	if err != nil {
		return err
	}
	if err := requireU1(pred); err != nil {
		return err
	}
	if enable == nil {
		enable = defaultEnable()
	} else if err := requireU1(enable); err != nil {
		return err
	}
	if strings.ContainsRune(format, '%') && countPlaceholders(format) != 0 {
		return valueErrorf("coverf format accepts no placeholders")
	}
	b.emit(ir.Coverf{Clock: ck, Pred: pred, Enable: enable, Format: format})
	return nil
}
