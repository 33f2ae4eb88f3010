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
// Package stdlib provides the small set of hardware-expression helpers
// that spec.md §1 excludes from the core builder ("stdlib helpers beyond
// interface") but original_source/hamp/_stdlib.py implements as thin
// convenience wrappers over the builder's own operator calls
// (SPEC_FULL.md §C). Each function here is a one-line call into
// pkg/builder; the package exists so callers have a stable, documented
// entry point distinct from the builder's lower-level operator API.
package stdlib

import (
	"github.com/telemarkguru/hamp/pkg/builder"
	"github.com/telemarkguru/hamp/pkg/ir"
)

// Cat concatenates a and b into a single unsigned value, a in the high
// bits and b in the low bits.
func Cat(a, b *ir.Expr) (*ir.Expr, error) { return builder.Cat(a, b) }

// Pad widens a to at least n bits, preserving its signedness.
func Pad(a *ir.Expr, n uint) (*ir.Expr, error) { return builder.Pad(a, n) }

// Cvt converts a to a signed type, widening by one bit if it was unsigned.
func Cvt(a *ir.Expr) (*ir.Expr, error) { return builder.Cvt(a) }

// AsUint reinterprets a ground-typed value as an unsigned integer of the
// same bit width.
func AsUint(a *ir.Expr) (*ir.Expr, error) { return builder.AsUint(a) }

// AsSint reinterprets a ground-typed value as a signed integer of the same
// bit width.
func AsSint(a *ir.Expr) (*ir.Expr, error) { return builder.AsSint(a) }

// AsClock reinterprets a 1-bit ground value as a clock.
func AsClock(a *ir.Expr) (*ir.Expr, error) { return builder.AsClock(a) }

// AsAsyncReset reinterprets a 1-bit ground value as an asynchronous reset.
func AsAsyncReset(a *ir.Expr) (*ir.Expr, error) { return builder.AsAsyncReset(a) }
