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
// Package ir implements the canonical in-memory representation of a hamp
// design: a database of circuits, each a set of named modules, each a set
// of ordered member lists, a type-tagged member table, and a statement
// list. The database is the sole source of truth; the builder, validator
// and emitter all read and write through it (see SPEC_FULL.md §4.2).
package ir

import "fmt"

// The four error kinds named by spec.md §7. Every builder/validator failure
// is reported as exactly one of these, never caught and converted
// internally -- each escapes to the caller as an ordinary Go error.

// TypeError reports mismatched signedness, a non-equivalent connect, a
// slice on a non-integer, an index on a non-array, a badly-signed shift
// amount, or a bad operand kind for an as_* conversion.
type TypeError struct{ Msg string }

func (e *TypeError) Error() string { return "type error: " + e.Msg }

// NameError reports a duplicate module, a duplicate member, an unknown
// module or member, a reserved name, or a malformed identifier.
type NameError struct{ Msg string }

func (e *NameError) Error() string { return "name error: " + e.Msg }

// IndexError reports an out-of-range array index or invalid slice
// endpoints.
type IndexError struct{ Msg string }

func (e *IndexError) Error() string { return "index error: " + e.Msg }

// ValueError reports a literal out of type range, an ill-formed database
// entry, a reset value mismatch, or a format-string placeholder/argument
// count mismatch.
type ValueError struct{ Msg string }

func (e *ValueError) Error() string { return "value error: " + e.Msg }

func typeErrorf(format string, args ...any) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

func nameErrorf(format string, args ...any) error {
	return &NameError{Msg: fmt.Sprintf(format, args...)}
}

func indexErrorf(format string, args ...any) error {
	return &IndexError{Msg: fmt.Sprintf(format, args...)}
}

func valueErrorf(format string, args ...any) error {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}
