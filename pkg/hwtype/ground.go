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
package hwtype

// ClockType is a single-bit clock signal.
type ClockType struct{}

// ResetType is a generic reset signal whose concrete nature (sync or async)
// is left to the downstream toolchain to resolve; see SPEC_FULL.md Open
// Question 2.
type ResetType struct{}

// AsyncResetType is an asynchronous reset signal.
type AsyncResetType struct{}

// SyncResetType is a synchronous reset signal.
type SyncResetType struct{}

func (t *ClockType) Kind() Kind      { return KindClock }
func (t *ResetType) Kind() Kind      { return KindReset }
func (t *AsyncResetType) Kind() Kind { return KindAsyncReset }
func (t *SyncResetType) Kind() Kind  { return KindSyncReset }

func (t *ClockType) Ground() bool      { return true }
func (t *ResetType) Ground() bool      { return true }
func (t *AsyncResetType) Ground() bool { return true }
func (t *SyncResetType) Ground() bool  { return true }

func (t *ClockType) AsInt() (IntType, bool)      { return nil, false }
func (t *ResetType) AsInt() (IntType, bool)      { return nil, false }
func (t *AsyncResetType) AsInt() (IntType, bool) { return nil, false }
func (t *SyncResetType) AsInt() (IntType, bool)  { return nil, false }

func (t *ClockType) AsArray() (*ArrayType, bool)      { return nil, false }
func (t *ResetType) AsArray() (*ArrayType, bool)      { return nil, false }
func (t *AsyncResetType) AsArray() (*ArrayType, bool) { return nil, false }
func (t *SyncResetType) AsArray() (*ArrayType, bool)  { return nil, false }

func (t *ClockType) AsStruct() (*StructType, bool)      { return nil, false }
func (t *ResetType) AsStruct() (*StructType, bool)      { return nil, false }
func (t *AsyncResetType) AsStruct() (*StructType, bool) { return nil, false }
func (t *SyncResetType) AsStruct() (*StructType, bool)  { return nil, false }

func (t *ClockType) String() string      { return "Clock" }
func (t *ResetType) String() string      { return "Reset" }
func (t *AsyncResetType) String() string { return "AsyncReset" }
func (t *SyncResetType) String() string  { return "SyncReset" }

// Clock returns a new clock type.
func Clock() *ClockType { return &ClockType{} }

// Reset returns a new generic reset type.
func Reset() *ResetType { return &ResetType{} }

// AsyncReset returns a new asynchronous reset type.
func AsyncReset() *AsyncResetType { return &AsyncResetType{} }

// SyncReset returns a new synchronous reset type.
func SyncReset() *SyncResetType { return &SyncResetType{} }

// IsResetLike reports whether t is any of Reset/AsyncReset/SyncReset or u1,
// the set of types a register reset signal is allowed to have.
func IsResetLike(t Type) bool {
	switch t.Kind() {
	case KindReset, KindAsyncReset, KindSyncReset:
		return true
	case KindUint:
		it, _ := t.AsInt()
		return it.Width() == 1
	default:
		return false
	}
}

// IsClock reports whether t is a clock type.
func IsClock(t Type) bool { return t.Kind() == KindClock }
