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
	"fmt"

	"github.com/telemarkguru/hamp/pkg/ir"
)

func typeErrorf(format string, args ...any) error {
	return &ir.TypeError{Msg: fmt.Sprintf(format, args...)}
}

func nameErrorf(format string, args ...any) error {
	return &ir.NameError{Msg: fmt.Sprintf(format, args...)}
}

func indexErrorf(format string, args ...any) error {
	return &ir.IndexError{Msg: fmt.Sprintf(format, args...)}
}

func valueErrorf(format string, args ...any) error {
	return &ir.ValueError{Msg: fmt.Sprintf(format, args...)}
}
