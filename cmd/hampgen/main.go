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
// Command hampgen is the standalone procedure-converter binary, invoked via
// `//go:generate hampgen $GOFILE` the same way the teacher ships small
// single-purpose main packages under cmd/ (cmd/testgen, SPEC_FULL.md §4.5).
package main

import (
	"fmt"
	"os"

	"github.com/telemarkguru/hamp/pkg/convert"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hampgen <file.go>")
		os.Exit(2)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := convert.Rewrite(src, path)
	if err != nil {
		return err
	}
	return os.WriteFile(convert.OutputName(path), out, 0o644)
}
