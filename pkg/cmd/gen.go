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
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/telemarkguru/hamp/pkg/convert"
)

var genCmd = &cobra.Command{
	Use:   "gen <file.go>",
	Short: "Run the procedure converter on a single Go source file.",
	Long: `gen is the direct entry point to pkg/convert: it rewrites every
function tagged //hamp:convert in file.go and writes the result to
file_hamp.go. The standalone hampgen binary runs the same conversion
from a //go:generate directive.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		if err := runGen(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
}

func runGen(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := convert.Rewrite(src, path)
	if err != nil {
		return err
	}
	dst := convert.OutputName(path)
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return err
	}
	log.Debugf("wrote %s", dst)
	return nil
}
