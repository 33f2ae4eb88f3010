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

	"github.com/telemarkguru/hamp/pkg/hampcli"
)

var verilogCmd = &cobra.Command{
	Use:   "verilog <go-package>",
	Short: "Build a hamp circuit and emit Verilog via firtool.",
	Long: `verilog behaves like build, then invokes the tool named by the
FIRTOOL environment variable (falling back to "firtool") with
"--verilog -o=<circuit>.v <circuit>.fir", exiting non-zero on tool
failure (spec.md §6).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		cfg := hampcli.Config{
			Mode:      hampcli.ModeVerilog,
			Circuit:   GetString(cmd, "circuit"),
			Top:       GetString(cmd, "top"),
			OutputDir: GetString(cmd, "output-dir"),
		}
		if err := runPackage(args[0], cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	verilogCmd.Flags().String("circuit", "top", "circuit name to build")
	verilogCmd.Flags().String("top", "", "top module name within the circuit")
	verilogCmd.Flags().String("output-dir", ".", "directory to write output files to")
	verilogCmd.MarkFlagRequired("top")
	rootCmd.AddCommand(verilogCmd)
}
