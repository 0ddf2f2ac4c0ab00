// Copyright Consensys Software Inc.
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

// Package cmd wires the calculator's command executor to a command line,
// following the cobra-based root-command shape of the repository this one
// was grown from.
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dawmd/polycalc/pkg/calc"
	"github.com/dawmd/polycalc/pkg/util"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

// rootCmd represents the base command when called without any subcommands:
// it reads a calculator program from stdin and drives it to completion.
var rootCmd = &cobra.Command{
	Use:   "polycalc",
	Short: "A stack-based calculator for sparse multivariate polynomials.",
	Long: "A stack-based calculator for sparse multivariate polynomials over\n" +
		"bounded machine integers, driven by a line-oriented command protocol\n" +
		"read from standard input.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			reportVersion()
			return
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var stats *util.PerfStats
		if GetFlag(cmd, "stats") {
			stats = util.NewPerfStats()
		}
		//
		repl := calc.NewREPL(os.Stdout, os.Stderr)
		//
		if err := repl.Run(os.Stdin); err != nil {
			log.Fatalf("reading input: %s", err)
		}
		//
		if stats != nil {
			stats.Log("polycalc session")
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func reportVersion() {
	fmt.Print("polycalc ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Printf("%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Printf("%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Printf("(unknown version)")
	}
	//
	fmt.Println()
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("stats", false, "report timing and memory statistics on exit")
}
