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
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] expr...",
	Short: "expand polynomials into normal form.",
	Long: `Expand one or more polynomials into their normal form, where
	all products and powers of sums are fully distributed.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1, -1)
		//
		if err := newSession(cmd, os.Stdout).Expand(args); err != nil {
			exitWithError(err)
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr",
	Short: "evaluate a polynomial at a given point.",
	Long: `Evaluate a polynomial with variables assigned using --at.  When
	some variables are left unassigned, the polynomial is only partially
	evaluated and the remaining polynomial is printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1, 1)
		//
		if err := newSession(cmd, os.Stdout).Eval(args[0], getStringArray(cmd, "at")); err != nil {
			exitWithError(err)
		}
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff [flags] expr",
	Short: "differentiate a polynomial.",
	Long:  `Compute the formal partial derivative of a polynomial with respect to a variable given using --wrt.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 1, 1)
		//
		if err := newSession(cmd, os.Stdout).Diff(args[0], getString(cmd, "wrt")); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArray("at", []string{}, "assign a variable (e.g. --at x=2)")
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().String("wrt", "x", "variable to differentiate with respect to")
}
