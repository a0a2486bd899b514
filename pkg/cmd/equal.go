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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var equalCmd = &cobra.Command{
	Use:   "equal [flags] expr expr",
	Short: "check whether two polynomials are equal.",
	Long: `Check whether two polynomials are equal after expansion into normal
	form.  Exits with status 1 when they are not.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 2, 2)
		//
		eq, err := newSession(cmd, os.Stdout).Equal(args[0], args[1])
		//
		if err != nil {
			exitWithError(err)
		}
		//
		fmt.Println(eq)
		//
		if !eq {
			log.Debugf("%s and %s differ", args[0], args[1])
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(equalCmd)
}
