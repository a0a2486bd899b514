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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-symalg/pkg/algebra"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string array, or exit if an error arises.
func getStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Check the number of positional arguments, printing usage and exiting if
// they are not as expected.
func checkArgs(cmd *cobra.Command, args []string, lower int, upper int) {
	if len(args) < lower || (upper >= 0 && len(args) > upper) {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
}

// Report an error arising from a command and exit.  Syntax errors and invalid
// inputs exit with status 2, whilst all other failures exit with status 1.
func exitWithError(err error) {
	var perr *parseError
	//
	if errors.As(err, &perr) {
		printSyntaxErrors(perr)
		os.Exit(2)
	} else if errors.Is(err, algebra.ErrInvalidArgument) {
		log.Error(err)
		os.Exit(2)
	}
	//
	log.Error(err)
	os.Exit(1)
}

// Print syntax errors with appropriate highlighting.
func printSyntaxErrors(err *parseError) {
	text := []rune(err.text)
	//
	for i := range err.errors {
		var (
			e          = &err.errors[i]
			start, end = e.Span().Start(), e.Span().End()
		)
		// Print error with line / column information
		fmt.Println(e.Error())
		//
		line, offset := findEnclosingLine(start, text)
		// Print line
		fmt.Println(string(line))
		// Print indent
		fmt.Print(strings.Repeat(" ", max(0, start-offset)))
		// Print highlight
		fmt.Println(strings.Repeat("^", max(1, min(end, offset+len(line))-start)))
	}
}

// Determine the enclosing line for the given index in a string, along with the
// offset at which that line starts.
func findEnclosingLine(index int, text []rune) ([]rune, int) {
	start := 0
	// Handle case where we've reached the end-of-file unexpectedly.  This
	// essentially means the error is reported at the end of the last physical
	// line.
	if index >= len(text) {
		index = len(text) - 1
	}
	// Find the line.
	for i := 0; i < index; i++ {
		if text[i] == '\n' {
			start = i + 1
		}
	}
	//
	end := start
	// Find end of line
	for end < len(text) && text[end] != '\n' {
		end++
	}
	//
	return text[start:end], start
}
