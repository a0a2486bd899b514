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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "interactively manipulate polynomials.",
	Long: `Read polynomials line by line, printing each one along with its
	normal form.  A line "let NAME EXPR" binds NAME to EXPR, such that NAME
	is replaced by EXPR in all subsequent lines.  Bindings are resolved when
	used, hence rebinding a name affects every binding which mentions it.  A
	binding may not refer back to itself.  Enter "quit" (or end the input) to
	stop.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkArgs(cmd, args, 0, 0)
		//
		if err := runRepl(cmd); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// lineReader reads the next line of input, returning io.EOF when there is no
// more.
type lineReader func() (string, error)

func runRepl(cmd *cobra.Command) error {
	fd := int(os.Stdin.Fd())
	// Fall back to plain line reading when not attached to a terminal.
	if !term.IsTerminal(fd) {
		scanner := bufio.NewScanner(os.Stdin)
		//
		return repl(newSession(cmd, os.Stdout), os.Stdout, func() (string, error) {
			if scanner.Scan() {
				return scanner.Text(), nil
			} else if err := scanner.Err(); err != nil {
				return "", err
			}
			//
			return "", io.EOF
		})
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	//
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			log.Error(err)
		}
	}()
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	// Grab terminal screen
	terminal := term.NewTerminal(screen, "> ")
	//
	return repl(newSession(cmd, terminal), terminal, terminal.ReadLine)
}

// repl evaluates each line of input against a given session until the input is
// exhausted.  Errors arising from a line are reported and do not end the loop.
func repl(session Session, out io.Writer, readLine lineReader) error {
	for {
		line, err := readLine()
		//
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		//
		line = strings.TrimSpace(line)
		//
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return nil
		case strings.HasPrefix(line, "let "):
			name, expr, ok := strings.Cut(strings.TrimSpace(line[4:]), " ")
			//
			if !ok {
				err = errors.New("expected let NAME EXPR")
			} else {
				err = session.Bind(name, strings.TrimSpace(expr))
			}
		default:
			err = session.Print(line)
		}
		//
		if err != nil {
			fmt.Fprintln(out, err.Error())
		}
	}
}
