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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

// curveSpec identifies a curve whose scalar field (as provided by gnark-crypto)
// is exposed as a coefficient domain.
type curveSpec struct {
	// Go package name for the generated element
	Package string
	// Directory of the curve within gnark-crypto's ecc package
	Curve string
	// Human-readable name of the curve
	Name string
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-symalg")

	specs := []curveSpec{
		{Package: "bls12_377", Curve: "bls12-377", Name: "BLS12-377"},
		{Package: "bn254", Curve: "bn254", Name: "BN254"},
	}

	for _, spec := range specs {
		assertNoError(bgen.Generate(spec, spec.Package, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Package),
				Templates: []string{"element.go.tmpl"},
			},
		), "for curve \"%s\"", spec.Name)
	}
	// run gofmt on generated elements
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
