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
package poly

import (
	"testing"

	"github.com/consensys/go-symalg/pkg/algebra/field"
	"github.com/consensys/go-symalg/pkg/algebra/field/bls12_377"
	"github.com/consensys/go-symalg/pkg/algebra/field/bn254"
	"github.com/consensys/go-symalg/pkg/util/assert"
)

func Test_PolyField_01(t *testing.T) {
	p := parseBls(t, "(* (- x 1) (+ x 1))")
	e, err := p.GetExpanded(bls12_377.Field)
	assert.NoError(t, err)
	assert.True(t, e.Equals(parseBls(t, "(- (^ x 2) 1)")), "got %s", e.String())
}

func Test_PolyField_02(t *testing.T) {
	r, err := parseBls(t, "(+ (^ x 3) (* -2 x))").Derivative("x", bls12_377.Field)
	assert.NoError(t, err)
	assert.True(t, r.Equals(parseBls(t, "(- (* 3 (^ x 2)) 2)")), "got %s", r.String())
}

func Test_PolyField_03(t *testing.T) {
	parser, err := NewParser[bn254.Element](bn254.Field, field.Parse[bn254.Element])
	assert.NoError(t, err)
	//
	p, errs := parser.ParseString("(+ x -1)")
	assert.Equal(t, 0, len(errs))
	// x + (p-1) at x = 1 is zero in the field
	r, err := p.ReplaceValues(map[string]bn254.Element{"x": bn254.New(1)}, bn254.Field)
	assert.NoError(t, err)
	assert.True(t, r.IsZero(), "got %s", r.String())
}

func parseBls(t *testing.T, text string) *Polynomial[bls12_377.Element] {
	t.Helper()
	//
	parser, err := NewParser[bls12_377.Element](bls12_377.Field, field.Parse[bls12_377.Element])
	assert.NoError(t, err)
	//
	p, errs := parser.ParseString(text)
	if len(errs) > 0 {
		t.Fatalf("error parsing \"%s\": %s", text, errs[0].Error())
	}
	//
	return p
}
