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
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

// An Element of a prime-order field.  The zero value of an element type is
// expected to represent 0.
type Element[Operand any] interface {
	fmt.Stringer
	hash.Hasher[Operand]
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Compute x - y
	Sub(y Operand) Operand
	// SetUint64 returns an element representing the given value.
	SetUint64(uint64) Operand
	// SetString returns an element representing the given decimal value,
	// reduced modulo the field's modulus.
	SetString(string) (Operand, error)
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Parse constructs a field element from a (possibly negative) decimal string.
func Parse[F Element[F]](val string) (F, error) {
	var element F
	//
	if len(val) > 0 && val[0] == '-' {
		abs, err := element.SetString(val[1:])
		//
		if err != nil {
			return Zero[F](), err
		}
		//
		return element.Sub(abs), nil
	}
	//
	return element.SetString(val)
}
