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
	"github.com/consensys/go-symalg/pkg/algebra"
)

// PrimeField is the field structure induced by a given element type, making
// it usable as the coefficient structure of a polynomial.
type PrimeField[F Element[F]] struct{}

// AdditiveUnity implementation for the Field interface.
func (PrimeField[F]) AdditiveUnity() F {
	return Zero[F]()
}

// MultiplicativeUnity implementation for the Field interface.
func (PrimeField[F]) MultiplicativeUnity() F {
	return One[F]()
}

// Add implementation for the Field interface.
func (PrimeField[F]) Add(a, b F) F {
	return a.Add(b)
}

// AdditiveInverse implementation for the Field interface.
func (PrimeField[F]) AdditiveInverse(a F) F {
	return Zero[F]().Sub(a)
}

// Multiply implementation for the Field interface.
func (PrimeField[F]) Multiply(a, b F) F {
	return a.Mul(b)
}

// MultiplicativeInverse implementation for the Field interface.
func (PrimeField[F]) MultiplicativeInverse(a F) (F, error) {
	if a.IsZero() {
		return a, algebra.DomainError("division by zero")
	}
	//
	return a.Inverse(), nil
}

// AddRepeated implementation for the Field interface.  Observe the result
// wraps around the modulus, hence may be zero even when a is not.
func (PrimeField[F]) AddRepeated(a F, n uint) F {
	return a.Mul(Uint64[F](uint64(n)))
}

// IsAdditiveUnity implementation for the Field interface.
func (PrimeField[F]) IsAdditiveUnity(a F) bool {
	return a.IsZero()
}

// IsMultiplicativeUnity implementation for the Field interface.
func (PrimeField[F]) IsMultiplicativeUnity(a F) bool {
	return a.IsOne()
}
