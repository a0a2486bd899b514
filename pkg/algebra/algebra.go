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
package algebra

import (
	"fmt"

	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

// Coefficient captures the minimal requirements on values which can be used as
// the coefficients of a polynomial.  Specifically, coefficients must support
// value equality and hashing (so polynomials can be compared and hashed), and
// have a textual representation.
type Coefficient[T any] interface {
	fmt.Stringer
	hash.Hasher[T]
}

// Monoid provides the additive structure over a set of values.
type Monoid[T any] interface {
	// AdditiveUnity returns the identity of addition (i.e. zero).
	AdditiveUnity() T
	// Add returns a + b.
	Add(a, b T) T
	// IsAdditiveUnity checks whether a given value is the additive unity.
	IsAdditiveUnity(a T) bool
}

// Group extends a monoid with additive inverses.
type Group[T any] interface {
	Monoid[T]
	// AdditiveInverse returns -a.
	AdditiveInverse(a T) T
}

// Ring extends a group with multiplication.
type Ring[T any] interface {
	Group[T]
	// MultiplicativeUnity returns the identity of multiplication (i.e. one).
	MultiplicativeUnity() T
	// Multiply returns a * b.
	Multiply(a, b T) T
	// IsMultiplicativeUnity checks whether a given value is the multiplicative
	// unity.
	IsMultiplicativeUnity(a T) bool
	// AddRepeated returns a added to itself n times (i.e. n*a).
	AddRepeated(a T, n uint) T
}

// Field extends a ring with multiplicative inverses for all non-zero values.
type Field[T any] interface {
	Ring[T]
	// MultiplicativeInverse returns 1/a, or an error when a is zero.
	MultiplicativeInverse(a T) (T, error)
}

// Algebra describes a ring of values R into which scalars of type T can be
// lifted.  This is what permits a polynomial with coefficients in T to be
// evaluated at elements of R (e.g. square matrices).
type Algebra[T any, R any] interface {
	Ring[R]
	// Lift a scalar into this algebra.
	Lift(scalar T) R
}

// Pow raises a given value to the power n within a given ring, using repeated
// squaring.
func Pow[T any](ring Ring[T], val T, n uint) T {
	if n == 0 {
		return ring.MultiplicativeUnity()
	} else if n == 1 {
		return val
	}
	//
	half := Pow(ring, val, n/2)
	half = ring.Multiply(half, half)
	// Check for odd case
	if n%2 == 1 {
		return ring.Multiply(half, val)
	}
	//
	return half
}

// AddRepeated performs repeated addition using doubling, and is provided for
// structures which have no more direct way to implement it.
func AddRepeated[T any](monoid Monoid[T], val T, n uint) T {
	if n == 0 {
		return monoid.AdditiveUnity()
	} else if n == 1 {
		return val
	}
	//
	half := AddRepeated(monoid, val, n/2)
	half = monoid.Add(half, half)
	//
	if n%2 == 1 {
		return monoid.Add(half, val)
	}
	//
	return half
}
