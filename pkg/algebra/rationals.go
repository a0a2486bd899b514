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
	"math/big"

	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

var _ Field[Rational] = Rationals{}

// Rational is an arbitrary precision fraction used as a polynomial coefficient.
// The zero value represents 0.  Rationals are immutable.
type Rational struct {
	val big.Rat
}

// NewRational constructs the rational num/den.  A zero denominator is a domain
// error.
func NewRational(num, den int64) (Rational, error) {
	var res Rational
	//
	if den == 0 {
		return res, DomainError("zero denominator")
	}
	//
	res.val.SetFrac64(num, den)
	//
	return res, nil
}

// RationalOf constructs a rational from a given integer.
func RationalOf(val int64) Rational {
	var res Rational
	res.val.SetInt64(val)
	//
	return res
}

// ParseRational parses a rational given either as a decimal integer, a
// fraction "a/b" or a finite decimal "1.25".
func ParseRational(s string) (Rational, error) {
	var res Rational
	//
	if _, ok := res.val.SetString(s); !ok {
		return res, DomainError("invalid rational \"%s\"", s)
	}
	//
	return res, nil
}

// Rat returns a copy of the underlying value.
func (x Rational) Rat() *big.Rat {
	return new(big.Rat).Set(&x.val)
}

// Equals implementation for the Hasher interface.
func (x Rational) Equals(y Rational) bool {
	return x.val.Cmp(&y.val) == 0
}

// Hash implementation for the Hasher interface.
func (x Rational) Hash() uint64 {
	return hash.String(x.val.RatString())
}

func (x Rational) String() string {
	return x.val.RatString()
}

// Rationals is the field of rational numbers.
type Rationals struct{}

// AdditiveUnity implementation for the Field interface.
func (Rationals) AdditiveUnity() Rational {
	return Rational{}
}

// MultiplicativeUnity implementation for the Field interface.
func (Rationals) MultiplicativeUnity() Rational {
	return RationalOf(1)
}

// Add implementation for the Field interface.
func (Rationals) Add(a, b Rational) Rational {
	var res Rational
	res.val.Add(&a.val, &b.val)
	//
	return res
}

// AdditiveInverse implementation for the Field interface.
func (Rationals) AdditiveInverse(a Rational) Rational {
	var res Rational
	res.val.Neg(&a.val)
	//
	return res
}

// Multiply implementation for the Field interface.
func (Rationals) Multiply(a, b Rational) Rational {
	var res Rational
	res.val.Mul(&a.val, &b.val)
	//
	return res
}

// MultiplicativeInverse implementation for the Field interface.
func (Rationals) MultiplicativeInverse(a Rational) (Rational, error) {
	var res Rational
	//
	if a.val.Sign() == 0 {
		return res, DomainError("division by zero")
	}
	//
	res.val.Inv(&a.val)
	//
	return res, nil
}

// AddRepeated implementation for the Field interface.
func (Rationals) AddRepeated(a Rational, n uint) Rational {
	var res Rational
	res.val.SetUint64(uint64(n))
	res.val.Mul(&res.val, &a.val)
	//
	return res
}

// IsAdditiveUnity implementation for the Field interface.
func (Rationals) IsAdditiveUnity(a Rational) bool {
	return a.val.Sign() == 0
}

// IsMultiplicativeUnity implementation for the Field interface.
func (Rationals) IsMultiplicativeUnity(a Rational) bool {
	return a.val.IsInt() && a.val.Num().IsInt64() && a.val.Num().Int64() == 1
}
