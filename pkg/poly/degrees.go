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
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

var _ hash.Hasher[Degrees] = Degrees{}

// Degrees represents the exponent vector of a single term within a polynomial.
// The ith exponent gives the degree of the ith slot of the enclosing
// polynomial.  Trailing zeros carry no meaning, hence [1,0] and [1] denote the
// same term and are considered equal (and hash identically).  Degrees are
// immutable.
type Degrees struct {
	exps []uint
}

// NewDegrees constructs a new exponent vector from a given set of exponents.
func NewDegrees(exps ...uint) Degrees {
	return Degrees{slices.Clone(exps)}
}

// unitDegrees constructs an exponent vector which is zero everywhere except
// for a given position.
func unitDegrees(index uint, exp uint) Degrees {
	exps := make([]uint, index+1)
	exps[index] = exp
	//
	return Degrees{exps}
}

// Len returns the number of meaningful positions in this vector.  That is, the
// length once trailing zeros are discarded.
func (d Degrees) Len() uint {
	n := len(d.exps)
	//
	for n > 0 && d.exps[n-1] == 0 {
		n--
	}
	//
	return uint(n)
}

// Get returns the exponent at a given position, where positions beyond the
// end of the vector are implicitly zero.
func (d Degrees) Get(index uint) uint {
	if index < uint(len(d.exps)) {
		return d.exps[index]
	}
	//
	return 0
}

// IsZero checks whether every exponent is zero, in which case this denotes a
// constant term.
func (d Degrees) IsZero() bool {
	return d.Len() == 0
}

// Total returns the sum of all exponents.
func (d Degrees) Total() uint {
	var total uint
	//
	for _, e := range d.exps {
		total += e
	}
	//
	return total
}

// Add returns the pointwise sum of two exponent vectors.  This corresponds to
// the product of the terms they denote.  This fails if any exponent of the
// result cannot be represented.
func (d Degrees) Add(other Degrees) (Degrees, error) {
	n := max(len(d.exps), len(other.exps))
	exps := make([]uint, n)
	//
	for i := range exps {
		sum, carry := bits.Add(d.Get(uint(i)), other.Get(uint(i)), 0)
		//
		if carry != 0 {
			return Degrees{}, overflow(d, "+", other)
		}
		//
		exps[i] = sum
	}
	//
	return Degrees{exps}, nil
}

// Scale multiplies every exponent by a given factor.  This corresponds to
// raising the term they denote to a given power.  This fails if any exponent
// of the result cannot be represented.
func (d Degrees) Scale(n uint) (Degrees, error) {
	exps := make([]uint, len(d.exps))
	//
	for i, e := range d.exps {
		hi, lo := bits.Mul(e, n)
		//
		if hi != 0 {
			return Degrees{}, overflow(d, "*", n)
		}
		//
		exps[i] = lo
	}
	//
	return Degrees{exps}, nil
}

// With returns a copy of this vector where a given position is updated.
func (d Degrees) With(index uint, exp uint) Degrees {
	exps := make([]uint, max(uint(len(d.exps)), index+1))
	copy(exps, d.exps)
	exps[index] = exp
	//
	return Degrees{exps}
}

// Equals implementation for the Hasher interface.  Observe this is insensitive
// to trailing zeros.
func (d Degrees) Equals(other Degrees) bool {
	n := d.Len()
	//
	if n != other.Len() {
		return false
	}
	//
	return slices.Equal(d.exps[:n], other.exps[:n])
}

// Hash implementation for the Hasher interface.  Observe this is insensitive
// to trailing zeros.
func (d Degrees) Hash() uint64 {
	return hash.Uints(d.exps[:d.Len()]...)
}

func (d Degrees) String() string {
	var buf strings.Builder
	//
	buf.WriteString("[")
	//
	for i, e := range d.exps {
		if i != 0 {
			buf.WriteString(",")
		}
		//
		buf.WriteString(fmt.Sprintf("%d", e))
	}
	//
	buf.WriteString("]")
	//
	return buf.String()
}

func overflow(lhs Degrees, op string, rhs any) error {
	return algebra.DomainError("exponent overflow in %s %s %v", lhs.String(), op, rhs)
}
