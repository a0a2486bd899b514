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
	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

// Add returns the sum of this polynomial and another.  The slots of the
// result are those of this polynomial used by some term, followed by those of
// the other polynomial not already present.
func (p *Polynomial[T]) Add(other *Polynomial[T], monoid algebra.Monoid[T]) (*Polynomial[T], error) {
	if monoid == nil {
		return nil, algebra.InvalidArgument("monoid required")
	} else if other == nil {
		return nil, algebra.InvalidArgument("polynomial required")
	}
	//
	return p.add(other, monoid), nil
}

// Subtract returns the difference of this polynomial and another.
func (p *Polynomial[T]) Subtract(other *Polynomial[T], group algebra.Group[T]) (*Polynomial[T], error) {
	if group == nil {
		return nil, algebra.InvalidArgument("group required")
	} else if other == nil {
		return nil, algebra.InvalidArgument("polynomial required")
	}
	//
	return p.add(other.negate(group), group), nil
}

// GetSymmetric returns the additive inverse of this polynomial.
func (p *Polynomial[T]) GetSymmetric(group algebra.Group[T]) (*Polynomial[T], error) {
	if group == nil {
		return nil, algebra.InvalidArgument("group required")
	}
	//
	return p.negate(group), nil
}

// Multiply returns the product of this polynomial and another.  When either
// operand is a value, or at least one operand is a monomial, the product is
// computed directly.  Otherwise, both operands are sums and the product is
// represented lazily as a single term (p)*(q) over two nested slots.  Use
// GetExpanded to distribute such products.  This fails with a domain error if
// some exponent of the product cannot be represented.
func (p *Polynomial[T]) Multiply(other *Polynomial[T], ring algebra.Ring[T]) (*Polynomial[T], error) {
	if ring == nil {
		return nil, algebra.InvalidArgument("ring required")
	} else if other == nil {
		return nil, algebra.InvalidArgument("polynomial required")
	}
	//
	return p.multiply(other, ring)
}

// Power returns this polynomial raised to the nth power.  A polynomial with
// more than one term is not expanded, but instead represented as a single
// term over a nested slot holding this polynomial.  This fails with a domain
// error if some exponent of the result cannot be represented.
func (p *Polynomial[T]) Power(n uint, ring algebra.Ring[T]) (*Polynomial[T], error) {
	if ring == nil {
		return nil, algebra.InvalidArgument("ring required")
	}
	//
	return p.power(n, ring)
}

func (p *Polynomial[T]) add(other *Polynomial[T], monoid algebra.Monoid[T]) *Polynomial[T] {
	var (
		rec   = newReconciler[T](uint(len(p.slots) + len(other.slots)))
		terms = hash.NewMap[Degrees, T](p.Len() + other.Len())
	)
	//
	for _, t := range rec.translateAll(p) {
		accumulate(terms, t.degrees, t.coeff, monoid)
	}
	//
	for _, t := range rec.translateAll(other) {
		accumulate(terms, t.degrees, t.coeff, monoid)
	}
	//
	return rec.build(terms)
}

func (p *Polynomial[T]) negate(group algebra.Group[T]) *Polynomial[T] {
	terms := hash.NewMap[Degrees, T](p.Len())
	//
	for d, c := range p.Terms() {
		terms.Insert(d, group.AdditiveInverse(c))
	}
	//
	return &Polynomial[T]{cloneSlots(p.slots), terms}
}

func (p *Polynomial[T]) multiply(other *Polynomial[T], ring algebra.Ring[T]) (*Polynomial[T], error) {
	switch {
	case p.IsZero() || other.IsZero():
		return Zero[T](), nil
	case p.IsValue():
		_, c := p.first()
		return other.scale(c, true, ring), nil
	case other.IsValue():
		_, c := other.first()
		return p.scale(c, false, ring), nil
	case p.IsMonomial() || other.IsMonomial():
		return distribute(p, other, ring)
	default:
		return lazyProduct(p, other, ring), nil
	}
}

// scale multiplies every coefficient of this polynomial by a given scalar,
// placed either on the left or the right.  The slots are unchanged.
func (p *Polynomial[T]) scale(scalar T, left bool, ring algebra.Ring[T]) *Polynomial[T] {
	terms := hash.NewMap[Degrees, T](p.Len())
	//
	for d, c := range p.Terms() {
		if left {
			c = ring.Multiply(scalar, c)
		} else {
			c = ring.Multiply(c, scalar)
		}
		//
		if !ring.IsAdditiveUnity(c) {
			terms.Insert(d, c)
		}
	}
	//
	return &Polynomial[T]{cloneSlots(p.slots), terms}
}

func (p *Polynomial[T]) power(n uint, ring algebra.Ring[T]) (*Polynomial[T], error) {
	switch {
	case n == 0:
		return constant(ring.MultiplicativeUnity(), ring), nil
	case p.IsZero():
		return Zero[T](), nil
	case n == 1:
		return p.Clone(), nil
	case p.IsMonomial():
		d, c := p.first()
		terms := hash.NewMap[Degrees, T](1)
		//
		if c = algebra.Pow(ring, c, n); !ring.IsAdditiveUnity(c) {
			scaled, err := d.Scale(n)
			//
			if err != nil {
				return nil, err
			}
			//
			terms.Insert(scaled, c)
		}
		//
		return &Polynomial[T]{cloneSlots(p.slots), terms}, nil
	default:
		rec := newReconciler[T](1)
		index := rec.intern(&NestedSlot[T]{p})
		terms := hash.NewMap[Degrees, T](1)
		terms.Insert(unitDegrees(index, n), ring.MultiplicativeUnity())
		//
		return rec.build(terms), nil
	}
}

// distribute computes the product of two polynomials by multiplying every
// pair of terms, and summing the results.  This never introduces nested
// slots.
func distribute[T algebra.Coefficient[T]](lhs, rhs *Polynomial[T], ring algebra.Ring[T]) (*Polynomial[T], error) {
	var (
		rec   = newReconciler[T](uint(len(lhs.slots) + len(rhs.slots)))
		terms = hash.NewMap[Degrees, T](lhs.Len() * rhs.Len())
		// Translate both sides first, so slots of the left-hand side precede
		// those of the right-hand side.
		lterms = rec.translateAll(lhs)
		rterms = rec.translateAll(rhs)
	)
	//
	for _, l := range lterms {
		for _, r := range rterms {
			d, err := l.degrees.Add(r.degrees)
			//
			if err != nil {
				return nil, err
			}
			//
			accumulate(terms, d, ring.Multiply(l.coeff, r.coeff), ring)
		}
	}
	//
	return rec.build(terms), nil
}

// lazyProduct represents the product of two sums as a single term over two
// nested slots, without expanding it.  When both operands are structurally
// equal they share one slot, giving (p)^2.
func lazyProduct[T algebra.Coefficient[T]](lhs, rhs *Polynomial[T], ring algebra.Ring[T]) *Polynomial[T] {
	var (
		rec   = newReconciler[T](2)
		terms = hash.NewMap[Degrees, T](1)
		i     = rec.intern(&NestedSlot[T]{lhs})
		j     = rec.intern(&NestedSlot[T]{rhs})
	)
	//
	d := unitDegrees(i, 1)
	terms.Insert(d.With(j, d.Get(j)+1), ring.MultiplicativeUnity())
	//
	return rec.build(terms)
}

// constant constructs a polynomial holding a single value, which may be zero.
func constant[T algebra.Coefficient[T]](c T, monoid algebra.Monoid[T]) *Polynomial[T] {
	terms := hash.NewMap[Degrees, T](1)
	//
	if !monoid.IsAdditiveUnity(c) {
		terms.Insert(Degrees{}, c)
	}
	//
	return &Polynomial[T]{nil, terms}
}
