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

// GetExpanded returns the normal form of this polynomial.  That is, an
// equivalent polynomial where every nested slot has been recursively expanded
// and all products distributed, such that only name slots remain.  This fails
// with a domain error if some exponent of the normal form cannot be
// represented.
func (p *Polynomial[T]) GetExpanded(ring algebra.Ring[T]) (*Polynomial[T], error) {
	if ring == nil {
		return nil, algebra.InvalidArgument("ring required")
	}
	//
	return p.expand(ring)
}

// IsNormal checks whether this polynomial is in normal form.  That is, no term
// uses a nested slot.
func (p *Polynomial[T]) IsNormal() bool {
	for i, s := range p.slots {
		if s.IsPolynomial() && p.uses(uint(i)) {
			return false
		}
	}
	//
	return true
}

// Derivative returns the formal partial derivative of this polynomial with
// respect to a given variable.  This is computed over the normal form.
func (p *Polynomial[T]) Derivative(name string, ring algebra.Ring[T]) (*Polynomial[T], error) {
	if ring == nil {
		return nil, algebra.InvalidArgument("ring required")
	} else if name == "" {
		return nil, algebra.DomainError("empty variable name")
	}
	//
	normal, err := p.expand(ring)
	//
	if err != nil {
		return nil, err
	}
	//
	index, ok := normal.indexOf(name)
	//
	if !ok {
		return Zero[T](), nil
	}
	//
	terms := hash.NewMap[Degrees, T](normal.Len())
	//
	for d, c := range normal.Terms() {
		if k := d.Get(index); k != 0 {
			accumulate(terms, d.With(index, k-1), ring.AddRepeated(c, k), ring)
		}
	}
	//
	return &Polynomial[T]{cloneSlots(normal.slots), terms}, nil
}

// Degree returns the highest exponent of a given variable within the normal
// form of this polynomial.  Variables which do not occur have degree 0.
func (p *Polynomial[T]) Degree(name string, ring algebra.Ring[T]) (uint, error) {
	var degree uint
	//
	if ring == nil {
		return 0, algebra.InvalidArgument("ring required")
	}
	//
	normal, err := p.expand(ring)
	//
	if err != nil {
		return 0, err
	}
	//
	if index, ok := normal.indexOf(name); ok {
		for d := range normal.Terms() {
			degree = max(degree, d.Get(index))
		}
	}
	//
	return degree, nil
}

func (p *Polynomial[T]) expand(ring algebra.Ring[T]) (*Polynomial[T], error) {
	var result = Zero[T]()
	//
	for d, c := range p.Terms() {
		acc := constant(c, ring)
		//
		for i := range d.Len() {
			if e := d.Get(i); e != 0 {
				slot, err := expandSlot(p.slots[i], e, ring)
				//
				if err == nil {
					acc, err = distribute(acc, slot, ring)
				}
				//
				if err != nil {
					return nil, err
				}
			}
		}
		//
		result = result.add(acc, ring)
	}
	//
	return result, nil
}

// expandSlot computes the normal form of a given slot raised to a given
// (non-zero) power.
func expandSlot[T algebra.Coefficient[T]](slot Slot[T], exp uint, ring algebra.Ring[T]) (*Polynomial[T], error) {
	switch s := slot.(type) {
	case *NameSlot[T]:
		terms := hash.NewMap[Degrees, T](1)
		terms.Insert(NewDegrees(exp), ring.MultiplicativeUnity())
		//
		return &Polynomial[T]{[]Slot[T]{s}, terms}, nil
	case *NestedSlot[T]:
		base, err := s.poly.expand(ring)
		//
		if err != nil {
			return nil, err
		}
		//
		return expandPower(base, exp, ring)
	default:
		panic("unknown slot")
	}
}

// expandPower raises a polynomial in normal form to a given power, by
// repeated squaring and distribution.
func expandPower[T algebra.Coefficient[T]](base *Polynomial[T], exp uint, ring algebra.Ring[T]) (*Polynomial[T],
	error) {
	switch {
	case exp == 0:
		return constant(ring.MultiplicativeUnity(), ring), nil
	case exp == 1:
		return base, nil
	}
	//
	half, err := expandPower(base, exp/2, ring)
	//
	if err == nil {
		half, err = distribute(half, half, ring)
	}
	//
	if err != nil {
		return nil, err
	} else if exp%2 == 1 {
		return distribute(half, base, ring)
	}
	//
	return half, nil
}

// Determine the index of the name slot with a given name, if it is used by
// some term.
func (p *Polynomial[T]) indexOf(name string) (uint, bool) {
	for i, s := range p.slots {
		if n, ok := s.(*NameSlot[T]); ok && n.name == name && p.uses(uint(i)) {
			return uint(i), true
		}
	}
	//
	return 0, false
}
