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
)

// Replace substitutes variables of this polynomial with other polynomials.
// Variables are matched by name against name slots, including those within
// nested slots.  Variables not mentioned in the substitution map are retained
// as they are.  Products of sums arising from the substitution are kept lazy,
// exactly as for Multiply.
func (p *Polynomial[T]) Replace(subs map[string]*Polynomial[T], ring algebra.Ring[T]) (*Polynomial[T], error) {
	if ring == nil {
		return nil, algebra.InvalidArgument("ring required")
	} else if subs == nil {
		return nil, algebra.InvalidArgument("substitution map required")
	}
	//
	for name, sub := range subs {
		if sub == nil {
			return nil, algebra.InvalidArgument("missing substitution for %s", name)
		}
	}
	//
	return p.replace(subs, ring)
}

// ReplaceValues substitutes variables of this polynomial with values.  This is
// a convenience wrapper around Replace.
func (p *Polynomial[T]) ReplaceValues(values map[string]T, ring algebra.Ring[T]) (*Polynomial[T], error) {
	if ring == nil {
		return nil, algebra.InvalidArgument("ring required")
	} else if values == nil {
		return nil, algebra.InvalidArgument("substitution map required")
	}
	//
	subs := make(map[string]*Polynomial[T], len(values))
	//
	for name, value := range values {
		subs[name] = constant(value, ring)
	}
	//
	return p.replace(subs, ring)
}

func (p *Polynomial[T]) replace(subs map[string]*Polynomial[T], ring algebra.Ring[T]) (*Polynomial[T], error) {
	var result = Zero[T]()
	//
	for d, c := range p.Terms() {
		acc := constant(c, ring)
		//
		for i := range d.Len() {
			if e := d.Get(i); e != 0 {
				slot, err := replaceSlot(p.slots[i], e, subs, ring)
				//
				if err == nil {
					acc, err = acc.multiply(slot, ring)
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

// replaceSlot computes the replacement for a given slot raised to a given
// (non-zero) power.
func replaceSlot[T algebra.Coefficient[T]](slot Slot[T], exp uint, subs map[string]*Polynomial[T],
	ring algebra.Ring[T]) (*Polynomial[T], error) {
	switch s := slot.(type) {
	case *NameSlot[T]:
		if sub, ok := subs[s.name]; ok {
			return sub.power(exp, ring)
		}
		//
		return expandSlot[T](s, exp, ring)
	case *NestedSlot[T]:
		inner, err := s.poly.replace(subs, ring)
		//
		if err != nil {
			return nil, err
		}
		//
		return inner.power(exp, ring)
	default:
		panic("unknown slot")
	}
}

// Evaluate this polynomial within a given algebra, by lifting each coefficient
// into the algebra and substituting each variable with its given value.
// Nested slots are evaluated recursively.  Every variable used by the
// polynomial must be given a value.
func Evaluate[T algebra.Coefficient[T], R any](p *Polynomial[T], alg algebra.Algebra[T, R],
	values map[string]R) (R, error) {
	var empty R
	//
	if p == nil {
		return empty, algebra.InvalidArgument("polynomial required")
	} else if alg == nil {
		return empty, algebra.InvalidArgument("algebra required")
	} else if values == nil {
		return empty, algebra.InvalidArgument("substitution map required")
	}
	//
	return evaluate(p, alg, values)
}

func evaluate[T algebra.Coefficient[T], R any](p *Polynomial[T], alg algebra.Algebra[T, R],
	values map[string]R) (R, error) {
	var (
		empty R
		acc   = alg.AdditiveUnity()
	)
	//
	for d, c := range p.Terms() {
		term := alg.Lift(c)
		//
		for i := range d.Len() {
			e := d.Get(i)
			//
			if e == 0 {
				continue
			}
			//
			val, err := evaluateSlot(p.slots[i], alg, values)
			//
			if err != nil {
				return empty, err
			}
			//
			term = alg.Multiply(term, algebra.Pow[R](alg, val, e))
		}
		//
		acc = alg.Add(acc, term)
	}
	//
	return acc, nil
}

func evaluateSlot[T algebra.Coefficient[T], R any](slot Slot[T], alg algebra.Algebra[T, R],
	values map[string]R) (R, error) {
	var empty R
	//
	switch s := slot.(type) {
	case *NameSlot[T]:
		if val, ok := values[s.name]; ok {
			return val, nil
		}
		//
		return empty, algebra.DomainError("no value given for %s", s.name)
	case *NestedSlot[T]:
		return evaluate(s.poly, alg, values)
	default:
		panic("unknown slot")
	}
}
