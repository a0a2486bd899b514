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
	"iter"
	"math/bits"

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

// Polynomial is a sparse multivariate polynomial with coefficients of type T.
// A polynomial consists of an ordered list of slots (i.e. its variables) and a
// mapping from exponent vectors over those slots to coefficients.  The order
// of slots carries no mathematical meaning, but determines how exponent
// vectors are read.  The following invariants are maintained:
//
// (1) No term has a coefficient which is the additive unity.
//
// (2) Every exponent vector has at most as many meaningful positions as there
// are slots.
//
// (3) No two slots are equal.
//
// Polynomials are never modified once constructed.  Every operation returns a
// fresh polynomial and leaves its operands untouched.
type Polynomial[T algebra.Coefficient[T]] struct {
	slots []Slot[T]
	terms *hash.Map[Degrees, T]
}

// Zero constructs the zero polynomial (i.e. which has no terms).
func Zero[T algebra.Coefficient[T]]() *Polynomial[T] {
	return &Polynomial[T]{nil, hash.NewMap[Degrees, T](0)}
}

// NewConstant constructs a polynomial consisting of a single constant term.
// If the coefficient is the additive unity, the zero polynomial is returned.
func NewConstant[T algebra.Coefficient[T]](monoid algebra.Monoid[T], coeff T) (*Polynomial[T], error) {
	return NewTerm(monoid, coeff, nil, []string{})
}

// NewVariable constructs a polynomial of the form c*x^n, for a given
// coefficient c, variable name x and degree n.
func NewVariable[T algebra.Coefficient[T]](monoid algebra.Monoid[T], coeff T, name string,
	degree int) (*Polynomial[T], error) {
	return NewTerm(monoid, coeff, []int{degree}, []string{name})
}

// NewTerm constructs a polynomial consisting of a single term, given as a
// coefficient together with an exponent vector and a parallel list of variable
// names.  Every exponent must be non-negative, and every non-zero exponent must
// be paired with a non-empty name.  Names paired with a zero exponent (or with
// no exponent at all) are retained as unused slots.  A name occurring more than
// once has its exponents combined.
func NewTerm[T algebra.Coefficient[T]](monoid algebra.Monoid[T], coeff T, degrees []int,
	names []string) (*Polynomial[T], error) {
	var (
		rec  = newReconciler[T](uint(len(names)))
		exps = make([]uint, len(names))
	)
	//
	if monoid == nil {
		return nil, algebra.InvalidArgument("monoid required")
	} else if names == nil {
		return nil, algebra.InvalidArgument("variable names required")
	}
	// Validate exponents
	for i, d := range degrees {
		if d < 0 {
			return nil, algebra.DomainError("negative degree %d for variable %d", d, i)
		} else if d > 0 && (i >= len(names) || names[i] == "") {
			return nil, algebra.DomainError("degree %d given for unnamed variable %d", d, i)
		}
	}
	// Allocate slots
	for i, name := range names {
		if name == "" {
			continue
		}
		//
		index := rec.intern(&NameSlot[T]{name})
		//
		if i < len(degrees) {
			sum, carry := bits.Add(exps[index], uint(degrees[i]), 0)
			//
			if carry != 0 {
				return nil, algebra.DomainError("exponent overflow for variable %s", name)
			}
			//
			exps[index] = sum
		}
	}
	//
	terms := hash.NewMap[Degrees, T](1)
	//
	if !monoid.IsAdditiveUnity(coeff) {
		terms.Insert(Degrees{exps[:len(rec.slots)]}, coeff)
	}
	//
	return rec.build(terms), nil
}

// Len returns the number of terms in this polynomial.
func (p *Polynomial[T]) Len() uint {
	if p.terms == nil {
		return 0
	}
	//
	return p.terms.Size()
}

// Slots returns (a copy of) the slots of this polynomial.
func (p *Polynomial[T]) Slots() []Slot[T] {
	return cloneSlots(p.slots)
}

// Terms returns an iterator over the terms of this polynomial.  The exponent
// vectors are to be read against Slots().
func (p *Polynomial[T]) Terms() iter.Seq2[Degrees, T] {
	if p.terms == nil {
		return func(func(Degrees, T) bool) {}
	}
	//
	return p.terms.All()
}

// Term returns the coefficient of the term with a given exponent vector (if
// any).
func (p *Polynomial[T]) Term(degrees Degrees) (T, bool) {
	var empty T
	//
	if p.terms == nil {
		return empty, false
	}
	//
	return p.terms.Get(degrees)
}

// IsZero checks whether this is the zero polynomial.
func (p *Polynomial[T]) IsZero() bool {
	return p.Len() == 0
}

// IsValue checks whether this polynomial is a constant value.  That is, it has
// either no terms, or exactly one term whose exponents are all zero.
func (p *Polynomial[T]) IsValue() bool {
	switch p.Len() {
	case 0:
		return true
	case 1:
		d, _ := p.first()
		return d.IsZero()
	default:
		return false
	}
}

// IsMonomial checks whether this polynomial has at most one term.
func (p *Polynomial[T]) IsMonomial() bool {
	return p.Len() <= 1
}

// IsVariable checks whether this polynomial is a single variable.  That is,
// it consists of exactly one term whose coefficient is the multiplicative
// unity, and whose exponent vector has exactly one non-zero entry which is 1
// and which refers to a name slot.
func (p *Polynomial[T]) IsVariable(ring algebra.Ring[T]) bool {
	_, err := p.GetAsVariable(ring)
	return err == nil
}

// GetAsValue returns the value of a constant polynomial, or fails if this
// polynomial is not a value.
func (p *Polynomial[T]) GetAsValue(monoid algebra.Monoid[T]) (T, error) {
	var empty T
	//
	if monoid == nil {
		return empty, algebra.InvalidArgument("monoid required")
	} else if !p.IsValue() {
		return empty, algebra.DomainError("%s is not a value", p.String())
	} else if p.IsZero() {
		return monoid.AdditiveUnity(), nil
	}
	//
	_, c := p.first()
	//
	return c, nil
}

// GetAsVariable returns the name of the variable this polynomial represents,
// or fails if this polynomial is not a variable.
func (p *Polynomial[T]) GetAsVariable(ring algebra.Ring[T]) (string, error) {
	if ring == nil {
		return "", algebra.InvalidArgument("ring required")
	} else if p.Len() != 1 {
		return "", algebra.DomainError("%s is not a variable", p.String())
	}
	//
	d, c := p.first()
	//
	if !ring.IsMultiplicativeUnity(c) || d.Total() != 1 {
		return "", algebra.DomainError("%s is not a variable", p.String())
	}
	//
	for i := range d.Len() {
		if d.Get(i) == 1 {
			if name, ok := p.slots[i].(*NameSlot[T]); ok {
				return name.name, nil
			}
		}
	}
	//
	return "", algebra.DomainError("%s is not a variable", p.String())
}

// GetVariables returns the distinct variable names used within this polynomial
// (including within nested slots), in the order they are first encountered.
// Slots which are not used by any term are ignored.
func (p *Polynomial[T]) GetVariables() []string {
	var (
		names = hash.NewSet[hash.StringKey](uint(len(p.slots)))
		vars  []string
	)
	//
	p.collectVariables(names)
	//
	for name := range names.Items() {
		vars = append(vars, string(name))
	}
	//
	return vars
}

func (p *Polynomial[T]) collectVariables(names *hash.Set[hash.StringKey]) {
	for i, s := range p.slots {
		if !p.uses(uint(i)) {
			continue
		}
		//
		switch s := s.(type) {
		case *NameSlot[T]:
			names.Insert(hash.StringKey(s.name))
		case *NestedSlot[T]:
			s.poly.collectVariables(names)
		}
	}
}

// Clone returns a deep copy of this polynomial.
func (p *Polynomial[T]) Clone() *Polynomial[T] {
	if p.terms == nil {
		return Zero[T]()
	}
	//
	return &Polynomial[T]{cloneSlots(p.slots), p.terms.Clone()}
}

// Equals checks whether two polynomials are structurally equal.  That is,
// they have the same number of terms and, for every term of this polynomial,
// the other polynomial has a term over equal slots with equal exponents and an
// equal coefficient.  This is insensitive to the order of slots, to unused
// slots and to trailing zeros in exponent vectors.  Nested slots are compared
// structurally without being expanded.
func (p *Polynomial[T]) Equals(other *Polynomial[T]) bool {
	if p == other {
		return true
	} else if p == nil || other == nil || p.Len() != other.Len() {
		return false
	}
	// Index the other polynomial's slots
	index := hash.NewMap[Slot[T], uint](uint(len(other.slots)))
	//
	for i, s := range other.slots {
		index.Insert(s, uint(i))
	}
	// Every term must be matched; do not stop early on success.
	for d, c := range p.Terms() {
		td, ok := translate(p.slots, d, index)
		//
		if !ok {
			return false
		} else if oc, ok := other.Term(td); !ok || !c.Equals(oc) {
			return false
		}
	}
	//
	return true
}

// Hash returns a hashcode which is consistent with Equals.  Specifically, it
// combines (order independently) the hash of each (slot, exponent) pair with
// non-zero exponent and the hash of the corresponding coefficient.
func (p *Polynomial[T]) Hash() uint64 {
	var result uint64
	//
	for d, c := range p.Terms() {
		var term uint64
		//
		for i := range d.Len() {
			if e := d.Get(i); e != 0 {
				term += hash.Combine(p.slots[i].Hash(), uint64(e))
			}
		}
		//
		result += hash.Combine(term, c.Hash())
	}
	//
	return result
}

// Determine whether a given slot is used by any term.
func (p *Polynomial[T]) uses(slot uint) bool {
	for d := range p.Terms() {
		if d.Get(slot) != 0 {
			return true
		}
	}
	//
	return false
}

// Return the first term of this polynomial, which must exist.
func (p *Polynomial[T]) first() (Degrees, T) {
	for d, c := range p.terms.All() {
		return d, c
	}
	//
	panic("empty polynomial")
}

// Translate an exponent vector over a given set of slots into the coordinate
// system defined by a given slot index.  This fails if a slot used with a
// non-zero exponent has no counterpart in the index.
func translate[T algebra.Coefficient[T]](slots []Slot[T], d Degrees, index *hash.Map[Slot[T], uint]) (Degrees, bool) {
	var exps []uint
	//
	for i := range d.Len() {
		e := d.Get(i)
		//
		if e == 0 {
			continue
		}
		//
		j, ok := index.Get(slots[i])
		//
		if !ok {
			return Degrees{}, false
		} else if j >= uint(len(exps)) {
			exps = append(exps, make([]uint, j+1-uint(len(exps)))...)
		}
		//
		exps[j] += e
	}
	//
	return Degrees{exps}, true
}

func cloneSlots[T algebra.Coefficient[T]](slots []Slot[T]) []Slot[T] {
	if slots == nil {
		return nil
	}
	//
	nslots := make([]Slot[T], len(slots))
	//
	for i, s := range slots {
		nslots[i] = s.Clone()
	}
	//
	return nslots
}
