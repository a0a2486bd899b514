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

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/collection/hash"
)

// Slot identifies one axis of the exponent space of a polynomial.  A slot is
// either a NameSlot (i.e. a symbolic variable) or a NestedSlot (i.e. an
// unexpanded polynomial used as a single quantity).  No other implementations
// are possible.  Slots are immutable.
type Slot[T algebra.Coefficient[T]] interface {
	fmt.Stringer
	// Equals checks whether two slots are the same.  That is, both are names
	// with the same name, or both are nested polynomials which are
	// structurally equal.
	Equals(Slot[T]) bool
	// Hash returns a hashcode consistent with Equals.
	Hash() uint64
	// IsName checks whether this slot is a symbolic name.
	IsName() bool
	// IsPolynomial checks whether this slot is an embedded polynomial.
	IsPolynomial() bool
	// Name returns the name of this slot, or fails if this is not a name slot.
	Name() (string, error)
	// Polynomial returns (a copy of) the embedded polynomial of this slot, or
	// fails if this is not a nested slot.
	Polynomial() (*Polynomial[T], error)
	// Clone this slot.  Embedded polynomials are deep copied.
	Clone() Slot[T]
	// seal prevents implementations outside this package.
	seal()
}

var _ hash.Hasher[Slot[algebra.Integer]] = (*NameSlot[algebra.Integer])(nil)

// Tag mixed into the hash of nested slots to separate them from name slots.
const nestedTag uint64 = 0x9e3779b97f4a7c15

// ============================================================================
// NameSlot
// ============================================================================

// NameSlot is a slot identified by a (non-empty) symbolic name.
type NameSlot[T algebra.Coefficient[T]] struct {
	name string
}

// NewNameSlot constructs a slot for a given variable name.
func NewNameSlot[T algebra.Coefficient[T]](name string) (Slot[T], error) {
	if name == "" {
		return nil, algebra.DomainError("empty variable name")
	}
	//
	return &NameSlot[T]{name}, nil
}

// IsName implementation for the Slot interface.
func (p *NameSlot[T]) IsName() bool { return true }

// IsPolynomial implementation for the Slot interface.
func (p *NameSlot[T]) IsPolynomial() bool { return false }

// Name implementation for the Slot interface.
func (p *NameSlot[T]) Name() (string, error) {
	return p.name, nil
}

// Polynomial implementation for the Slot interface.
func (p *NameSlot[T]) Polynomial() (*Polynomial[T], error) {
	return nil, algebra.InvalidArgument("slot %s is not a polynomial", p.name)
}

// Clone implementation for the Slot interface.  Since names are immutable,
// this simply returns the slot itself.
func (p *NameSlot[T]) Clone() Slot[T] {
	return p
}

// Equals implementation for the Hasher interface.
func (p *NameSlot[T]) Equals(other Slot[T]) bool {
	if o, ok := other.(*NameSlot[T]); ok {
		return p.name == o.name
	}
	//
	return false
}

// Hash implementation for the Hasher interface.
func (p *NameSlot[T]) Hash() uint64 {
	return hash.String(p.name)
}

func (p *NameSlot[T]) String() string {
	return p.name
}

func (p *NameSlot[T]) seal() {}

// ============================================================================
// NestedSlot
// ============================================================================

// NestedSlot is a slot which holds an unexpanded polynomial, treated as a
// single quantity.  For example, (x+1)^3 is a term over one nested slot
// holding x+1.  A nested slot exclusively owns its embedded polynomial.
type NestedSlot[T algebra.Coefficient[T]] struct {
	poly *Polynomial[T]
}

// NewNestedSlot constructs a slot which embeds (a copy of) a given polynomial.
func NewNestedSlot[T algebra.Coefficient[T]](poly *Polynomial[T]) (Slot[T], error) {
	if poly == nil {
		return nil, algebra.InvalidArgument("polynomial required")
	}
	//
	return &NestedSlot[T]{poly.Clone()}, nil
}

// IsName implementation for the Slot interface.
func (p *NestedSlot[T]) IsName() bool { return false }

// IsPolynomial implementation for the Slot interface.
func (p *NestedSlot[T]) IsPolynomial() bool { return true }

// Name implementation for the Slot interface.
func (p *NestedSlot[T]) Name() (string, error) {
	return "", algebra.InvalidArgument("slot %s is not a name", p.String())
}

// Polynomial implementation for the Slot interface.
func (p *NestedSlot[T]) Polynomial() (*Polynomial[T], error) {
	return p.poly.Clone(), nil
}

// Clone implementation for the Slot interface.
func (p *NestedSlot[T]) Clone() Slot[T] {
	return &NestedSlot[T]{p.poly.Clone()}
}

// Equals implementation for the Hasher interface.  Nested slots are equal when
// their polynomials are structurally equal.
func (p *NestedSlot[T]) Equals(other Slot[T]) bool {
	if o, ok := other.(*NestedSlot[T]); ok {
		return p.poly.Equals(o.poly)
	}
	//
	return false
}

// Hash implementation for the Hasher interface.
func (p *NestedSlot[T]) Hash() uint64 {
	return nestedTag ^ p.poly.Hash()
}

func (p *NestedSlot[T]) String() string {
	return "(" + p.poly.String() + ")"
}

func (p *NestedSlot[T]) seal() {}
