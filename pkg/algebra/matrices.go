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
	"slices"
	"strings"
)

// Matrix is a square matrix of values stored in row-major order.  Matrices are
// constructed via SquareMatrices, which fixes their dimension.
type Matrix[T any] struct {
	n       uint
	entries []T
}

// Dim returns the number of rows (equivalently columns) of this matrix.
func (m Matrix[T]) Dim() uint {
	return m.n
}

// Get returns the entry at a given row and column.
func (m Matrix[T]) Get(row, col uint) T {
	return m.entries[row*m.n+col]
}

func (m Matrix[T]) String() string {
	var buf strings.Builder
	//
	buf.WriteString("[")
	//
	for i := range m.n {
		if i != 0 {
			buf.WriteString(";")
		}
		//
		for j := range m.n {
			if j != 0 {
				buf.WriteString(" ")
			}
			//
			buf.WriteString(fmt.Sprintf("%v", m.Get(i, j)))
		}
	}
	//
	buf.WriteString("]")
	//
	return buf.String()
}

// SquareMatrices is the ring of n x n matrices over a given ring of entries.
// This forms an algebra over the underlying ring, where scalars are lifted
// onto the diagonal.
type SquareMatrices[T any] struct {
	ring Ring[T]
	n    uint
}

var _ Algebra[Integer, Matrix[Integer]] = &SquareMatrices[Integer]{}

// NewSquareMatrices constructs the ring of n x n matrices over a given ring.
func NewSquareMatrices[T any](ring Ring[T], n uint) (*SquareMatrices[T], error) {
	if ring == nil {
		return nil, InvalidArgument("ring required")
	} else if n == 0 {
		return nil, DomainError("matrix dimension must be positive")
	}
	//
	return &SquareMatrices[T]{ring, n}, nil
}

// New constructs a matrix from its entries given in row-major order.
func (p *SquareMatrices[T]) New(entries ...T) (Matrix[T], error) {
	if uint(len(entries)) != p.n*p.n {
		return Matrix[T]{}, DomainError("expected %d entries, got %d", p.n*p.n, len(entries))
	}
	//
	return Matrix[T]{p.n, slices.Clone(entries)}, nil
}

// Equal checks whether two matrices are equal.  Since the underlying ring has
// no notion of equality, this is determined by checking the difference is
// zero.
func (p *SquareMatrices[T]) Equal(a, b Matrix[T]) bool {
	return p.IsAdditiveUnity(p.Add(a, p.AdditiveInverse(b)))
}

// Lift implementation for the Algebra interface.
func (p *SquareMatrices[T]) Lift(scalar T) Matrix[T] {
	return p.diagonal(scalar)
}

// AdditiveUnity implementation for the Ring interface.
func (p *SquareMatrices[T]) AdditiveUnity() Matrix[T] {
	return p.diagonal(p.ring.AdditiveUnity())
}

// MultiplicativeUnity implementation for the Ring interface.
func (p *SquareMatrices[T]) MultiplicativeUnity() Matrix[T] {
	return p.diagonal(p.ring.MultiplicativeUnity())
}

// Add implementation for the Ring interface.
func (p *SquareMatrices[T]) Add(a, b Matrix[T]) Matrix[T] {
	p.check(a, b)
	//
	res := p.alloc()
	//
	for i := range res.entries {
		res.entries[i] = p.ring.Add(a.entries[i], b.entries[i])
	}
	//
	return res
}

// AdditiveInverse implementation for the Ring interface.
func (p *SquareMatrices[T]) AdditiveInverse(a Matrix[T]) Matrix[T] {
	p.check(a)
	//
	res := p.alloc()
	//
	for i := range res.entries {
		res.entries[i] = p.ring.AdditiveInverse(a.entries[i])
	}
	//
	return res
}

// Multiply implementation for the Ring interface.
func (p *SquareMatrices[T]) Multiply(a, b Matrix[T]) Matrix[T] {
	p.check(a, b)
	//
	res := p.alloc()
	//
	for i := range p.n {
		for j := range p.n {
			acc := p.ring.AdditiveUnity()
			//
			for k := range p.n {
				acc = p.ring.Add(acc, p.ring.Multiply(a.Get(i, k), b.Get(k, j)))
			}
			//
			res.entries[i*p.n+j] = acc
		}
	}
	//
	return res
}

// AddRepeated implementation for the Ring interface.
func (p *SquareMatrices[T]) AddRepeated(a Matrix[T], n uint) Matrix[T] {
	p.check(a)
	//
	res := p.alloc()
	//
	for i := range res.entries {
		res.entries[i] = p.ring.AddRepeated(a.entries[i], n)
	}
	//
	return res
}

// IsAdditiveUnity implementation for the Ring interface.
func (p *SquareMatrices[T]) IsAdditiveUnity(a Matrix[T]) bool {
	p.check(a)
	//
	for _, e := range a.entries {
		if !p.ring.IsAdditiveUnity(e) {
			return false
		}
	}
	//
	return true
}

// IsMultiplicativeUnity implementation for the Ring interface.
func (p *SquareMatrices[T]) IsMultiplicativeUnity(a Matrix[T]) bool {
	p.check(a)
	//
	for i := range p.n {
		for j := range p.n {
			e := a.Get(i, j)
			//
			if i == j && !p.ring.IsMultiplicativeUnity(e) {
				return false
			} else if i != j && !p.ring.IsAdditiveUnity(e) {
				return false
			}
		}
	}
	//
	return true
}

func (p *SquareMatrices[T]) diagonal(val T) Matrix[T] {
	res := p.alloc()
	//
	for i := range res.entries {
		if i%int(p.n+1) == 0 {
			res.entries[i] = val
		} else {
			res.entries[i] = p.ring.AdditiveUnity()
		}
	}
	//
	return res
}

func (p *SquareMatrices[T]) alloc() Matrix[T] {
	return Matrix[T]{p.n, make([]T, p.n*p.n)}
}

// Sanity check that matrices have the dimension of this ring.  A mismatch is a
// programming error.
func (p *SquareMatrices[T]) check(matrices ...Matrix[T]) {
	for _, m := range matrices {
		if m.n != p.n || len(m.entries) != int(p.n*p.n) {
			panic(fmt.Sprintf("expected %dx%d matrix, got %dx%d", p.n, p.n, m.n, m.n))
		}
	}
}
