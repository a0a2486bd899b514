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

// Scalars views a ring as an algebra over itself, where lifting a scalar is
// simply the identity.  This is used for evaluating a polynomial at points
// drawn from its own coefficient ring.
type Scalars[T any] struct {
	Ring[T]
}

var _ Algebra[Integer, Integer] = Scalars[Integer]{}

// NewScalars constructs the algebra of scalars over a given ring.
func NewScalars[T any](ring Ring[T]) (Scalars[T], error) {
	if ring == nil {
		return Scalars[T]{}, InvalidArgument("ring required")
	}
	//
	return Scalars[T]{ring}, nil
}

// Lift implementation for the Algebra interface.
func (p Scalars[T]) Lift(scalar T) T {
	return scalar
}
