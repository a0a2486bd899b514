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
package bls12_377

import (
	"testing"

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/algebra/field"
	"github.com/consensys/go-symalg/pkg/util/assert"
)

func Test_Element_01(t *testing.T) {
	var (
		two   = New(2)
		three = New(3)
	)
	//
	assert.Equals(t, New(5), Field.Add(two, three))
	assert.Equals(t, New(6), Field.Multiply(two, three))
	assert.Equals(t, New(1), Field.Add(three, Field.AdditiveInverse(two)))
	assert.Equals(t, New(12), Field.AddRepeated(three, 4))
}

func Test_Element_02(t *testing.T) {
	for i := uint64(1); i < 100; i++ {
		inv, err := Field.MultiplicativeInverse(New(i))
		assert.NoError(t, err)
		assert.True(t, Field.IsMultiplicativeUnity(Field.Multiply(New(i), inv)))
	}
	//
	_, err := Field.MultiplicativeInverse(Field.AdditiveUnity())
	assert.ErrorIs(t, err, algebra.ErrDomain)
}

func Test_Element_03(t *testing.T) {
	// p - 1 wraps around to -1
	minusOne, err := field.Parse[Element]("-1")
	assert.NoError(t, err)
	assert.True(t, Field.IsAdditiveUnity(Field.Add(minusOne, New(1))))
	//
	_, err = field.Parse[Element]("xyz")
	assert.ErrorIs(t, err, algebra.ErrDomain)
}

func Test_Element_04(t *testing.T) {
	a, _ := field.Parse[Element]("123456789")
	b := Field.Add(New(123456000), New(789))
	assert.Equals(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())
}
