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
	"math"
	"testing"

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/assert"
)

type Int = algebra.Integer

type Poly = *Polynomial[Int]

var ints = algebra.Integers{}

// ============================================================================
// Construction
// ============================================================================

func Test_PolyConstruct_01(t *testing.T) {
	p, err := NewConstant[Int](ints, algebra.NewInteger(0))
	assert.NoError(t, err)
	assert.True(t, p.IsZero())
	assert.True(t, p.IsValue())
	assert.Equal(t, "0", p.String())
	assert.True(t, p.Equals(Zero[Int]()))
}

func Test_PolyConstruct_02(t *testing.T) {
	p, err := NewVariable[Int](ints, algebra.NewInteger(1), "x", 2)
	assert.NoError(t, err)
	assert.Equal(t, "1*x^2", p.String())
	//
	p, err = NewTerm[Int](ints, algebra.NewInteger(2), []int{1, 3}, []string{"x", "y"})
	assert.NoError(t, err)
	assert.Equal(t, "2*x*y^3", p.String())
	//
	p, err = NewConstant[Int](ints, algebra.NewInteger(-3))
	assert.NoError(t, err)
	assert.Equal(t, "-3", p.String())
}

func Test_PolyConstruct_03(t *testing.T) {
	var one = algebra.NewInteger(1)
	//
	_, err := NewTerm[Int](ints, one, []int{-1}, []string{"x"})
	assert.ErrorIs(t, err, algebra.ErrDomain)
	// More non-zero degrees than variables
	_, err = NewTerm[Int](ints, one, []int{1, 1}, []string{"x"})
	assert.ErrorIs(t, err, algebra.ErrDomain)
	// Unnamed variable with non-zero degree
	_, err = NewTerm[Int](ints, one, []int{1, 1}, []string{"x", ""})
	assert.ErrorIs(t, err, algebra.ErrDomain)
	_, err = NewVariable[Int](ints, one, "", 1)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	// Absent collaborators
	_, err = NewTerm[Int](nil, one, []int{1}, []string{"x"})
	assert.ErrorIs(t, err, algebra.ErrInvalidArgument)
	_, err = NewTerm[Int](ints, one, []int{1}, nil)
	assert.ErrorIs(t, err, algebra.ErrInvalidArgument)
}

func Test_PolyConstruct_04(t *testing.T) {
	var one = algebra.NewInteger(1)
	// Unused trailing degrees and unnamed slots with zero degree are fine
	p, err := NewTerm[Int](ints, one, []int{1, 0, 0}, []string{"x", ""})
	assert.NoError(t, err)
	assert.Equal(t, "1*x", p.String())
	// Repeated names combine
	p, err = NewTerm[Int](ints, one, []int{1, 2}, []string{"x", "x"})
	assert.NoError(t, err)
	assert.Equal(t, "1*x^3", p.String())
}

func Test_PolyConstruct_05(t *testing.T) {
	var one = algebra.NewInteger(1)
	// Combining repeated names must not wrap around
	p, err := NewTerm[Int](ints, one, []int{math.MaxInt, math.MaxInt}, []string{"x", "x"})
	assert.NoError(t, err)
	degree, err := p.Degree("x", ints)
	assert.NoError(t, err)
	assert.Equal(t, uint(math.MaxUint-1), degree)
	//
	_, err = NewTerm[Int](ints, one, []int{math.MaxInt, math.MaxInt, math.MaxInt}, []string{"x", "x", "x"})
	assert.ErrorIs(t, err, algebra.ErrDomain)
}

// ============================================================================
// Equality & Hashing
// ============================================================================

func Test_PolyEquals_01(t *testing.T) {
	var one = algebra.NewInteger(1)
	// Zero padding is insignificant
	p, _ := NewTerm[Int](ints, one, []int{2, 0}, []string{"x", "y"})
	q, _ := NewTerm[Int](ints, one, []int{2}, []string{"x"})
	checkEquals(t, p, q)
}

func Test_PolyEquals_02(t *testing.T) {
	var three = algebra.NewInteger(3)
	// Slot order is insignificant
	p, _ := NewTerm[Int](ints, three, []int{1, 2}, []string{"x", "y"})
	q, _ := NewTerm[Int](ints, three, []int{2, 1}, []string{"y", "x"})
	checkEquals(t, p, q)
	checkEquals(t, parse(t, "(+ x (* 2 y) 1)"), parse(t, "(+ 1 (* 2 y) x)"))
}

func Test_PolyEquals_03(t *testing.T) {
	// Equality must examine every term, not just the first.
	checkNotEquals(t, parse(t, "(+ x y)"), parse(t, "(+ x (* 2 y))"))
	checkNotEquals(t, parse(t, "(+ x y)"), parse(t, "(+ x z)"))
	checkNotEquals(t, parse(t, "(+ x y 1)"), parse(t, "(+ x y 2)"))
	checkNotEquals(t, parse(t, "(+ x y)"), parse(t, "x"))
	checkNotEquals(t, parse(t, "x"), parse(t, "(+ x y)"))
}

func Test_PolyEquals_04(t *testing.T) {
	// Nested slots are compared structurally, without expansion.
	checkEquals(t, parse(t, "(^ (+ x 1) 2)"), parse(t, "(^ (+ 1 x) 2)"))
	checkEquals(t, parse(t, "(* (+ x 1) (+ x 1))"), parse(t, "(^ (+ x 1) 2)"))
	checkNotEquals(t, parse(t, "(^ (+ x 1) 2)"), parse(t, "(+ (^ x 2) (* 2 x) 1)"))
	checkNotEquals(t, parse(t, "(^ (+ x 1) 2)"), parse(t, "(^ (+ x 1) 3)"))
}

func Test_PolyEquals_05(t *testing.T) {
	d1 := NewDegrees(1, 0, 0)
	d2 := NewDegrees(1)
	assert.True(t, d1.Equals(d2))
	assert.Equal(t, d1.Hash(), d2.Hash())
	assert.False(t, d1.Equals(NewDegrees(0, 1)))
	assert.True(t, NewDegrees().Equals(NewDegrees(0, 0)))
}

// ============================================================================
// Arithmetic
// ============================================================================

func Test_PolyAdd_01(t *testing.T) {
	for a := int64(-5); a <= 5; a++ {
		for b := int64(-5); b <= 5; b++ {
			p, _ := NewConstant[Int](ints, algebra.NewInteger(a))
			q, _ := NewConstant[Int](ints, algebra.NewInteger(b))
			r, _ := NewConstant[Int](ints, ints.Add(algebra.NewInteger(a), algebra.NewInteger(b)))
			//
			checkEquals(t, add(t, p, q), r)
		}
	}
}

func Test_PolyAdd_02(t *testing.T) {
	x2, _ := NewVariable[Int](ints, algebra.NewInteger(1), "x", 2)
	m1, _ := NewConstant[Int](ints, algebra.NewInteger(-1))
	two, _ := NewConstant[Int](ints, algebra.NewInteger(2))
	p := add(t, x2, m1)
	//
	r := add(t, p, two)
	assert.Equal(t, "1*x^2+1", r.String())
	checkEquals(t, r, parse(t, "(+ (^ x 2) 1)"))
}

func Test_PolyAdd_03(t *testing.T) {
	_, err := parse(t, "x").Add(nil, ints)
	assert.ErrorIs(t, err, algebra.ErrInvalidArgument)
	_, err = parse(t, "x").Add(parse(t, "y"), nil)
	assert.ErrorIs(t, err, algebra.ErrInvalidArgument)
}

func Test_PolySubtract_01(t *testing.T) {
	r, err := parse(t, "(+ x y)").Subtract(parse(t, "x"), ints)
	assert.NoError(t, err)
	assert.Equal(t, "1*y", r.String())
	checkEquals(t, r, parse(t, "y"))
	//
	r, err = parse(t, "(+ x 3)").Subtract(parse(t, "(+ (* 2 x) 1)"), ints)
	assert.NoError(t, err)
	checkEquals(t, r, parse(t, "(- 2 x)"))
}

func Test_PolyMultiply_01(t *testing.T) {
	x, _ := NewVariable[Int](ints, algebra.NewInteger(2), "x", 1)
	y, _ := NewVariable[Int](ints, algebra.NewInteger(3), "y", 1)
	r := mul(t, x, y)
	//
	assert.Equal(t, "6*x*y", r.String())
	assert.Equal(t, uint(1), r.Len())
	assert.Equal(t, 2, len(r.Slots()))
}

func Test_PolyMultiply_02(t *testing.T) {
	// Values scale without reconciliation
	p := parse(t, "(+ x y)")
	r := mul(t, parse(t, "3"), p)
	assert.Equal(t, "3*x+3*y", r.String())
	assert.Equal(t, len(p.slots), len(r.slots))
	checkEquals(t, mul(t, p, parse(t, "3")), r)
	// Zero annihilates
	assert.True(t, mul(t, parse(t, "0"), p).IsZero())
	assert.True(t, mul(t, p, Zero[Int]()).IsZero())
}

func Test_PolyMultiply_03(t *testing.T) {
	// Monomials distribute over sums
	r := mul(t, parse(t, "(* 2 x)"), parse(t, "(+ x 1)"))
	assert.Equal(t, "2*x^2+2*x", r.String())
	assert.True(t, r.IsNormal())
}

func Test_PolyMultiply_04(t *testing.T) {
	// Products of sums are lazy
	r := mul(t, parse(t, "(+ x 1)"), parse(t, "(+ y 1)"))
	assert.True(t, r.IsMonomial())
	assert.False(t, r.IsValue())
	assert.False(t, r.IsNormal())
	assert.Equal(t, "1*(1*x+1)*(1*y+1)", r.String())
	//
	e := expand(t, r)
	assert.Equal(t, "1*x*y+1*x+1*y+1", e.String())
	assert.True(t, e.IsNormal())
}

func Test_PolyPower_01(t *testing.T) {
	x, _ := NewVariable[Int](ints, algebra.NewInteger(1), "x", 1)
	r, err := x.Power(2, ints)
	assert.NoError(t, err)
	assert.Equal(t, "1*x^2", r.String())
	//
	r, err = parse(t, "(* 2 x (^ y 2))").Power(3, ints)
	assert.NoError(t, err)
	checkEquals(t, r, parse(t, "(* 8 (^ x 3) (^ y 6))"))
}

func Test_PolyPower_02(t *testing.T) {
	r, err := parse(t, "(+ x 1)").Power(2, ints)
	assert.NoError(t, err)
	assert.Equal(t, "1*(1*x+1)^2", r.String())
	//
	expected := parse(t, "(+ (^ x 2) (* 2 x) 1)")
	checkNotEquals(t, r, expected)
	//
	e := expand(t, r)
	checkEquals(t, e, expected)
	assert.Equal(t, "1*x^2+2*x+1", e.String())
}

func Test_PolyPower_03(t *testing.T) {
	p := parse(t, "(+ x 1)")
	// Trivial powers
	r, _ := p.Power(0, ints)
	checkEquals(t, r, parse(t, "1"))
	r, _ = p.Power(1, ints)
	checkEquals(t, r, p)
	r, _ = Zero[Int]().Power(3, ints)
	assert.True(t, r.IsZero())
	//
	_, err := p.Power(2, nil)
	assert.ErrorIs(t, err, algebra.ErrInvalidArgument)
}

func Test_PolyPower_04(t *testing.T) {
	p := parse(t, "(^ x 4294967295)")
	// x^(2^64-2^33+1) is still representable
	q, err := p.Power(4294967295, ints)
	assert.NoError(t, err)
	assert.Equal(t, "1*x^18446744065119617025", q.String())
	// Exponents which cannot be represented are rejected
	_, err = q.Power(2, ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	_, err = q.Multiply(q, ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	_, err = q.Multiply(parse(t, "(+ x 1)"), ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	// Operands are unchanged
	assert.Equal(t, "1*x^18446744065119617025", q.String())
}

func Test_PolyPower_05(t *testing.T) {
	var one = algebra.NewInteger(1)
	// Lazy powers only overflow once expanded
	x, err := NewVariable[Int](ints, one, "x", math.MaxInt)
	assert.NoError(t, err)
	p, err := add(t, x, parse(t, "1")).Power(3, ints)
	assert.NoError(t, err)
	_, err = p.GetExpanded(ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	_, err = p.Derivative("x", ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	_, err = p.Degree("x", ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	// Substitution which overflows
	_, err = parse(t, "(^ y 2)").Replace(map[string]Poly{"y": x}, ints)
	assert.NoError(t, err)
	_, err = parse(t, "(^ y 3)").Replace(map[string]Poly{"y": x}, ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
}

func Test_PolyPower_06(t *testing.T) {
	parser, err := NewParser[Int](ints, algebra.ParseInteger)
	assert.NoError(t, err)
	//
	for _, s := range []string{
		"(^ (^ (^ x 4294967295) 4294967295) 2)",
		"(* (^ (^ x 4294967295) 4294967295) (^ (^ x 4294967295) 4294967295))",
	} {
		if _, errs := parser.ParseString(s); len(errs) != 1 {
			t.Errorf("expected exponent overflow parsing \"%s\"", s)
		}
	}
}

func Test_PolyDegrees_01(t *testing.T) {
	d, err := NewDegrees(1, 2).Add(NewDegrees(0, 1, 3))
	assert.NoError(t, err)
	assert.True(t, d.Equals(NewDegrees(1, 3, 3)))
	//
	d, err = NewDegrees(1, 2).Scale(3)
	assert.NoError(t, err)
	assert.True(t, d.Equals(NewDegrees(3, 6)))
}

func Test_PolyDegrees_02(t *testing.T) {
	_, err := NewDegrees(1, math.MaxUint).Add(NewDegrees(0, 1))
	assert.ErrorIs(t, err, algebra.ErrDomain)
	_, err = NewDegrees(math.MaxUint/2 + 1).Scale(2)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	// Zero exponents never overflow
	d, err := NewDegrees(0, 1).Scale(math.MaxUint)
	assert.NoError(t, err)
	assert.True(t, d.Equals(NewDegrees(0, math.MaxUint)))
}

func Test_PolySymmetric_01(t *testing.T) {
	for _, s := range []string{"0", "7", "x", "(+ x (* 2 y) 3)", "(^ (+ x 1) 3)", "(* (+ x 1) (+ y 2) z)"} {
		p := parse(t, s)
		n, err := p.GetSymmetric(ints)
		assert.NoError(t, err)
		//
		assert.True(t, add(t, p, n).IsZero(), "p + -p not zero for %s", s)
	}
}

// ============================================================================
// Properties
// ============================================================================

var samples = []string{
	"0", "1", "x", "(+ x 1)", "(- x y)", "(* 2 x y)", "(^ (+ x 1) 2)", "(* (+ x y) (- x y))",
	"(+ (^ (+ x 1) 2) (* 3 (+ y 1) (+ z 2)))", "(* (^ (+ x z) 2) (+ y 1))",
}

func Test_PolyProperties_01(t *testing.T) {
	// Commutativity
	for _, s1 := range samples {
		for _, s2 := range samples {
			p, q := parse(t, s1), parse(t, s2)
			//
			checkEquals(t, add(t, p, q), add(t, q, p))
			checkEquals(t, expand(t, mul(t, p, q)), expand(t, mul(t, q, p)))
		}
	}
}

func Test_PolyProperties_02(t *testing.T) {
	// Idempotence of expansion
	for _, s := range samples {
		e := expand(t, parse(t, s))
		checkEquals(t, expand(t, e), e)
		assert.True(t, e.IsNormal())
	}
}

func Test_PolyProperties_03(t *testing.T) {
	// No stored zero coefficients
	for _, s1 := range samples {
		for _, s2 := range samples {
			p, q := parse(t, s1), parse(t, s2)
			s, _ := p.Subtract(q, ints)
			//
			checkNoZeros(t, add(t, p, q))
			checkNoZeros(t, s)
			checkNoZeros(t, mul(t, p, q))
			checkNoZeros(t, expand(t, mul(t, p, q)))
		}
	}
}

func Test_PolyProperties_04(t *testing.T) {
	// Distributivity, checked over the normal form
	for _, s1 := range samples[:6] {
		for _, s2 := range samples[:6] {
			for _, s3 := range samples[:6] {
				p, q, r := parse(t, s1), parse(t, s2), parse(t, s3)
				lhs := mul(t, p, add(t, q, r))
				rhs := add(t, mul(t, p, q), mul(t, p, r))
				checkEquals(t, expand(t, lhs), expand(t, rhs))
			}
		}
	}
}

func Test_PolyClone_01(t *testing.T) {
	for _, s := range samples {
		p := parse(t, s)
		c := p.Clone()
		checkEquals(t, p, c)
		// Slots holding polynomials are never shared
		for i := range p.slots {
			if p.slots[i].IsPolynomial() {
				assert.True(t, p.slots[i] != c.slots[i])
			}
		}
		// Updating the clone's term map does not affect the original
		c.terms.Insert(NewDegrees(7), algebra.NewInteger(7))
		assert.False(t, p.Equals(c))
	}
}

// ============================================================================
// Introspection
// ============================================================================

func Test_PolyIntrospect_01(t *testing.T) {
	assert.True(t, parse(t, "x").IsVariable(ints))
	assert.False(t, parse(t, "(* 2 x)").IsVariable(ints))
	assert.False(t, parse(t, "(^ x 2)").IsVariable(ints))
	assert.False(t, parse(t, "(* x y)").IsVariable(ints))
	assert.False(t, parse(t, "(^ (+ x 1) 2)").IsVariable(ints))
	assert.False(t, parse(t, "1").IsVariable(ints))
	//
	name, err := parse(t, "x").GetAsVariable(ints)
	assert.NoError(t, err)
	assert.Equal(t, "x", name)
	//
	_, err = parse(t, "2").GetAsVariable(ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
}

func Test_PolyIntrospect_02(t *testing.T) {
	v, err := parse(t, "(+ 2 3)").GetAsValue(ints)
	assert.NoError(t, err)
	assert.Equals(t, algebra.NewInteger(5), v)
	//
	v, err = parse(t, "(- x x)").GetAsValue(ints)
	assert.NoError(t, err)
	assert.Equals(t, algebra.NewInteger(0), v)
	//
	_, err = parse(t, "x").GetAsValue(ints)
	assert.ErrorIs(t, err, algebra.ErrDomain)
	_, err = parse(t, "x").GetAsValue(nil)
	assert.ErrorIs(t, err, algebra.ErrInvalidArgument)
}

func Test_PolyIntrospect_03(t *testing.T) {
	vars := parse(t, "(+ (* x y) (^ (+ z x) 2))").GetVariables()
	assert.Equal(t, []string{"x", "y", "z"}, vars)
	// Unused slots are not reported
	r, _ := parse(t, "(+ x y)").Subtract(parse(t, "x"), ints)
	assert.Equal(t, []string{"y"}, r.GetVariables())
	assert.Equal(t, 0, len(parse(t, "3").GetVariables()))
}

func Test_PolyLisp_01(t *testing.T) {
	assert.Equal(t, "0", Zero[Int]().Lisp().String())
	assert.Equal(t, "(+ (* 2 (^ x 2) y) 1)", parse(t, "(+ (* 2 (^ x 2) y) 1)").Lisp().String())
	//
	for _, s := range samples {
		p := parse(t, s)
		checkEquals(t, parse(t, p.Lisp().String()), p)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func parse(t *testing.T, text string) Poly {
	t.Helper()
	//
	parser, err := NewParser[Int](ints, algebra.ParseInteger)
	assert.NoError(t, err)
	//
	p, errs := parser.ParseString(text)
	//
	if len(errs) > 0 {
		t.Fatalf("error parsing \"%s\": %s", text, errs[0].Error())
	}
	//
	return p
}

func add(t *testing.T, p, q Poly) Poly {
	t.Helper()
	//
	r, err := p.Add(q, ints)
	assert.NoError(t, err)
	//
	return r
}

func mul(t *testing.T, p, q Poly) Poly {
	t.Helper()
	//
	r, err := p.Multiply(q, ints)
	assert.NoError(t, err)
	//
	return r
}

func expand(t *testing.T, p Poly) Poly {
	t.Helper()
	//
	r, err := p.GetExpanded(ints)
	assert.NoError(t, err)
	//
	return r
}

func checkEquals(t *testing.T, p, q Poly) {
	t.Helper()
	//
	if !p.Equals(q) || !q.Equals(p) {
		t.Errorf("polynomials not equal: %s vs %s", p.String(), q.String())
	} else if p.Hash() != q.Hash() {
		t.Errorf("equal polynomials with different hashes: %s vs %s", p.String(), q.String())
	}
}

func checkNotEquals(t *testing.T, p, q Poly) {
	t.Helper()
	//
	if p.Equals(q) || q.Equals(p) {
		t.Errorf("polynomials should not be equal: %s vs %s", p.String(), q.String())
	}
}

func checkNoZeros(t *testing.T, p Poly) {
	t.Helper()
	//
	for d, c := range p.Terms() {
		if ints.IsAdditiveUnity(c) {
			t.Errorf("zero coefficient for %s in %s", d.String(), p.String())
		}
	}
}
