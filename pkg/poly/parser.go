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
	"strconv"
	"unicode"

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/sexp"
)

// Parser is responsible for parsing S-expressions into polynomials.  The
// following forms are recognised: numeric literals (e.g. 12 or -3), variables
// (e.g. x), sums (+ e1 ... en), differences (- e1 ... en), negations (- e),
// products (* e1 ... en) and powers (^ e n).  Products and powers follow the
// same lazy semantics as Multiply and Power.
type Parser[T algebra.Coefficient[T]] struct {
	ring algebra.Ring[T]
	// Function for constructing coefficients from numeric literals
	constructor func(string) (T, error)
}

// NewParser constructs a new parser for a given coefficient ring.
func NewParser[T algebra.Coefficient[T]](ring algebra.Ring[T], constructor func(string) (T, error)) (*Parser[T], error) {
	if ring == nil {
		return nil, algebra.InvalidArgument("ring required")
	} else if constructor == nil {
		return nil, algebra.InvalidArgument("coefficient constructor required")
	}
	//
	return &Parser[T]{ring, constructor}, nil
}

// ParseString parses a given string into a polynomial, or produces one or
// more syntax errors.
func (p *Parser[T]) ParseString(text string) (*Polynomial[T], []sexp.SyntaxError) {
	term, srcmap, err := sexp.Parse(text)
	//
	if err != nil {
		return nil, []sexp.SyntaxError{*err}
	}
	//
	return p.Parse(term, srcmap)
}

// Parse a given S-expression into a polynomial, or produce one or more syntax
// errors.
func (p *Parser[T]) Parse(expr sexp.SExp, srcmap *sexp.SourceMap) (*Polynomial[T], []sexp.SyntaxError) {
	switch e := expr.(type) {
	case *sexp.Symbol:
		return p.parseSymbol(e, srcmap)
	case *sexp.List:
		return p.parseList(e, srcmap)
	default:
		return nil, srcmap.SyntaxErrors(expr, "unknown term")
	}
}

func (p *Parser[T]) parseSymbol(symbol *sexp.Symbol, srcmap *sexp.SourceMap) (*Polynomial[T], []sexp.SyntaxError) {
	var (
		poly *Polynomial[T]
		err  error
	)
	//
	switch {
	case isLiteral(symbol.Value):
		var coeff T
		//
		if coeff, err = p.constructor(symbol.Value); err == nil {
			poly, err = NewConstant[T](p.ring, coeff)
		}
	case isIdentifier(symbol.Value):
		poly, err = NewVariable[T](p.ring, p.ring.MultiplicativeUnity(), symbol.Value, 1)
	default:
		return nil, srcmap.SyntaxErrors(symbol, "invalid symbol")
	}
	// Check for errors
	if err != nil {
		return nil, srcmap.SyntaxErrors(symbol, err.Error())
	}
	//
	return poly, nil
}

func (p *Parser[T]) parseList(list *sexp.List, srcmap *sexp.SourceMap) (*Polynomial[T], []sexp.SyntaxError) {
	if list.Len() <= 1 {
		return nil, srcmap.SyntaxErrors(list, "malformed expression")
	} else if list.Get(0).AsSymbol() == nil {
		return nil, srcmap.SyntaxErrors(list.Get(0), "expected operator")
	}
	//
	switch list.Head() {
	case "+":
		return p.foldList(list, srcmap, func(l, r *Polynomial[T]) (*Polynomial[T], error) {
			return l.add(r, p.ring), nil
		})
	case "-":
		if list.Len() == 2 {
			arg, errs := p.Parse(list.Get(1), srcmap)
			//
			if len(errs) > 0 {
				return nil, errs
			}
			//
			return arg.negate(p.ring), nil
		}
		//
		return p.foldList(list, srcmap, func(l, r *Polynomial[T]) (*Polynomial[T], error) {
			return l.add(r.negate(p.ring), p.ring), nil
		})
	case "*":
		return p.foldList(list, srcmap, func(l, r *Polynomial[T]) (*Polynomial[T], error) {
			return l.multiply(r, p.ring)
		})
	case "^":
		return p.parsePower(list, srcmap)
	default:
		return nil, srcmap.SyntaxErrors(list.Get(0), "unknown operator")
	}
}

func (p *Parser[T]) parsePower(list *sexp.List, srcmap *sexp.SourceMap) (*Polynomial[T], []sexp.SyntaxError) {
	if list.Len() != 3 {
		return nil, srcmap.SyntaxErrors(list, "expected base and exponent")
	}
	//
	base, errs := p.Parse(list.Get(1), srcmap)
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	exp := list.Get(2).AsSymbol()
	//
	if exp == nil {
		return nil, srcmap.SyntaxErrors(list.Get(2), "expected exponent")
	}
	//
	n, err := strconv.ParseUint(exp.Value, 10, 32)
	//
	if err != nil {
		return nil, srcmap.SyntaxErrors(exp, "invalid exponent")
	}
	//
	res, err := base.power(uint(n), p.ring)
	//
	if err != nil {
		return nil, srcmap.SyntaxErrors(list, err.Error())
	}
	//
	return res, nil
}

// Type of operators to be used with fold.
type foldOp[T algebra.Coefficient[T]] func(*Polynomial[T], *Polynomial[T]) (*Polynomial[T], error)

// Fold a given operator over the arguments of a list (i.e. all elements after
// the operator itself).
func (p *Parser[T]) foldList(list *sexp.List, srcmap *sexp.SourceMap,
	op foldOp[T]) (*Polynomial[T], []sexp.SyntaxError) {
	var (
		res *Polynomial[T]
		err error
	)
	// Fold over each element
	for i, e := range list.Elements[1:] {
		if poly, errs := p.Parse(e, srcmap); len(errs) > 0 {
			return nil, errs
		} else if i == 0 {
			res = poly
		} else if res, err = op(res, poly); err != nil {
			return nil, srcmap.SyntaxErrors(list, err.Error())
		}
	}
	//
	return res, nil
}

// Check whether a symbol is a numeric literal (e.g. 1, -2 or 3/4).
func isLiteral(symbol string) bool {
	if len(symbol) > 1 && symbol[0] == '-' {
		symbol = symbol[1:]
	}
	//
	return len(symbol) > 0 && symbol[0] >= '0' && symbol[0] <= '9'
}

// Check whether a symbol is a valid variable name.
func isIdentifier(symbol string) bool {
	for i, c := range symbol {
		if c == '_' || unicode.IsLetter(c) || (i > 0 && (unicode.IsDigit(c) || c == '\'')) {
			continue
		}
		//
		return false
	}
	//
	return len(symbol) > 0
}
