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
	"strings"

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/util/sexp"
)

// String returns a textual representation of this polynomial of the form
// c*x^2*y+c*(p)^3+..., where exponents of 1 are omitted, constant terms are
// given by their coefficient alone and the zero polynomial is "0".
func (p *Polynomial[T]) String() string {
	var buf strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	first := true
	//
	for d, c := range p.Terms() {
		if !first {
			buf.WriteString("+")
		}
		//
		first = false
		//
		buf.WriteString(c.String())
		//
		for i := range d.Len() {
			if e := d.Get(i); e != 0 {
				buf.WriteString("*")
				buf.WriteString(p.slots[i].String())
				//
				if e != 1 {
					buf.WriteString(fmt.Sprintf("^%d", e))
				}
			}
		}
	}
	//
	return buf.String()
}

// Lisp returns an S-Expression representation of this polynomial, such as
// (+ (* 2 (^ x 2) y) 1).  This is the form accepted by Parser.
func (p *Polynomial[T]) Lisp() sexp.SExp {
	var terms []sexp.SExp
	//
	for d, c := range p.Terms() {
		factors := []sexp.SExp{sexp.NewSymbol("*"), sexp.NewSymbol(c.String())}
		//
		for i := range d.Len() {
			e := d.Get(i)
			//
			switch {
			case e == 0:
				continue
			case e == 1:
				factors = append(factors, lispSlot(p.slots[i]))
			default:
				pow := sexp.NewList(sexp.NewSymbol("^"), lispSlot(p.slots[i]), sexp.NewSymbol(fmt.Sprintf("%d", e)))
				factors = append(factors, pow)
			}
		}
		// Simplify products of one factor
		if len(factors) == 2 {
			terms = append(terms, factors[1])
		} else {
			terms = append(terms, sexp.NewList(factors...))
		}
	}
	// Case analysis on the number of terms
	switch len(terms) {
	case 0:
		return sexp.NewSymbol("0")
	case 1:
		return terms[0]
	default:
		return sexp.NewList(append([]sexp.SExp{sexp.NewSymbol("+")}, terms...)...)
	}
}

func lispSlot[T algebra.Coefficient[T]](slot Slot[T]) sexp.SExp {
	switch s := slot.(type) {
	case *NameSlot[T]:
		return sexp.NewSymbol(s.name)
	case *NestedSlot[T]:
		return s.poly.Lisp()
	default:
		panic("unknown slot")
	}
}
