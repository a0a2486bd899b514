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
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/consensys/go-symalg/pkg/algebra"
	"github.com/consensys/go-symalg/pkg/algebra/field"
	"github.com/consensys/go-symalg/pkg/algebra/field/bls12_377"
	"github.com/consensys/go-symalg/pkg/algebra/field/bn254"
	"github.com/consensys/go-symalg/pkg/poly"
	"github.com/consensys/go-symalg/pkg/util"
	"github.com/consensys/go-symalg/pkg/util/sexp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Session captures the operations offered on the command line, independently
// of the coefficient domain selected with --field.
type Session interface {
	// Expand parses and expands each expression.
	Expand(exprs []string) error
	// Eval evaluates an expression at a given set of assignments "x=V".
	Eval(expr string, assignments []string) error
	// Diff differentiates an expression with respect to a given variable.
	Diff(expr string, wrt string) error
	// Equal checks whether two expressions have the same expanded form.
	Equal(lhs string, rhs string) (bool, error)
	// Bind associates a name with an expression, such that subsequent
	// expressions have that name substituted.
	Bind(name string, expr string) error
	// Print parses and prints an expression in both its given and expanded
	// forms.
	Print(expr string) error
}

// newSession constructs a session over the coefficient domain selected by the
// --field flag.
func newSession(cmd *cobra.Command, out io.Writer) Session {
	var (
		lisp = getFlag(cmd, "lisp")
		name = getString(cmd, "field")
	)
	//
	log.Debugf("using %s coefficients", name)
	//
	switch strings.ToLower(name) {
	case "integer", "int":
		return newEngine[algebra.Integer](algebra.Integers{}, algebra.ParseInteger, out, lisp)
	case "rational", "rat":
		return newEngine[algebra.Rational](algebra.Rationals{}, algebra.ParseRational, out, lisp)
	case "bls12-377", "bls12_377":
		return newEngine[bls12_377.Element](bls12_377.Field, field.Parse[bls12_377.Element], out, lisp)
	case "bn254":
		return newEngine[bn254.Element](bn254.Field, field.Parse[bn254.Element], out, lisp)
	default:
		fmt.Printf("unknown field \"%s\" (expected integer, rational, bls12-377 or bn254)\n", name)
		os.Exit(2)
	}
	// unreachable
	return nil
}

// engine implements a session for a specific coefficient ring.
type engine[T algebra.Coefficient[T]] struct {
	ring algebra.Ring[T]
	// Constructs coefficients from their textual form
	constructor func(string) (T, error)
	parser      *poly.Parser[T]
	// Names bound via Bind
	env map[string]*poly.Polynomial[T]
	// Destination for printed polynomials
	out io.Writer
	// Print in S-expression form
	lisp bool
}

func newEngine[T algebra.Coefficient[T]](ring algebra.Ring[T], constructor func(string) (T, error),
	out io.Writer, lisp bool) *engine[T] {
	parser, err := poly.NewParser(ring, constructor)
	// Only fails for missing arguments
	if err != nil {
		panic(err)
	}
	//
	return &engine[T]{ring, constructor, parser, make(map[string]*poly.Polynomial[T]), out, lisp}
}

func (p *engine[T]) Expand(exprs []string) error {
	for _, expr := range exprs {
		q, err := p.parse(expr)
		if err != nil {
			return err
		}
		//
		stats := util.NewPerfStats()
		r, err := q.GetExpanded(p.ring)
		//
		if err != nil {
			return err
		}
		//
		stats.Log(fmt.Sprintf("Expanding %d term(s)", q.Len()))
		p.print(r)
	}
	//
	return nil
}

func (p *engine[T]) Eval(expr string, assignments []string) error {
	q, err := p.parse(expr)
	if err != nil {
		return err
	}
	//
	values, err := p.parseAssignments(assignments)
	if err != nil {
		return err
	}
	// Check whether every variable is bound
	for _, v := range q.GetVariables() {
		if _, ok := values[v]; !ok {
			log.Debugf("variable %s unbound, performing partial evaluation", v)
			//
			r, err := q.ReplaceValues(values, p.ring)
			if err != nil {
				return err
			}
			//
			p.print(r)
			//
			return nil
		}
	}
	//
	scalars, err := algebra.NewScalars(p.ring)
	if err != nil {
		return err
	}
	//
	val, err := poly.Evaluate[T, T](q, scalars, values)
	if err != nil {
		return err
	}
	//
	fmt.Fprintln(p.out, val.String())
	//
	return nil
}

func (p *engine[T]) Diff(expr string, wrt string) error {
	q, err := p.parse(expr)
	if err != nil {
		return err
	}
	//
	r, err := q.Derivative(wrt, p.ring)
	if err != nil {
		return err
	}
	//
	p.print(r)
	//
	return nil
}

func (p *engine[T]) Equal(lhs string, rhs string) (bool, error) {
	var polys [2]*poly.Polynomial[T]
	//
	for i, expr := range []string{lhs, rhs} {
		q, err := p.parse(expr)
		if err != nil {
			return false, err
		}
		//
		if polys[i], err = q.GetExpanded(p.ring); err != nil {
			return false, err
		}
	}
	//
	return polys[0].Equals(polys[1]), nil
}

// Bind a name to an expression.  The definition is stored as written and only
// resolved against other bindings when used.  Hence, a later binding of some
// name it mentions is reflected in its value.  A definition which refers back
// to the name being bound (directly or indirectly) is rejected.
func (p *engine[T]) Bind(name string, expr string) error {
	q, err := p.parseRaw(expr)
	if err != nil {
		return err
	} else if _, err = poly.NewNameSlot[T](name); err != nil {
		return err
	} else if _, err = p.resolve(q, []string{name}); err != nil {
		return err
	}
	//
	p.env[name] = q
	//
	return nil
}

func (p *engine[T]) Print(expr string) error {
	q, err := p.parse(expr)
	if err != nil {
		return err
	}
	//
	r, err := q.GetExpanded(p.ring)
	if err != nil {
		return err
	}
	//
	if !q.IsNormal() {
		p.print(q)
	}
	//
	p.print(r)
	//
	return nil
}

// parse an expression, substituting any names bound in this session.
func (p *engine[T]) parse(expr string) (*poly.Polynomial[T], error) {
	q, err := p.parseRaw(expr)
	if err != nil {
		return nil, err
	}
	//
	return p.resolve(q, nil)
}

func (p *engine[T]) parseRaw(expr string) (*poly.Polynomial[T], error) {
	q, errs := p.parser.ParseString(expr)
	//
	if len(errs) > 0 {
		return nil, &parseError{expr, errs}
	}
	//
	log.Debugf("parsed %s", q.String())
	//
	return q, nil
}

// resolve substitutes every bound name used by a polynomial with its
// (recursively resolved) definition.  The visiting stack holds the names
// currently being resolved, and encountering one of them again signals a
// cyclic binding.
func (p *engine[T]) resolve(q *poly.Polynomial[T], visiting []string) (*poly.Polynomial[T], error) {
	subs := make(map[string]*poly.Polynomial[T])
	//
	for _, name := range q.GetVariables() {
		def, ok := p.env[name]
		//
		if slices.Contains(visiting, name) {
			return nil, algebra.DomainError("cyclic binding for %s", name)
		} else if !ok {
			continue
		}
		//
		r, err := p.resolve(def, append(slices.Clone(visiting), name))
		if err != nil {
			return nil, err
		}
		//
		subs[name] = r
	}
	//
	if len(subs) == 0 {
		return q, nil
	}
	//
	return q.Replace(subs, p.ring)
}

// parse assignments of the form "x=V".
func (p *engine[T]) parseAssignments(assignments []string) (map[string]T, error) {
	values := make(map[string]T, len(assignments))
	//
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		//
		if !ok || strings.TrimSpace(name) == "" {
			return nil, algebra.InvalidArgument("malformed assignment \"%s\"", a)
		}
		//
		val, err := p.constructor(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		//
		values[strings.TrimSpace(name)] = val
	}
	//
	return values, nil
}

func (p *engine[T]) print(q *poly.Polynomial[T]) {
	if p.lisp {
		fmt.Fprintln(p.out, q.Lisp().String())
	} else {
		fmt.Fprintln(p.out, q.String())
	}
}

// parseError packages the syntax errors arising from a given input.
type parseError struct {
	text   string
	errors []sexp.SyntaxError
}

func (p *parseError) Error() string {
	var buf strings.Builder
	//
	for i := range p.errors {
		if i != 0 {
			buf.WriteString("\n")
		}
		//
		buf.WriteString(p.errors[i].Error())
	}
	//
	return buf.String()
}
