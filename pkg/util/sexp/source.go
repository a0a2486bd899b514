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
package sexp

import "fmt"

// Span represents a contiguous slice of the original text, given as a start
// (inclusive) and end (exclusive) offset.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a new span.
func NewSpan(start int, end int) Span {
	return Span{start, end}
}

// Start returns the starting offset of this span.
func (p Span) Start() int {
	return p.start
}

// End returns the (exclusive) end offset of this span.
func (p Span) End() int {
	return p.end
}

// SourceMap maps the S-Expressions produced by the parser to their spans in
// the original text.  This is used for reporting errors.
type SourceMap struct {
	text  []rune
	spans map[SExp]Span
}

// NewSourceMap constructs an empty source map over a given text.
func NewSourceMap(text []rune) *SourceMap {
	return &SourceMap{text, make(map[SExp]Span)}
}

// Put registers the span of a given S-Expression.
func (p *SourceMap) Put(item SExp, span Span) {
	p.spans[item] = span
}

// Get returns the span of a given S-Expression (if known).
func (p *SourceMap) Get(item SExp) (Span, bool) {
	span, ok := p.spans[item]
	return span, ok
}

// SyntaxError constructs a syntax error covering a given S-Expression.  If the
// S-Expression is unknown to this map, the error spans the whole text.
func (p *SourceMap) SyntaxError(item SExp, msg string) *SyntaxError {
	span, ok := p.spans[item]
	//
	if !ok {
		span = NewSpan(0, len(p.text))
	}
	//
	return &SyntaxError{p.text, span, msg}
}

// SyntaxErrors is a convenience wrapper around SyntaxError which returns a
// singleton slice.
func (p *SourceMap) SyntaxErrors(item SExp, msg string) []SyntaxError {
	return []SyntaxError{*p.SyntaxError(item, msg)}
}

// SyntaxError is a structured error which retains the location of the error
// within the original text.
type SyntaxError struct {
	text []rune
	span Span
	msg  string
}

// Span returns the span of the original text where this error arose.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message associated with this error.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, reporting the (1-based) line and
// column where the error starts.
func (p *SyntaxError) Error() string {
	line, col := 1, 1
	//
	for i := 0; i < p.span.start && i < len(p.text); i++ {
		if p.text[i] == '\n' {
			line, col = line+1, 1
		} else {
			col++
		}
	}
	//
	return fmt.Sprintf("%d:%d: %s", line, col, p.msg)
}
