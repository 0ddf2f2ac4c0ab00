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
package calc

import (
	"errors"
	"strconv"

	"github.com/dawmd/polycalc/pkg/poly"
)

// errMalformedLiteral is returned (never exposed outside this file) whenever
// the byte-by-byte scan does not match the literal grammar exactly; the
// caller in repl.go turns it into the protocol's WRONG POLY error.
var errMalformedLiteral = errors.New("calc: malformed polynomial literal")

// literalParser is a small hand-rolled recursive-descent parser over a
// single input line's bytes, mirroring the original's manual character-class
// scanning rather than reaching for a general-purpose parsing framework — a
// one-line, whitespace-free grammar does not need one.
//
//	poly    ::= scalar | sum
//	sum     ::= monomial ('+' monomial)*
//	monomial ::= '(' poly ',' exp ')'
//	scalar  ::= '-'? digit+
//	exp     ::= digit+
type literalParser struct {
	s   string
	pos int
}

// ParseLiteral parses s as a complete polynomial literal. The whole of s
// must be consumed; trailing garbage is a malformed literal just like a
// syntax error partway through.
func ParseLiteral(s string) (poly.Poly, error) {
	p := &literalParser{s: s}
	//
	result, err := p.parsePoly()
	if err != nil {
		return poly.Poly{}, err
	}
	//
	if p.pos != len(p.s) {
		return poly.Poly{}, errMalformedLiteral
	}
	//
	return result, nil
}

func (p *literalParser) parsePoly() (poly.Poly, error) {
	if p.peek() == '(' {
		return p.parseSum()
	}
	//
	return p.parseScalar()
}

func (p *literalParser) parseSum() (poly.Poly, error) {
	buf := poly.NewMonoBuffer()
	//
	for {
		m, err := p.parseMonomial()
		if err != nil {
			return poly.Poly{}, err
		}
		//
		buf.Append(m)
		//
		if p.peek() != '+' {
			break
		}
		//
		p.pos++
	}
	//
	return buf.Build(), nil
}

func (p *literalParser) parseMonomial() (poly.Monomial, error) {
	if !p.consume('(') {
		return poly.Monomial{}, errMalformedLiteral
	}
	//
	coeff, err := p.parsePoly()
	if err != nil {
		return poly.Monomial{}, err
	}
	//
	if !p.consume(',') {
		return poly.Monomial{}, errMalformedLiteral
	}
	//
	exp, err := p.parseExp()
	if err != nil {
		return poly.Monomial{}, err
	}
	//
	if !p.consume(')') {
		return poly.Monomial{}, errMalformedLiteral
	}
	//
	return poly.Monomial{Coeff: coeff, Exp: exp}, nil
}

func (p *literalParser) parseScalar() (poly.Poly, error) {
	start := p.pos
	//
	if p.peek() == '-' {
		p.pos++
	}
	//
	digits := p.takeDigits()
	if digits == 0 {
		return poly.Poly{}, errMalformedLiteral
	}
	//
	value, err := strconv.ParseInt(p.s[start:p.pos], 10, 64)
	if err != nil {
		return poly.Poly{}, errMalformedLiteral
	}
	//
	return poly.FromScalar(value), nil
}

func (p *literalParser) parseExp() (poly.Exp, error) {
	start := p.pos
	//
	digits := p.takeDigits()
	if digits == 0 {
		return 0, errMalformedLiteral
	}
	//
	value, err := strconv.ParseInt(p.s[start:p.pos], 10, 32)
	if err != nil {
		return 0, errMalformedLiteral
	}
	//
	return poly.Exp(value), nil
}

// takeDigits advances past a run of ASCII digits and returns how many it
// consumed.
func (p *literalParser) takeDigits() int {
	start := p.pos
	//
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	//
	return p.pos - start
}

func (p *literalParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	//
	return p.s[p.pos]
}

func (p *literalParser) consume(b byte) bool {
	if p.peek() != b {
		return false
	}
	//
	p.pos++
	//
	return true
}
