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

// Package poly implements sparse multivariate polynomials over bounded,
// wrapping machine integers in recursive canonical form: a polynomial is
// either a scalar, or a sorted, zero-free sum of monomials whose own
// coefficients are themselves canonical polynomials one variable down.
package poly

import "fmt"

// Monomial is a single term coeff * x^exp of a Sum-form polynomial. Its
// coefficient is itself a canonical Poly, one variable nesting level down —
// this is what lets a Poly represent an arbitrary number of variables
// without naming them.
type Monomial struct {
	Coeff Poly
	Exp   Exp
}

// Poly is a polynomial in canonical form. The zero value is not a valid
// Poly; use Zero() or one of the other constructors.
//
// Invariants (maintained by every constructor and operation in this
// package, never by callers):
//   - a scalar Poly carries no monomials;
//   - a sum Poly carries at least one monomial;
//   - no monomial coefficient is ever the zero polynomial;
//   - monomials are sorted by strictly increasing exponent;
//   - a sum of exactly one monomial of exponent zero whose coefficient is a
//     scalar never occurs — it is always collapsed to that scalar (the
//     "single-term collapse rule"); a lone exponent-zero monomial whose
//     coefficient is a sum is kept as it is;
//   - the zero polynomial is always represented as the scalar 0, never as
//     an empty or degenerate sum.
type Poly struct {
	scalar bool
	value  Coeff
	monos  []Monomial
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{scalar: true}
}

// FromScalar constructs the constant polynomial equal to c.
func FromScalar(c Coeff) Poly {
	return Poly{scalar: true, value: c}
}

// FromMonomial constructs the single-variable monomial coeff * x^exp for a
// canonical, non-zero coeff and exp > 0. It exists to keep parser code and
// tests from having to poke at unexported fields directly.
func FromMonomial(coeff Poly, exp Exp) Poly {
	if coeff.IsZero() || exp == 0 {
		panic("poly: FromMonomial requires a non-zero coefficient and a positive exponent")
	}
	//
	return Poly{monos: []Monomial{{Coeff: coeff, Exp: exp}}}
}

// IsCoeff reports whether p is in scalar form, i.e. it is a bare integer
// constant with no monomials.
func (p Poly) IsCoeff() bool {
	return p.scalar
}

// Coefficient returns the scalar value of p. Panics if !p.IsCoeff().
func (p Poly) Coefficient() Coeff {
	if !p.scalar {
		panic("poly: Coefficient called on a non-scalar polynomial")
	}
	//
	return p.value
}

// IsZero reports whether p is the zero polynomial. Thanks to the canonical
// form invariant this is always equivalent to p.IsCoeff() && p.Coefficient()
// == 0 — there is no other way to represent zero.
func (p Poly) IsZero() bool {
	return p.scalar && p.value == 0
}

// Len returns the number of top-level monomials of a sum-form p. Panics on a
// scalar p, mirroring Coefficient's symmetry.
func (p Poly) Len() int {
	if p.scalar {
		panic("poly: Len called on a scalar polynomial")
	}
	//
	return len(p.monos)
}

// Monomials returns the top-level monomials of a sum-form p, in ascending
// exponent order. The returned slice must not be mutated by the caller — it
// is not a copy.
func (p Poly) Monomials() []Monomial {
	if p.scalar {
		panic("poly: Monomials called on a scalar polynomial")
	}
	//
	return p.monos
}

// Clone returns a deep copy of p. Polynomials built exclusively through this
// package's constructors are already immutable in practice (no operation
// ever mutates a Poly or Monomial in place), so Clone is provided for API
// parity with the original's ownership-transferring PolyClone/DestroyPoly
// pair and for callers — such as the command stack's DUP-like uses — that
// want an independently-owned value to reason about, rather than because
// aliasing a Poly is unsafe.
func (p Poly) Clone() Poly {
	if p.scalar {
		return p
	}
	//
	monos := make([]Monomial, len(p.monos))
	//
	for i, m := range p.monos {
		monos[i] = Monomial{Coeff: m.Coeff.Clone(), Exp: m.Exp}
	}
	//
	return Poly{monos: monos}
}

// Destroy exists only for symmetry with the original's explicit
// PolyDestroy/DestroyPoly: Go's garbage collector reclaims a Poly's storage
// once it is unreachable, so this method frees nothing; it only resets *p to
// the (invalid) zero value. It is provided so code translated from, or read
// alongside, the ownership discipline of the original reads the same way
// here.
func (p *Poly) Destroy() {
	*p = Poly{}
}

// String renders p using the literal grammar of the command protocol: a bare
// integer for a scalar, or "(coeff,exp)+(coeff,exp)+..." for a sum, with
// monomials printed in the same ascending-exponent order they are stored in.
func (p Poly) String() string {
	if p.scalar {
		return fmt.Sprintf("%d", p.value)
	}
	//
	var out []byte
	//
	for i, m := range p.monos {
		if i > 0 {
			out = append(out, '+')
		}
		//
		out = append(out, '(')
		out = append(out, m.Coeff.String()...)
		out = append(out, ',')
		out = append(out, fmt.Sprintf("%d", m.Exp)...)
		out = append(out, ')')
	}
	//
	return string(out)
}
