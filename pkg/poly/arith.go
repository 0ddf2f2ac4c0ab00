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

// Add returns a + b in canonical form.
func Add(a, b Poly) Poly {
	if a.scalar && b.scalar {
		return FromScalar(addCoeff(a.value, b.value))
	}
	//
	monos := make([]Monomial, 0, monoCount(a)+monoCount(b))
	monos = appendAsMonomials(monos, a)
	monos = appendAsMonomials(monos, b)
	//
	if len(monos) == 0 {
		return Zero()
	}
	//
	return normalizeMonomials(monos)
}

// Neg returns -p in canonical form.
func Neg(p Poly) Poly {
	if p.scalar {
		return FromScalar(negCoeff(p.value))
	}
	//
	monos := make([]Monomial, len(p.monos))
	//
	for i, m := range p.monos {
		monos[i] = Monomial{Coeff: Neg(m.Coeff), Exp: m.Exp}
	}
	// Negation changes neither sortedness nor zero-ness of any term, so the
	// canonical-form invariants already held by p carry over unchanged.
	return Poly{monos: monos}
}

// Sub returns a - b in canonical form. Rather than materializing Neg(b) as
// its own tree and handing it to Add, this merges a's and b's monomials
// directly, negating b's coefficients as they are flattened in.
func Sub(a, b Poly) Poly {
	if a.scalar && b.scalar {
		return FromScalar(subCoeff(a.value, b.value))
	}
	//
	monos := make([]Monomial, 0, monoCount(a)+monoCount(b))
	monos = appendAsMonomials(monos, a)
	monos = appendNegatedAsMonomials(monos, b)
	//
	if len(monos) == 0 {
		return Zero()
	}
	//
	return normalizeMonomials(monos)
}

// Mul returns a * b in canonical form.
func Mul(a, b Poly) Poly {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	//
	if a.scalar && b.scalar {
		return FromScalar(mulCoeff(a.value, b.value))
	}
	//
	if a.scalar {
		return mulScalar(a.value, b)
	}
	//
	if b.scalar {
		return mulScalar(b.value, a)
	}
	//
	produced := make([]Monomial, 0, len(a.monos)*len(b.monos))
	//
	for _, mi := range a.monos {
		for _, mj := range b.monos {
			c := Mul(mi.Coeff, mj.Coeff)
			if !c.IsZero() {
				produced = append(produced, Monomial{Coeff: c, Exp: mi.Exp + mj.Exp})
			}
		}
	}
	//
	if len(produced) == 0 {
		return Zero()
	}
	//
	return normalizeMonomials(produced)
}

// mulScalar multiplies every coefficient of p, at every nesting level, by
// the machine-integer constant c. It is Mul's fast path for the common case
// of a bare-integer literal on one side of ADD's sibling, MUL.
func mulScalar(c Coeff, p Poly) Poly {
	if c == 0 {
		return Zero()
	}
	//
	if p.scalar {
		return FromScalar(mulCoeff(c, p.value))
	}
	//
	monos := make([]Monomial, 0, len(p.monos))
	//
	for _, m := range p.monos {
		coeff := mulScalar(c, m.Coeff)
		if !coeff.IsZero() {
			monos = append(monos, Monomial{Coeff: coeff, Exp: m.Exp})
		}
	}
	// Scaling can only drop terms (when c and a coefficient wrap to zero
	// together), never reorder or duplicate exponents, so a bare collapse
	// check is enough — no sort or merge is needed.
	return buildFromMonos(monos)
}

// monoCount returns the number of top-level monomials p contributes when
// flattened into an addition, treating a non-zero scalar as a single
// exponent-zero term and the zero polynomial as contributing none.
func monoCount(p Poly) int {
	if !p.scalar {
		return len(p.monos)
	}
	//
	if p.value == 0 {
		return 0
	}
	//
	return 1
}

// appendAsMonomials flattens p onto dst the same way monoCount counts it.
func appendAsMonomials(dst []Monomial, p Poly) []Monomial {
	if p.scalar {
		if p.value != 0 {
			dst = append(dst, Monomial{Coeff: FromScalar(p.value), Exp: 0})
		}
		//
		return dst
	}
	//
	return append(dst, p.monos...)
}

// appendNegatedAsMonomials flattens p onto dst the same way appendAsMonomials
// does, but negates each contributed coefficient as it goes, so Sub never
// has to build a fully negated copy of its right-hand side first.
func appendNegatedAsMonomials(dst []Monomial, p Poly) []Monomial {
	if p.scalar {
		if p.value != 0 {
			dst = append(dst, Monomial{Coeff: FromScalar(negCoeff(p.value)), Exp: 0})
		}
		//
		return dst
	}
	//
	for _, m := range p.monos {
		dst = append(dst, Monomial{Coeff: Neg(m.Coeff), Exp: m.Exp})
	}
	//
	return dst
}
