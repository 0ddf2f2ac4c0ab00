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

// At evaluates p's top (outermost) variable at x, returning a polynomial one
// variable shallower: a constant stays a constant, and a sum collapses each
// monomial's x^exp into its coefficient before summing.
//
// x == 0 is special-cased for the same reason the original does: 0^exp is 0
// for every exp > 0, so only the exponent-zero term (if any) can survive,
// and it survives unscaled (0^0 == 1 by this package's convention).
func At(p Poly, x Coeff) Poly {
	if p.scalar {
		return p
	}
	//
	if x == 0 {
		for _, m := range p.monos {
			if m.Exp == 0 {
				return m.Coeff
			}
		}
		//
		return Zero()
	}
	//
	sum := Zero()
	//
	for _, m := range p.monos {
		xe := fastExpCoeff(x, m.Exp)
		sum = Add(sum, mulScalar(xe, m.Coeff))
	}
	//
	return sum
}

// Compose substitutes, in p, the variable numbered i with qs[i] for every i
// < len(qs), and substitutes 0 for every variable at index >= len(qs).
// COMPOSE 0 therefore evaluates p at the all-zero point.
func Compose(p Poly, qs []Poly) Poly {
	return composeAt(p, 0, qs)
}

// composeAt implements Compose for the subtree of p rooted at nesting level
// level (level 0 being p itself), substituting qs[level], qs[level+1], ...
// as it descends.
func composeAt(p Poly, level int, qs []Poly) Poly {
	if p.scalar {
		return p
	}
	//
	if level >= len(qs) {
		return composeToZero(p)
	}
	//
	var (
		q      = qs[level]
		sum    = Zero()
		power  = FromScalar(1)
		curExp Exp
	)
	// Monomials are stored in increasing exponent order, so the power of q
	// needed for each term can be built up incrementally from the previous
	// one via the gap between consecutive exponents, rather than recomputed
	// from scratch every time.
	for _, m := range p.monos {
		if delta := m.Exp - curExp; delta != 0 {
			power = Mul(power, fastExpPoly(q, delta))
			curExp = m.Exp
		}
		//
		coeff := composeAt(m.Coeff, level+1, qs)
		sum = Add(sum, Mul(coeff, power))
	}
	//
	return sum
}

// composeToZero substitutes 0 for every remaining variable of p, descending
// through nested coefficients as needed.
func composeToZero(p Poly) Poly {
	if p.scalar {
		return p
	}
	//
	for _, m := range p.monos {
		if m.Exp == 0 {
			return composeToZero(m.Coeff)
		}
	}
	//
	return Zero()
}

// fastExpPoly raises a polynomial base to a non-negative integer power via
// repeated squaring, the same algorithm fastExpCoeff uses for machine
// integers.
func fastExpPoly(base Poly, exp Exp) Poly {
	result := FromScalar(1)
	//
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(result, base)
		}
		//
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base = Mul(base, base)
	}
	//
	return result
}
