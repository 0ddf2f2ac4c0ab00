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

// NegativeDegree is the sentinel degree of the zero polynomial, matching the
// original's convention of returning -1 rather than a separate "undefined"
// type.
const NegativeDegree Exp = -1

// Deg returns the total degree of p: the zero polynomial's degree is
// NegativeDegree, a non-zero scalar's degree is 0, and otherwise it is the
// maximum, over p's monomials, of that monomial's own exponent plus the
// total degree of its (possibly multivariate) coefficient.
func Deg(p Poly) Exp {
	if p.IsZero() {
		return NegativeDegree
	}
	//
	if p.scalar {
		return 0
	}
	//
	best := NegativeDegree
	//
	for _, m := range p.monos {
		if d := m.Exp + Deg(m.Coeff); d > best {
			best = d
		}
	}
	//
	return best
}

// DegBy returns the degree of p with respect to the variable numbered
// varIdx, where 0 names the variable p's own top-level monomials are
// exponents of and increasing indices descend into nested coefficients.
// Mirrors Deg's sentinel and scalar conventions.
func DegBy(p Poly, varIdx uint) Exp {
	if p.IsZero() {
		return NegativeDegree
	}
	//
	if p.scalar {
		return 0
	}
	//
	if varIdx == 0 {
		// Monomials are stored in strictly increasing exponent order, so
		// the last one carries the maximum.
		return p.monos[len(p.monos)-1].Exp
	}
	//
	best := NegativeDegree
	//
	for _, m := range p.monos {
		if d := DegBy(m.Coeff, varIdx-1); d > best {
			best = d
		}
	}
	//
	return best
}
