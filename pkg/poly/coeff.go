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

import mathutil "github.com/dawmd/polycalc/pkg/util/math"

// Coeff is a bounded, wrapping signed integer coefficient, matching the
// original's "long poly_coeff_t".
type Coeff = int64

// Exp is a bounded, wrapping signed exponent, matching the original's
// "int poly_exp_t". Negative exponents never occur in a well-formed
// monomial, but the type stays signed since that is what comparisons and
// subtraction (used by Compose's delta-power trick) need.
type Exp = int32

// addCoeff adds two coefficients, wrapping silently on overflow. Go's native
// "+" on int64 already has this behaviour; the wrapper exists purely so every
// wrapping arithmetic operation the kernel performs is named and in one
// place, rather than relying on an unannounced language default.
func addCoeff(a, b Coeff) Coeff {
	return a + b
}

// subCoeff subtracts two coefficients, wrapping silently on overflow.
func subCoeff(a, b Coeff) Coeff {
	return a - b
}

// mulCoeff multiplies two coefficients, wrapping silently on overflow.
func mulCoeff(a, b Coeff) Coeff {
	return a * b
}

// negCoeff negates a coefficient, wrapping silently on overflow (the single
// case that matters is MinInt64, whose negation wraps back to itself).
func negCoeff(a Coeff) Coeff {
	return -a
}

// fastExpCoeff raises base to the given non-negative exponent by repeated
// squaring, wrapping on overflow at every multiplication. By convention (and
// per the original), 0^0 == 1.
//
// The squaring loop itself is mathutil.PowUint64's: a signed int64 and its
// uint64 bit pattern multiply to the same low 64 bits regardless of how the
// operands are interpreted, so reinterpreting base and casting back after is
// sound and avoids a second hand-written copy of the same loop.
func fastExpCoeff(base Coeff, exp Exp) Coeff {
	if exp == 0 {
		return 1
	}
	//
	return Coeff(mathutil.PowUint64(uint64(base), uint64(exp)))
}
