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
	"math/rand"
	"testing"
)

func Test_At_01(t *testing.T) {
	// 1 + x + x^2 at x=3 == 13
	p := buildUnivariate(map[Exp]Coeff{0: 1, 1: 1, 2: 1})
	//
	if got := At(p, 3); !got.IsCoeff() || got.Coefficient() != 13 {
		t.Errorf("got %s, expected 13", got)
	}
}

func Test_At_02(t *testing.T) {
	// At(p, 0) returns the constant term, even when none was written explicitly.
	p := buildUnivariate(map[Exp]Coeff{2: 5})
	//
	if got := At(p, 0); !got.IsZero() {
		t.Errorf("got %s, expected 0", got)
	}
}

func Test_At_03(t *testing.T) {
	// p(x, y) = x^2 + y, evaluated at x=2 leaves the polynomial "y + 4". The
	// "+y" term is attached as the coefficient of x's exponent-zero term,
	// alongside the exponent-two term, so the sum carries two monomials.
	p := normalizeMonomials([]Monomial{
		{Coeff: FromMonomial(FromScalar(1), 1), Exp: 0},
		{Coeff: FromScalar(1), Exp: 2},
	})
	//
	got := At(p, 2)
	expected := Add(FromScalar(4), FromMonomial(FromScalar(1), 1))
	//
	if !IsEq(got, expected) {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

func Test_Compose_01(t *testing.T) {
	// COMPOSE 0 on a constant returns the constant unchanged.
	p := FromScalar(9)
	//
	if got := Compose(p, nil); !IsEq(got, p) {
		t.Errorf("got %s, expected %s", got, p)
	}
}

func Test_Compose_02(t *testing.T) {
	// p(x) = x^2, q(x) = x + 1; p(q(x)) = x^2 + 2x + 1.
	p := FromMonomial(FromScalar(1), 2)
	q := Add(FromMonomial(FromScalar(1), 1), FromScalar(1))
	//
	got := Compose(p, []Poly{q})
	expected := buildUnivariate(map[Exp]Coeff{0: 1, 1: 2, 2: 1})
	//
	if !IsEq(got, expected) {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

func Test_Compose_03(t *testing.T) {
	// Composing with fewer substitutions than variables sets the rest to
	// zero: p(x, y) = x + y, COMPOSE 1 with q(x) = 5 leaves just 5, since y
	// (variable index 1) has no supplied substitution.
	p := normalizeMonomials([]Monomial{
		{Coeff: FromMonomial(FromScalar(1), 1), Exp: 0},
		{Coeff: FromScalar(1), Exp: 1},
	})
	//
	got := Compose(p, []Poly{FromScalar(5)})
	expected := FromScalar(5)
	//
	if !IsEq(got, expected) {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

// Test_At_Random_01 cross-checks At against direct term-by-term evaluation of
// random sparse univariate polynomials, the same way Test_Arith_Random_01
// cross-checks the arithmetic operators.
func Test_At_Random_01(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	samples := []Coeff{-5, -1, 0, 1, 4}
	//
	for trial := 0; trial < 200; trial++ {
		coeffs := randomUnivariate(rng, 6)
		p := buildUnivariate(coeffs)
		//
		for _, x := range samples {
			got := At(p, x)
			want := evalRef(coeffs, x)
			//
			if !got.IsCoeff() || got.Coefficient() != want {
				t.Fatalf("trial %d: At(p, %d): got %s, expected %d", trial, x, got, want)
			}
		}
	}
}
