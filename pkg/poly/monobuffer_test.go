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

import "testing"

func Test_MonoBuffer_01(t *testing.T) {
	b := NewMonoBuffer()
	//
	if b.Len() != 0 {
		t.Errorf("new buffer is not empty")
	}
	//
	b.Append(Monomial{Coeff: FromScalar(1), Exp: 0})
	b.Append(Monomial{Coeff: FromScalar(1), Exp: 1})
	//
	if b.Len() != 2 {
		t.Errorf("got length %d, expected 2", b.Len())
	}
	//
	p := b.Build()
	assertInvariants(t, p)
	//
	expected := buildUnivariate(map[Exp]Coeff{0: 1, 1: 1})
	//
	if !IsEq(p, expected) {
		t.Errorf("got %s, expected %s", p, expected)
	}
	//
	if b.Len() != 0 {
		t.Errorf("Build should reset the buffer")
	}
}

func Test_MonoBuffer_MergesDuplicateExponents(t *testing.T) {
	b := NewMonoBuffer()
	//
	b.Append(Monomial{Coeff: FromScalar(3), Exp: 1})
	b.Append(Monomial{Coeff: FromScalar(-3), Exp: 1})
	//
	p := b.Build()
	//
	if !p.IsZero() {
		t.Errorf("duplicate exponents with cancelling coefficients should merge to zero, got %s", p)
	}
}

func Test_MonoBuffer_EmptyBuildsZero(t *testing.T) {
	if !NewMonoBuffer().Build().IsZero() {
		t.Errorf("an empty buffer should build the zero polynomial")
	}
}
