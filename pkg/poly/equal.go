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

// IsEq reports whether a and b represent the same polynomial. Since every
// constructor in this package maintains canonical form, two equal
// polynomials are always structurally identical — there is no need to
// normalize or evaluate anything first.
func IsEq(a, b Poly) bool {
	if a.scalar != b.scalar {
		return false
	}
	//
	if a.scalar {
		return a.value == b.value
	}
	//
	if len(a.monos) != len(b.monos) {
		return false
	}
	//
	for i := range a.monos {
		if a.monos[i].Exp != b.monos[i].Exp {
			return false
		}
		//
		if !IsEq(a.monos[i].Coeff, b.monos[i].Coeff) {
			return false
		}
	}
	//
	return true
}
