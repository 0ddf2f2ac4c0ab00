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

import stackutil "github.com/dawmd/polycalc/pkg/util/collection/stack"

// Stack is a LIFO stack of polynomials, built directly on the project's
// generic collection/stack.Stack — it adds nothing of its own beyond a
// domain-specific name and PopReversed/Shrink, both of which the generic
// stack now exposes for any instantiation, not just this one.
type Stack struct {
	inner *stackutil.Stack[Poly]
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{inner: stackutil.NewStack[Poly]()}
}

// IsEmpty reports whether the stack has no items.
func (s *Stack) IsEmpty() bool {
	return s.inner.IsEmpty()
}

// Len returns the number of items on the stack.
func (s *Stack) Len() uint {
	return s.inner.Len()
}

// Cap returns the capacity of the stack's backing array.
func (s *Stack) Cap() uint {
	return s.inner.Cap()
}

// Peek returns the top item without removing it. Panics if the stack is
// empty; callers in pkg/calc check Len first so this never fires from user
// input.
func (s *Stack) Peek() Poly {
	return s.inner.Peek(0)
}

// Push adds an item to the top of the stack.
func (s *Stack) Push(p Poly) {
	s.inner.Push(p)
}

// Pop removes and returns the top item. Panics if the stack is empty.
func (s *Stack) Pop() Poly {
	return s.inner.Pop()
}

// PopReversed pops n items and returns them in the order they were
// originally pushed (the reverse of pop order) — exactly what COMPOSE needs
// to recover q_0, q_1, ..., q_{n-1} from a stack where q_{n-1} sits
// immediately below the composition target and q_0 sits deepest. Panics if
// fewer than n items remain.
func (s *Stack) PopReversed(n uint) []Poly {
	return s.inner.PopReversed(n)
}

// Shrink reclaims backing storage once the stack's length has fallen well
// below its capacity, mirroring the original's AdjustStack: it only resizes
// once occupancy drops to a fifth of capacity or less, so a single
// push-then-pop pair never triggers a reallocation.
func (s *Stack) Shrink() {
	s.inner.Shrink()
}
