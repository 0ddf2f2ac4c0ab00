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
	"strconv"
	"strings"

	"github.com/dawmd/polycalc/pkg/poly"
)

// execCommand dispatches a line already known to start with a letter. Each
// parse attempt below is entirely local to this call — there is no
// process-wide error flag a prior line's out-of-range AT or COMPOSE argument
// could leave behind to poison a later, otherwise-valid line.
func (r *REPL) execCommand(line uint, text string) {
	tokens := strings.Fields(text)
	name := tokens[0]
	// The protocol separates a command from its argument by exactly one
	// 0x20 space; strings.Fields collapses runs of any whitespace (tabs,
	// repeated spaces) the same as a single one, so re-joining with single
	// spaces and comparing against the original line is what tells the two
	// apart.
	strictlySpaced := strings.Join(tokens, " ") == text
	//
	switch name {
	case "DEG_BY":
		if !strictlySpaced {
			r.reportError(line, ErrDegByWrongVariable)
			return
		}
		//
		r.execDegBy(line, tokens)
		return
	case "AT":
		if !strictlySpaced {
			r.reportError(line, ErrAtWrongValue)
			return
		}
		//
		r.execAt(line, tokens)
		return
	case "COMPOSE":
		if !strictlySpaced {
			r.reportError(line, ErrComposeWrongParameter)
			return
		}
		//
		r.execCompose(line, tokens)
		return
	}
	// Every other recognised command takes no argument at all; anything
	// beyond the bare command name, or any separator other than a single
	// space, makes the line unrecognised.
	if len(tokens) != 1 || !strictlySpaced {
		r.reportError(line, ErrWrongCommand)
		return
	}
	//
	switch name {
	case "ZERO":
		r.stack.Push(poly.Zero())
	case "IS_COEFF":
		r.execPredicate(line, poly.Poly.IsCoeff)
	case "IS_ZERO":
		r.execPredicate(line, poly.Poly.IsZero)
	case "CLONE":
		if !r.requireDepth(line, 1) {
			return
		}
		//
		r.stack.Push(r.stack.Peek().Clone())
	case "ADD":
		if !r.requireDepth(line, 2) {
			return
		}
		//
		rhs, lhs := r.stack.Pop(), r.stack.Pop()
		r.stack.Push(poly.Add(lhs, rhs))
	case "MUL":
		if !r.requireDepth(line, 2) {
			return
		}
		//
		rhs, lhs := r.stack.Pop(), r.stack.Pop()
		r.stack.Push(poly.Mul(lhs, rhs))
	case "SUB":
		if !r.requireDepth(line, 2) {
			return
		}
		//
		rhs, lhs := r.stack.Pop(), r.stack.Pop()
		r.stack.Push(poly.Sub(lhs, rhs))
	case "NEG":
		if !r.requireDepth(line, 1) {
			return
		}
		//
		r.stack.Push(poly.Neg(r.stack.Pop()))
	case "IS_EQ":
		if !r.requireDepth(line, 2) {
			return
		}
		//
		a := r.stack.Peek()
		b := r.peekBelowTop()
		r.printBool(poly.IsEq(a, b))
	case "DEG":
		if !r.requireDepth(line, 1) {
			return
		}
		//
		r.printExp(poly.Deg(r.stack.Peek()))
	case "PRINT":
		if !r.requireDepth(line, 1) {
			return
		}
		//
		r.printString(r.stack.Peek().String())
	case "POP":
		if !r.requireDepth(line, 1) {
			return
		}
		//
		r.stack.Pop()
	default:
		r.reportError(line, ErrWrongCommand)
	}
}

// execPredicate handles the two no-argument, non-destructive boolean queries
// IS_COEFF and IS_ZERO, which share the same shape.
func (r *REPL) execPredicate(line uint, pred func(poly.Poly) bool) {
	if !r.requireDepth(line, 1) {
		return
	}
	//
	r.printBool(pred(r.stack.Peek()))
}

func (r *REPL) execDegBy(line uint, tokens []string) {
	if len(tokens) != 2 {
		r.reportError(line, ErrDegByWrongVariable)
		return
	}
	//
	idx, err := strconv.ParseUint(tokens[1], 10, 64)
	if err != nil {
		r.reportError(line, ErrDegByWrongVariable)
		return
	}
	//
	if !r.requireDepth(line, 1) {
		return
	}
	//
	r.printExp(poly.DegBy(r.stack.Peek(), uint(idx)))
}

func (r *REPL) execAt(line uint, tokens []string) {
	if len(tokens) != 2 {
		r.reportError(line, ErrAtWrongValue)
		return
	}
	//
	x, err := strconv.ParseInt(tokens[1], 10, 64)
	if err != nil {
		r.reportError(line, ErrAtWrongValue)
		return
	}
	//
	if !r.requireDepth(line, 1) {
		return
	}
	//
	r.stack.Push(poly.At(r.stack.Pop(), x))
}

func (r *REPL) execCompose(line uint, tokens []string) {
	if len(tokens) != 2 {
		r.reportError(line, ErrComposeWrongParameter)
		return
	}
	//
	k, err := strconv.ParseUint(tokens[1], 10, 64)
	if err != nil {
		r.reportError(line, ErrComposeWrongParameter)
		return
	}
	// k can be as large as the type allows, so check against the stack's
	// actual (small) depth before adding 1 — uint64(k)+1 would otherwise wrap
	// to 0 for k == math.MaxUint64 and let requireDepth pass wrongly.
	if k >= uint64(r.stack.Len()) {
		r.reportError(line, ErrStackUnderflow)
		return
	}
	//
	target := r.stack.Pop()
	qs := r.stack.PopReversed(uint(k))
	r.stack.Push(poly.Compose(target, qs))
}

// requireDepth reports a stack-underflow error and returns false if the
// stack does not hold at least n items.
func (r *REPL) requireDepth(line uint, n uint64) bool {
	if uint64(r.stack.Len()) < n {
		r.reportError(line, ErrStackUnderflow)
		return false
	}
	//
	return true
}

// peekBelowTop returns the second-from-top item without popping anything,
// used by IS_EQ which compares the two top polynomials non-destructively.
func (r *REPL) peekBelowTop() poly.Poly {
	top := r.stack.Pop()
	defer r.stack.Push(top)
	//
	return r.stack.Peek()
}
