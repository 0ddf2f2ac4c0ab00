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
	"strings"
	"testing"
)

func run(t *testing.T, program string) (string, string) {
	t.Helper()
	//
	var out, errs strings.Builder
	r := NewREPL(&out, &errs)
	//
	if err := r.Run(strings.NewReader(program)); err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	//
	return out.String(), errs.String()
}

func Test_REPL_PushAndPrint_01(t *testing.T) {
	out, errs := run(t, "5\nPRINT\n")
	//
	if errs != "" {
		t.Fatalf("unexpected errors: %q", errs)
	}
	//
	if out != "5\n" {
		t.Errorf("got %q, expected %q", out, "5\n")
	}
}

func Test_REPL_ArithmeticSequence_01(t *testing.T) {
	// push 2, push 3, ADD, PRINT -> 5
	out, errs := run(t, "2\n3\nADD\nPRINT\n")
	//
	if errs != "" {
		t.Fatalf("unexpected errors: %q", errs)
	}
	//
	if out != "5\n" {
		t.Errorf("got %q, expected %q", out, "5\n")
	}
}

func Test_REPL_Sub_Order_01(t *testing.T) {
	// push 10, push 3, SUB -> 10 - 3 = 7 (earlier pushed minus later pushed)
	out, _ := run(t, "10\n3\nSUB\nPRINT\n")
	//
	if out != "7\n" {
		t.Errorf("got %q, expected %q", out, "7\n")
	}
}

func Test_REPL_ZeroIsCoeffIsZero_01(t *testing.T) {
	out, _ := run(t, "ZERO\nIS_COEFF\nIS_ZERO\n")
	//
	if out != "1\n1\n" {
		t.Errorf("got %q, expected %q", out, "1\n1\n")
	}
}

func Test_REPL_Clone_01(t *testing.T) {
	out, errs := run(t, "7\nCLONE\nADD\nPRINT\n")
	//
	if errs != "" {
		t.Fatalf("unexpected errors: %q", errs)
	}
	//
	if out != "14\n" {
		t.Errorf("got %q, expected %q", out, "14\n")
	}
}

func Test_REPL_Deg_01(t *testing.T) {
	out, _ := run(t, "(1,2)+(1,0)\nDEG\n")
	//
	if out != "2\n" {
		t.Errorf("got %q, expected %q", out, "2\n")
	}
}

func Test_REPL_DegBy_01(t *testing.T) {
	out, _ := run(t, "((1,3),2)\nDEG_BY 1\n")
	//
	if out != "3\n" {
		t.Errorf("got %q, expected %q", out, "3\n")
	}
}

func Test_REPL_At_01(t *testing.T) {
	out, _ := run(t, "(1,0)+(1,1)+(1,2)\nAT 3\nPRINT\n")
	//
	if out != "13\n" {
		t.Errorf("got %q, expected %q", out, "13\n")
	}
}

func Test_REPL_Compose_01(t *testing.T) {
	// push substitution q(x) = x+1 first, then the composition target
	// p(x) = x^2 on top, so COMPOSE's target-then-substitutions pop order
	// lines up: p(q(x)) = x^2+2x+1.
	out, _ := run(t, "(1,0)+(1,1)\n(1,2)\nCOMPOSE 1\nPRINT\n")
	//
	if out != "(1,0)+(2,1)+(1,2)\n" {
		t.Errorf("got %q, expected %q", out, "(1,0)+(2,1)+(1,2)\n")
	}
}

func Test_REPL_Pop_01(t *testing.T) {
	out, errs := run(t, "1\n2\nPOP\nPRINT\n")
	//
	if errs != "" {
		t.Fatalf("unexpected errors: %q", errs)
	}
	//
	if out != "1\n" {
		t.Errorf("got %q, expected %q", out, "1\n")
	}
}

func Test_REPL_StackUnderflow_01(t *testing.T) {
	_, errs := run(t, "ADD\n")
	//
	if errs != "ERROR 1 STACK UNDERFLOW\n" {
		t.Errorf("got %q", errs)
	}
}

func Test_REPL_WrongCommand_01(t *testing.T) {
	_, errs := run(t, "BANANA\n")
	//
	if errs != "ERROR 1 WRONG COMMAND\n" {
		t.Errorf("got %q", errs)
	}
}

func Test_REPL_WrongCommand_ExtraArgs_01(t *testing.T) {
	_, errs := run(t, "ZERO 5\n")
	//
	if errs != "ERROR 1 WRONG COMMAND\n" {
		t.Errorf("got %q", errs)
	}
}

func Test_REPL_WrongPoly_01(t *testing.T) {
	_, errs := run(t, "(1,)\n")
	//
	if errs != "ERROR 1 WRONG POLY\n" {
		t.Errorf("got %q", errs)
	}
}

func Test_REPL_DegByWrongVariable_01(t *testing.T) {
	_, errs := run(t, "1\nDEG_BY -1\n")
	//
	if errs != "ERROR 2 DEG BY WRONG VARIABLE\n" {
		t.Errorf("got %q", errs)
	}
}

func Test_REPL_AtWrongValue_01(t *testing.T) {
	_, errs := run(t, "1\nAT abc\n")
	//
	if errs != "ERROR 2 AT WRONG VALUE\n" {
		t.Errorf("got %q", errs)
	}
}

func Test_REPL_ComposeWrongParameter_01(t *testing.T) {
	_, errs := run(t, "1\nCOMPOSE\n")
	//
	if errs != "ERROR 2 COMPOSE WRONG PARAMETER\n" {
		t.Errorf("got %q", errs)
	}
}

func Test_REPL_CommentsAndBlankLinesIgnored_01(t *testing.T) {
	out, errs := run(t, "# a comment\n\n5\nPRINT\n")
	//
	if errs != "" {
		t.Fatalf("unexpected errors: %q", errs)
	}
	//
	if out != "5\n" {
		t.Errorf("got %q, expected %q", out, "5\n")
	}
}

func Test_REPL_ErrorDoesNotPoisonLaterLines_01(t *testing.T) {
	// A failed AT on line 2 must not affect the independent, valid AT on
	// line 4.
	out, errs := run(t, "1\nAT abc\n2\nAT 5\nPRINT\n")
	//
	if errs != "ERROR 2 AT WRONG VALUE\n" {
		t.Errorf("got %q", errs)
	}
	//
	if out != "2\n" {
		t.Errorf("got %q, expected %q", out, "2\n")
	}
}
