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
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/dawmd/polycalc/pkg/poly"
)

// REPL is the calculator's line reader and command dispatcher: it owns the
// one polynomial stack for a session and drives it from an input stream,
// writing query results to one sink and protocol errors to another.
type REPL struct {
	stack *poly.Stack
	out   io.Writer
	errs  io.Writer
}

// NewREPL returns a REPL with a fresh, empty stack.
func NewREPL(out, errs io.Writer) *REPL {
	return &REPL{stack: poly.NewStack(), out: out, errs: errs}
}

// Run reads in line by line, dispatching each one, until in is exhausted or
// returns a read error. Empty lines and lines whose first character is '#'
// are silently skipped, matching the protocol's comment
// convention; every other line is classified as either a command (it starts
// with a letter) or a polynomial literal to push (anything else).
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	var line uint
	//
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		//
		log.Debugf("line %d: %q", line, text)
		r.processLine(line, text)
		r.stack.Shrink()
	}
	//
	return scanner.Err()
}

func (r *REPL) processLine(line uint, text string) {
	if text == "" || strings.HasPrefix(text, "#") {
		return
	}
	//
	if isCommandStart(text[0]) {
		r.execCommand(line, text)
		return
	}
	//
	p, err := ParseLiteral(text)
	if err != nil {
		r.reportError(line, ErrWrongPoly)
		return
	}
	//
	r.stack.Push(p)
}

func isCommandStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func (r *REPL) reportError(line uint, kind ErrKind) {
	fmt.Fprintln(r.errs, (&LineError{Line: line, Kind: kind}).Error())
}

func (r *REPL) printBool(v bool) {
	if v {
		r.printString("1")
	} else {
		r.printString("0")
	}
}

func (r *REPL) printExp(e poly.Exp) {
	fmt.Fprintf(r.out, "%d\n", e)
}

func (r *REPL) printString(s string) {
	fmt.Fprintln(r.out, s)
}
