// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"github.com/glyph-lang/glyph/config"
	"github.com/glyph-lang/glyph/value"
)

// Machine executes a Program against a value stack. A Machine belongs to
// a single run; it holds no state that survives Run, so evaluation of a
// given Program is deterministic.
type Machine struct {
	conf  *config.Config
	stack []value.Value
	steps int
}

// NewMachine returns a machine that runs under the configuration.
func NewMachine(conf *config.Config) *Machine {
	return &Machine{conf: conf}
}

// Stack returns the current stack, bottom first. After a failed run it
// holds the partial stack at the point of failure.
func (m *Machine) Stack() []value.Value {
	return m.stack
}

// marker is the sentinel an open array literal leaves on the stack.
// Collect gathers down to it. It never survives a successful run: the
// compiler guarantees every Mark has its Collect.
type marker struct{}

func (marker) String() string                    { return "[" }
func (marker) Sprint(conf *config.Config) string { return "[" }
func (marker) Rank() int                         { return 0 }

// Run executes the program from the beginning on a fresh stack and
// returns the final stack, bottom first. Failures are raised as
// value.Error panics, to be recovered at the run boundary.
func (m *Machine) Run(p *Program) []value.Value {
	m.stack = m.stack[:0]
	m.steps = 0
	budget := m.conf.MaxSteps()
	debug := m.conf.Debug("ops")
	for pc := 0; pc < len(p.Ops); {
		op := &p.Ops[pc]
		m.steps++
		if m.steps > budget {
			value.Errorf(value.Aborted, "operation budget of %d exceeded", budget)
		}
		if debug {
			fmt.Fprintf(m.conf.ErrOutput(), "%s:%d: %d: %s\n", p.Name, op.Line, pc, op)
		}
		switch op.Code {
		case Push:
			m.push(op.Lit)
			pc++
		case Call:
			b := &builtins[op.Builtin]
			if m.depth() < b.Pops {
				value.Errorf(value.Underflow, "%s needs %d values, have %d", b.Name, b.Pops, m.depth())
			}
			impls[op.Builtin](m)
			pc++
		case Jump:
			pc = op.Target
		case JumpIfFalse:
			if m.depth() < 1 {
				value.Errorf(value.Underflow, "if needs a condition, stack is empty")
			}
			if isTrue(m.pop()) {
				pc++
			} else {
				pc = op.Target
			}
		case Mark:
			m.push(marker{})
			pc++
		case Collect:
			m.collect()
			pc++
		}
	}
	return m.stack
}

// depth is the number of values above the most recent array marker, or
// the whole stack when no literal is open. Builtins must not reach below
// an open bracket.
func (m *Machine) depth() int {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if _, ok := m.stack[i].(marker); ok {
			return len(m.stack) - 1 - i
		}
	}
	return len(m.stack)
}

func (m *Machine) push(v value.Value) {
	m.stack = append(m.stack, v)
}

func (m *Machine) pop() value.Value {
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}

// top returns the i'th value from the top, 0 being the topmost.
func (m *Machine) top(i int) value.Value {
	return m.stack[len(m.stack)-1-i]
}

// collect gathers the values above the most recent marker into an array.
func (m *Machine) collect() {
	i := len(m.stack) - 1
	for ; i >= 0; i-- {
		if _, ok := m.stack[i].(marker); ok {
			break
		}
	}
	if i < 0 {
		// Cannot happen: the compiler balances brackets.
		value.Errorf(value.Compile, "unmatched ]")
	}
	elems := append([]value.Value{}, m.stack[i+1:]...)
	m.stack = m.stack[:i]
	m.push(value.Collect(elems))
}

// isTrue interprets a scalar condition: any nonzero number.
func isTrue(v value.Value) bool {
	n, ok := v.(value.Num)
	if !ok {
		value.Errorf(value.Type, "condition %s is not a number", v)
	}
	return n != 0
}

// impls is the jump table of builtin implementations, indexed by ID.
var impls [numBuiltins]func(*Machine)

func init() {
	impls = [numBuiltins]func(*Machine){
		Dup: func(m *Machine) {
			m.push(m.top(0))
		},
		Pop: func(m *Machine) {
			m.pop()
		},
		Flip: func(m *Machine) {
			b, a := m.pop(), m.pop()
			m.push(b)
			m.push(a)
		},
		Over: func(m *Machine) {
			m.push(m.top(1))
		},

		Neg:       unary("neg"),
		Abs:       unary("abs"),
		Sign:      unary("sign"),
		Sqrt:      unary("sqrt"),
		Floor:     unary("floor"),
		Ceil:      unary("ceil"),
		Round:     unary("round"),
		Not:       unary("not"),
		Len:       unary("len"),
		Shape:     unary("shape"),
		Range:     unary("range"),
		First:     unary("first"),
		Reverse:   unary("reverse"),
		Transpose: unary("transpose"),
		Ravel:     unary("ravel"),

		Add:     binary("add"),
		Sub:     binary("sub"),
		Mul:     binary("mul"),
		Div:     binary("div"),
		Mod:     binary("mod"),
		Pow:     binary("pow"),
		Eq:      binary("eq"),
		Ne:      binary("ne"),
		Lt:      binary("lt"),
		Le:      binary("le"),
		Gt:      binary("gt"),
		Ge:      binary("ge"),
		Min:     binary("min"),
		Max:     binary("max"),
		Join:    binary("join"),
		Couple:  binary("couple"),
		Reshape: binary("reshape"),
	}
}

// unary adapts a value.Unary operator to a stack effect.
func unary(op string) func(*Machine) {
	return func(m *Machine) {
		m.push(value.Unary(op, m.pop()))
	}
}

// binary adapts a value.Binary operator to a stack effect. The top of
// the stack is the right operand: 2 3 sub is -1.
func binary(op string) func(*Machine) {
	return func(m *Machine) {
		right := m.pop()
		left := m.pop()
		m.push(value.Binary(left, op, right))
	}
}
