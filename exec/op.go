// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"

	"github.com/glyph-lang/glyph/value"
)

// OpCode tags a compiled operation.
type OpCode int

const (
	// Push pushes the literal operand.
	Push OpCode = iota
	// Call invokes the builtin identified by the operand id.
	Call
	// Jump transfers control to the target unconditionally.
	Jump
	// JumpIfFalse pops a scalar condition and jumps when it is zero.
	JumpIfFalse
	// Mark opens an array literal.
	Mark
	// Collect gathers everything above the matching Mark into an array.
	Collect
)

// Op is one compiled instruction. Ops are immutable once the compiler
// has produced them.
type Op struct {
	Code    OpCode
	Lit     value.Value // Push only
	Builtin ID          // Call only
	Target  int         // Jump, JumpIfFalse only
	Line    int         // source line, for error reports
}

func (op Op) String() string {
	switch op.Code {
	case Push:
		return fmt.Sprintf("push %s", op.Lit)
	case Call:
		return fmt.Sprintf("call %s", builtins[op.Builtin].Name)
	case Jump:
		return fmt.Sprintf("jump %d", op.Target)
	case JumpIfFalse:
		return fmt.Sprintf("jumpfalse %d", op.Target)
	case Mark:
		return "mark"
	case Collect:
		return "collect"
	}
	return fmt.Sprintf("op(%d)", op.Code)
}

// Program is a compiled operation sequence. It is read-only to the
// machine; one Program may be run any number of times, concurrently.
type Program struct {
	Name string // the name of the source, for error reports
	Ops  []Op
}
