// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Glyph is an interpreter for a small stack-based, array-oriented language.
Programs are sequences of tokens executed left to right against a value
stack: literals push themselves, operations pop their arguments from the
top of the stack and push their results.

	2 3 add

leaves 5 on the stack. Every operation has two spellings: an ASCII
mnemonic for typing, and a canonical symbolic glyph. The formatter
(glyph -fmt) rewrites mnemonics into glyphs and leaves everything else,
including spacing and comments, exactly as written:

	2 3 add    becomes    2 3 +
	[1 2 3] 2 mul    becomes    [1 2 3] 2 ×

Values are numbers (float64), characters, and rectangular arrays of
either, of any rank. A quoted string is a character vector. Bracketed
values collect into an array:

	[1 2 3]             a 3-vector
	[[1 2] [3 4]]       a 2x2 matrix
	"hello"             a 5-vector of chars

Arithmetic is pervasive: it applies element by element, and a scalar
broadcasts against every element of an array operand. Two array operands
must have equal shapes.

	[1 2 3] 10 mul      is [10 20 30]
	[1 2] [3 4] add     is [4 6]
	[1 2] [3 4 5] add   is a shape mismatch error

Stack operations.

	Name   Glyph   Effect
	dup    .       a -- a a
	pop    ◌       a --
	flip   :       a b -- b a
	over   ,       a b -- a b a

Unary operations.

	Name        Glyph   Meaning
	neg         ¯       Negate
	abs         ⌵       Absolute value
	sign        ±       Sign: -1, 0 or 1
	sqrt        √       Square root
	floor       ⌊       Round down
	ceil        ⌈       Round up
	round       ⁅       Round to nearest
	not         ¬       Logical not: 0 becomes 1, all else 0
	len         ⧻       Number of rows
	shape       △       Dimensions, as a vector
	range       ⇡       First n integers, from 0
	first       ⊢       First row
	reverse     ⇌       Reverse along the first axis
	transpose   ⍉       Move the first axis to the end
	ravel       ♭       Elements as a vector, in row-major order

Binary operations. The top of the stack is the right operand: 2 3 sub
is -1.

	Name      Glyph   Meaning
	add       +       Sum
	sub       -       Difference
	mul       ×       Product
	div       ÷       Quotient
	mod       ◿       Remainder, with the sign of the divisor
	pow       ⁿ       Exponentiation
	eq        =       Equal (0 or 1)
	ne        ≠       Not equal
	lt        <       Less than
	le        ≤       Less or equal
	gt        >       Greater than
	ge        ≥       Greater or equal
	min       ↧       Minimum
	max       ↥       Maximum
	join      ⊂       Concatenate along the first axis
	couple    ⊟       Two like-shaped values become the rows of an array
	reshape   ↯       Array of the given shape, cycling the data

Conditionals are written if ... else ... then. if pops a scalar from the
stack and runs the first branch when it is nonzero:

	1 2 gt if "yes" else "no" then

Comments run from # to the end of the line. A '-' immediately followed
by a digit is a negative number literal; with a space it is sub.

Usage:

	glyph [options] [file ...]

With no arguments and a terminal, glyph runs a read-eval-print loop.
Each line is evaluated on its own, from an empty stack, and the
resulting stack is printed bottom first.

The flags are:

	-e expr
		Evaluate the expression and exit.
	-fmt
		Format the input instead of evaluating it.
	-format string
		Go format string for printing numbers, e.g. %.2f.
	-config file
		Read settings (number format, comment alignment column,
		operation budget) from a YAML file.
	-maxsteps n
		Abort evaluation after n operations.
	-debug flags
		Comma-separated debug settings: ops traces each operation,
		panic disables error recovery.

*/
package main
