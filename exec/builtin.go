// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec defines the compiled form of a glyph program and the stack
// machine that runs it. The builtin table here is the single source of
// truth for the names, glyphs, arities and operation ids of the language;
// the scanner, formatter and compiler all resolve against it. It is built
// at init time and read-only afterwards, so concurrent runs need no locks.
package exec

import "unicode/utf8"

// ID identifies a builtin operation. IDs index the machine's jump table.
type ID int

const (
	// Stack manipulation.
	Dup ID = iota
	Pop
	Flip
	Over

	// Pervasive unary.
	Neg
	Abs
	Sign
	Sqrt
	Floor
	Ceil
	Round
	Not

	// Structural unary.
	Len
	Shape
	Range
	First
	Reverse
	Transpose
	Ravel

	// Pervasive binary.
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Min
	Max

	// Structural binary.
	Join
	Couple
	Reshape

	numBuiltins
)

// Builtin describes one operation: its ASCII mnemonic, its canonical
// glyph, and its stack effect. Pops values are consumed from the top of
// the stack; Pushes are produced.
type Builtin struct {
	ID     ID
	Name   string
	Glyph  string
	Pops   int
	Pushes int
}

// builtins lists every operation. The formatter rewrites Name to Glyph;
// the compiler accepts either spelling.
var builtins = [...]Builtin{
	{Dup, "dup", ".", 1, 2},
	{Pop, "pop", "◌", 1, 0},
	{Flip, "flip", ":", 2, 2},
	{Over, "over", ",", 2, 3},

	{Neg, "neg", "¯", 1, 1},
	{Abs, "abs", "⌵", 1, 1},
	{Sign, "sign", "±", 1, 1},
	{Sqrt, "sqrt", "√", 1, 1},
	{Floor, "floor", "⌊", 1, 1},
	{Ceil, "ceil", "⌈", 1, 1},
	{Round, "round", "⁅", 1, 1},
	{Not, "not", "¬", 1, 1},

	{Len, "len", "⧻", 1, 1},
	{Shape, "shape", "△", 1, 1},
	{Range, "range", "⇡", 1, 1},
	{First, "first", "⊢", 1, 1},
	{Reverse, "reverse", "⇌", 1, 1},
	{Transpose, "transpose", "⍉", 1, 1},
	{Ravel, "ravel", "♭", 1, 1},

	{Add, "add", "+", 2, 1},
	{Sub, "sub", "-", 2, 1},
	{Mul, "mul", "×", 2, 1},
	{Div, "div", "÷", 2, 1},
	{Mod, "mod", "◿", 2, 1},
	{Pow, "pow", "ⁿ", 2, 1},
	{Eq, "eq", "=", 2, 1},
	{Ne, "ne", "≠", 2, 1},
	{Lt, "lt", "<", 2, 1},
	{Le, "le", "≤", 2, 1},
	{Gt, "gt", ">", 2, 1},
	{Ge, "ge", "≥", 2, 1},
	{Min, "min", "↧", 2, 1},
	{Max, "max", "↥", 2, 1},

	{Join, "join", "⊂", 2, 1},
	{Couple, "couple", "⊟", 2, 1},
	{Reshape, "reshape", "↯", 2, 1},
}

var (
	byName  map[string]*Builtin
	byGlyph map[rune]*Builtin
)

func init() {
	byName = make(map[string]*Builtin, 2*len(builtins))
	byGlyph = make(map[rune]*Builtin, len(builtins))
	for i := range builtins {
		b := &builtins[i]
		byName[b.Name] = b
		byName[b.Glyph] = b
		r, _ := utf8.DecodeRuneInString(b.Glyph)
		byGlyph[r] = b
	}
}

// Lookup resolves a mnemonic or glyph spelling to its builtin, or nil.
func Lookup(name string) *Builtin {
	return byName[name]
}

// Predefined reports whether the word names a builtin.
func Predefined(name string) bool {
	return byName[name] != nil
}

// IsGlyph reports whether the rune is the glyph of some builtin.
func IsGlyph(r rune) bool {
	return byGlyph[r] != nil
}
