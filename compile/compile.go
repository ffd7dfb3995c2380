// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compile turns a token sequence into an executable Program.
// It resolves mnemonics and glyphs against the builtin table, parses
// literals, and rewrites the if/else/then construct into jumps whose
// targets are patched in as the matching keywords appear. Grouping is
// balanced here, structurally, so the machine never discovers an
// unmatched bracket at run time.
package compile

import (
	"unicode/utf8"

	"github.com/glyph-lang/glyph/exec"
	"github.com/glyph-lang/glyph/scan"
	"github.com/glyph-lang/glyph/value"
)

// pending records an open construct awaiting its closer: an if or else
// whose jump target is not yet known, or an array bracket.
type pending struct {
	kind  string // "if", "else" or "["
	index int    // index of the op to patch, or of the Mark
	line  int
}

type compiler struct {
	name string
	ops  []exec.Op
	open []pending
}

// Compile compiles the token stream into a Program. Errors are raised as
// value.Error panics: a Lex kind when the scanner handed us an Error
// token, Compile otherwise.
func Compile(name string, tokens []scan.Token) *exec.Program {
	c := &compiler{name: name}
	for _, tok := range tokens {
		c.token(tok)
	}
	if len(c.open) > 0 {
		p := c.open[len(c.open)-1]
		if p.kind == "[" {
			value.Errorf(value.Compile, "line %d: unmatched [", p.line)
		}
		value.Errorf(value.Compile, "line %d: %s without then", p.line, p.kind)
	}
	return &exec.Program{Name: name, Ops: c.ops}
}

func (c *compiler) emit(op exec.Op) {
	c.ops = append(c.ops, op)
}

func (c *compiler) token(tok scan.Token) {
	switch tok.Type {
	case scan.EOF, scan.Newline, scan.Space, scan.Comment:
		// No code.
	case scan.Error:
		value.Errorf(value.Lex, "line %d: %s", tok.Line, tok.Text)
	case scan.Number:
		n, err := value.ParseNum(tok.Text)
		if err != nil {
			value.Errorf(value.Compile, "line %d: %s", tok.Line, err)
		}
		c.emit(exec.Op{Code: exec.Push, Lit: n, Line: tok.Line})
	case scan.String:
		s := value.ParseString(tok.Text)
		c.emit(exec.Op{Code: exec.Push, Lit: value.NewString(s), Line: tok.Line})
	case scan.Char:
		s := value.ParseString(tok.Text)
		if utf8.RuneCountInString(s) != 1 {
			value.Errorf(value.Compile, "line %d: character literal %s holds %d characters", tok.Line, tok.Text, utf8.RuneCountInString(s))
		}
		r, _ := utf8.DecodeRuneInString(s)
		c.emit(exec.Op{Code: exec.Push, Lit: value.Char(r), Line: tok.Line})
	case scan.LeftBrack:
		c.open = append(c.open, pending{kind: "[", index: len(c.ops), line: tok.Line})
		c.emit(exec.Op{Code: exec.Mark, Line: tok.Line})
	case scan.RightBrack:
		c.pop(tok, "[")
		c.emit(exec.Op{Code: exec.Collect, Line: tok.Line})
	case scan.Identifier:
		switch tok.Text {
		case "if":
			c.open = append(c.open, pending{kind: "if", index: len(c.ops), line: tok.Line})
			c.emit(exec.Op{Code: exec.JumpIfFalse, Line: tok.Line})
		case "else":
			p := c.pop(tok, "if")
			// The unconditional jump carries the true branch past the
			// false one; the if lands just after it.
			c.open = append(c.open, pending{kind: "else", index: len(c.ops), line: tok.Line})
			c.emit(exec.Op{Code: exec.Jump, Line: tok.Line})
			c.ops[p.index].Target = len(c.ops)
		case "then":
			p := c.popEither(tok)
			c.ops[p.index].Target = len(c.ops)
		default:
			b := exec.Lookup(tok.Text)
			if b == nil {
				value.Errorf(value.Compile, "line %d: unknown name %q", tok.Line, tok.Text)
			}
			c.emit(exec.Op{Code: exec.Call, Builtin: b.ID, Line: tok.Line})
		}
	case scan.Glyph:
		b := exec.Lookup(tok.Text)
		if b == nil {
			value.Errorf(value.Compile, "line %d: unknown glyph %q", tok.Line, tok.Text)
		}
		c.emit(exec.Op{Code: exec.Call, Builtin: b.ID, Line: tok.Line})
	default:
		value.Errorf(value.Compile, "line %d: unexpected token %s", tok.Line, tok)
	}
}

// pop closes the innermost open construct, which must be of the given
// kind.
func (c *compiler) pop(tok scan.Token, kind string) pending {
	if len(c.open) == 0 {
		value.Errorf(value.Compile, "line %d: %s without %s", tok.Line, tok.Text, opener(tok.Text))
	}
	p := c.open[len(c.open)-1]
	if p.kind != kind {
		value.Errorf(value.Compile, "line %d: %s inside unclosed %s from line %d", tok.Line, tok.Text, p.kind, p.line)
	}
	c.open = c.open[:len(c.open)-1]
	return p
}

// popEither closes the innermost open construct for a then, which may
// terminate either an if or an else.
func (c *compiler) popEither(tok scan.Token) pending {
	if len(c.open) == 0 {
		value.Errorf(value.Compile, "line %d: then without if", tok.Line)
	}
	p := c.open[len(c.open)-1]
	if p.kind != "if" && p.kind != "else" {
		value.Errorf(value.Compile, "line %d: then inside unclosed %s from line %d", tok.Line, p.kind, p.line)
	}
	c.open = c.open[:len(c.open)-1]
	return p
}

// opener names the construct a closer belongs to, for error messages.
func opener(closer string) string {
	switch closer {
	case "]":
		return "["
	default:
		return "if"
	}
}
