// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes glyph source text. Unlike most scanners it emits
// whitespace and comment tokens too: the formatter reconstructs the source
// from the token stream, so the concatenation of every token's text must
// reproduce the input byte for byte.
package scan

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/glyph-lang/glyph/exec"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Pos  int    // Byte offset of the token in the input.
	Line int    // The line number on which this token appears.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota
	Error      // error occurred; text is the message
	Newline
	Space      // run of spaces or tabs
	Comment    // '#' to end of line, excluding the newline
	Number     // number literal
	String     // double-quoted string, including the quotes
	Char       // single-quoted char, including the quotes
	Identifier // alphanumeric word: a mnemonic or a control keyword
	Glyph      // a single symbolic operator rune
	LeftBrack  // '['
	RightBrack // ']'
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "error",
	Newline:    "newline",
	Space:      "space",
	Comment:    "comment",
	Number:     "number",
	String:     "string",
	Char:       "char",
	Identifier: "identifier",
	Glyph:      "glyph",
	LeftBrack:  "'['",
	RightBrack: "']'",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	name  string // the name of the input; used only for error reports
	input string // the string being scanned
	pos   int    // current position in the input
	start int    // start position of this token
	width int    // width of the last rune read
	line  int    // 1-based line number of the token being scanned
	done  bool   // an Error token has been emitted; only EOF follows
	token Token
}

// New creates a new scanner for the input string.
func New(name, input string) *Scanner {
	return &Scanner{
		name:  name,
		input: input,
		line:  1,
	}
}

// Next returns the next token.
func (l *Scanner) Next() Token {
	if l.done {
		return Token{EOF, l.pos, l.line, "EOF"}
	}
	l.token = Token{EOF, l.pos, l.line, "EOF"}
	state := lexAny
	for state != nil {
		state = state(l)
	}
	return l.token
}

// All scans the entire input. The returned slice ends with either an
// Error token or the EOF token.
func All(name, input string) []Token {
	l := New(name, input)
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF || tok.Type == Error {
			return tokens
		}
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.width
}

// emit passes a token back to the client.
func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	l.token = Token{t, l.start, l.line, text}
	if t == Newline {
		l.line++
	}
	l.start = l.pos
	return nil
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for l.accept(valid) {
	}
}

// errorf emits an Error token and stops the scan.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.start, l.line, fmt.Sprintf(format, args...)}
	l.done = true
	return nil
}

// state functions

// lexAny is the top-level state.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		return l.emit(Newline)
	case r == ' ' || r == '\t' || r == '\r':
		return lexSpace
	case r == '#':
		return lexComment
	case r == '"' || r == '\'':
		l.backup() // So lexQuote can read the quote character.
		return lexQuote
	case r == '[':
		return l.emit(LeftBrack)
	case r == ']':
		return l.emit(RightBrack)
	case r == '-':
		// A '-' immediately followed by a digit begins a negative
		// number literal; otherwise it is the sub glyph.
		if isDigit(l.peek()) {
			return lexNumber
		}
		return l.emit(Glyph)
	case isDigit(r):
		l.backup()
		return lexNumber
	case exec.IsGlyph(r):
		return l.emit(Glyph)
	case isAlphaNumeric(r):
		l.backup()
		return lexIdentifier
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters. One space has been seen.
func lexSpace(l *Scanner) stateFn {
	for {
		r := l.peek()
		if r != ' ' && r != '\t' && r != '\r' {
			break
		}
		l.next()
	}
	return l.emit(Space)
}

// lexComment scans a comment. The '#' has been consumed. The trailing
// newline is not part of the comment token.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.next()
		if r == eof {
			break
		}
		if r == '\n' {
			l.backup()
			break
		}
	}
	return l.emit(Comment)
}

// lexNumber scans a number: an optional leading '-' (already consumed,
// when present), digits, an optional fraction, an optional exponent.
// The scan is deliberately loose; the compiler's strconv call makes the
// precise judgement.
func lexNumber(l *Scanner) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	if l.accept("eE") {
		l.accept("+-")
		l.acceptRun(digits)
	}
	return l.emit(Number)
}

// lexQuote scans a quoted string or char literal.
// The next character is the quote.
func lexQuote(l *Scanner) stateFn {
	quote := l.next()
	for {
		switch l.next() {
		case '\\':
			if r := l.next(); r != eof && r != '\n' {
				break
			}
			fallthrough
		case eof, '\n':
			if quote == '\'' {
				return l.errorf("unterminated character literal")
			}
			return l.errorf("unterminated quoted string")
		case quote:
			if quote == '\'' {
				return l.emit(Char)
			}
			return l.emit(String)
		}
	}
}

// lexIdentifier scans an alphanumeric word. A glyph rune ends the word
// even when Unicode classifies it as a letter, as it does for ⁿ.
func lexIdentifier(l *Scanner) stateFn {
	for r := l.peek(); isAlphaNumeric(r) && !exec.IsGlyph(r); r = l.peek() {
		l.next()
	}
	return l.emit(Identifier)
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is an ASCII digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
