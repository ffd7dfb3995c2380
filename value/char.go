// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strconv"
	"unicode/utf8"

	"github.com/glyph-lang/glyph/config"
)

// Char is a character scalar.
type Char rune

func (c Char) String() string {
	return "'" + string(rune(c)) + "'"
}

func (c Char) Sprint(conf *config.Config) string {
	// Chars are always textual; the number format does not apply.
	return string(rune(c))
}

func (c Char) Rank() int {
	return 0
}

// ParseString parses a quoted string literal, quotes included, into its
// contents. The result must contain only valid code points.
func ParseString(s string) string {
	str, ok := unquote(s)
	if !ok {
		Errorf(Compile, "invalid string syntax %s", s)
	}
	if !utf8.ValidString(str) {
		Errorf(Compile, "invalid code points in string %s", s)
	}
	return str
}

// NewString builds a char vector from the text.
func NewString(s string) Vector {
	elems := make([]Value, 0, len(s))
	for _, r := range s {
		elems = append(elems, Char(r))
	}
	return Vector(elems)
}

// unquote is a simplified strconv.Unquote that treats ' and " equally.
// The return value is the string and a boolean rather than an error,
// which was almost always the same anyway.
func unquote(s string) (t string, ok bool) {
	n := len(s)
	if n < 2 {
		return
	}
	quote := s[0]
	if quote != s[n-1] {
		return
	}
	s = s[1 : n-1]
	if quote != '"' && quote != '\'' {
		return
	}
	if contains(s, '\n') {
		return
	}

	// Is it trivial? Avoid allocation.
	if !contains(s, '\\') && !contains(s, quote) {
		return s, true
	}

	var runeTmp [utf8.UTFMax]byte
	buf := make([]byte, 0, 3*len(s)/2)
	for len(s) > 0 {
		c, multibyte, ss, err := strconv.UnquoteChar(s, quote)
		if err != nil {
			return
		}
		s = ss
		if c < utf8.RuneSelf || !multibyte {
			buf = append(buf, byte(c))
		} else {
			n := utf8.EncodeRune(runeTmp[:], c)
			buf = append(buf, runeTmp[:n]...)
		}
	}
	return string(buf), true
}

// contains reports whether the string contains the byte c.
func contains(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}
