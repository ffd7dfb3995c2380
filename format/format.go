// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format rewrites glyph source into its canonical spelling:
// every ASCII mnemonic becomes its glyph, and everything else — literals,
// comments, spacing, glyphs already in place — passes through verbatim.
// Formatting is idempotent: formatting formatted source changes nothing.
package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/glyph-lang/glyph/config"
	"github.com/glyph-lang/glyph/exec"
	"github.com/glyph-lang/glyph/scan"
)

// Source formats the source text. On a scan error it returns the input
// unchanged along with the error; the caller always has usable text.
//
// When conf.CommentColumn is set, a comment that follows code on its line
// is padded to start at that column (or one space after the code, when
// the code is longer). The column is measured after mnemonic rewriting,
// so a second pass computes the same padding. With the column unset,
// comments keep the spacing they were written with.
func Source(conf *config.Config, name, src string) (string, error) {
	tokens := scan.All(name, src)
	if last := tokens[len(tokens)-1]; last.Type == scan.Error {
		return src, Error{Line: last.Line, Message: last.Text}
	}

	var b strings.Builder
	col := 0         // rune column of the output line so far
	hasCode := false // the current output line has a non-space token
	last := byte(0)  // last byte written, to keep substituted glyphs from merging
	commentCol := conf.CommentColumn()
	for i, tok := range tokens {
		text := tok.Text
		switch tok.Type {
		case scan.EOF:
			continue
		case scan.Newline:
			b.WriteString(text)
			col = 0
			hasCode = false
			last = '\n'
			continue
		case scan.Identifier:
			if builtin := exec.Lookup(text); builtin != nil {
				if mergesWith(last, builtin.Glyph) {
					b.WriteByte(' ')
					col++
				}
				text = builtin.Glyph
			}
			hasCode = true
		case scan.Space:
			// A space run just before an aligned comment is replaced by
			// the padding, not written.
			if commentCol > 0 && hasCode && followedByComment(tokens, i) {
				continue
			}
		case scan.Comment:
			if commentCol > 0 && hasCode {
				pad := commentCol - col
				if pad < 1 {
					pad = 1
				}
				b.WriteString(strings.Repeat(" ", pad))
				col += pad
			}
			hasCode = true
		default:
			hasCode = true
		}
		b.WriteString(text)
		col += utf8.RuneCountInString(text)
		if len(text) > 0 {
			last = text[len(text)-1]
		}
	}
	return b.String(), nil
}

// mergesWith reports whether writing the glyph directly after the previous
// output byte would change how the result tokenizes: the dup glyph after a
// digit reads as the fractional point of a number literal, so 2dup must
// become 2 . rather than 2. .
func mergesWith(prev byte, glyph string) bool {
	return glyph == "." && '0' <= prev && prev <= '9'
}

// followedByComment reports whether the token after index i is a comment.
func followedByComment(tokens []scan.Token, i int) bool {
	return i+1 < len(tokens) && tokens[i+1].Type == scan.Comment
}

// Error is a formatting failure. It wraps the scan error; the source it
// was given is never altered on failure.
type Error struct {
	Line    int
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
