// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the data model of the glyph language: numeric
// and character scalars plus rank-1 and rank-n arrays, with the pervasive
// (element-wise, broadcasting) and structural operations defined on them.
// Values are immutable; every operation allocates its result.
package value

import (
	"fmt"

	"github.com/glyph-lang/glyph/config"
)

// Value is the interface satisfied by every datum on the stack.
type Value interface {
	// String is the debug form.
	String() string

	// Sprint is the display form, rendered under the configuration.
	Sprint(conf *config.Config) string

	// Rank is the number of axes: 0 for scalars, 1 for vectors.
	Rank() int
}

// Kind classifies an evaluation error.
type Kind int

const (
	Lex Kind = iota
	Compile
	Underflow
	Shape
	Type
	Domain
	Aborted
)

var kindNames = [...]string{
	Lex:       "lex error",
	Compile:   "compile error",
	Underflow: "stack underflow",
	Shape:     "shape mismatch",
	Type:      "type mismatch",
	Domain:    "domain error",
	Aborted:   "aborted",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "error"
	}
	return kindNames[k]
}

// Error is the error raised, by panicking, anywhere inside the core and
// recovered at the run boundary. No Error escapes package run as a panic.
type Error struct {
	Kind    Kind
	Message string
}

func (e Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// Errorf panics with an Error of the given kind. The panic is recovered
// in package run.
func Errorf(kind Kind, format string, args ...interface{}) {
	panic(Error{kind, fmt.Sprintf(format, args...)})
}

// debugConf is used by the String methods, which have no Config at hand.
var debugConf = &config.Config{}

// shapeOf returns the shape of v; scalars have a nil shape.
func shapeOf(v Value) []int {
	switch v := v.(type) {
	case Num, Char:
		return nil
	case Vector:
		return []int{len(v)}
	case Matrix:
		return v.shape
	}
	Errorf(Type, "cannot take the shape of %s", v)
	return nil
}

// sameShape reports whether two shapes are equal.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// shapeString renders a shape the way errors report it, e.g. [2 3].
func shapeString(shape []int) string {
	return fmt.Sprint(shape)
}

// size returns the number of elements a shape describes.
func size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// isChar reports whether the scalar is a character. Arrays are homogeneous,
// so testing the first element suffices.
func isChar(v Value) bool {
	switch v := v.(type) {
	case Char:
		return true
	case Vector:
		return len(v) > 0 && isChar(v[0])
	case Matrix:
		return len(v.data) > 0 && isChar(v.data[0])
	}
	return false
}
