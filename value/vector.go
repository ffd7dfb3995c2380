// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"bytes"

	"github.com/glyph-lang/glyph/config"
)

// Vector is a rank-1 array. Elements are always scalars of one tag:
// all Nums or all Chars.
type Vector []Value

func (v Vector) String() string {
	return "(" + v.Sprint(debugConf) + ")"
}

func (v Vector) Sprint(conf *config.Config) string {
	// A vector of chars prints as plain text, without padding or quotes.
	if v.AllChars() {
		var b bytes.Buffer
		for _, c := range v {
			b.WriteRune(rune(c.(Char)))
		}
		return b.String()
	}
	var b bytes.Buffer
	for i, elem := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.Sprint(conf))
	}
	return b.String()
}

func (v Vector) Rank() int {
	return 1
}

// AllChars reports whether the vector is entirely chars.
func (v Vector) AllChars() bool {
	for _, elem := range v {
		if _, ok := elem.(Char); !ok {
			return false
		}
	}
	return len(v) > 0
}

// NewVector builds a vector from scalar elements, checking that they are
// scalars of one tag.
func NewVector(elems []Value) Vector {
	chars, nums := 0, 0
	for _, e := range elems {
		switch e.(type) {
		case Num:
			nums++
		case Char:
			chars++
		default:
			Errorf(Type, "array element %s is not a scalar", e)
		}
	}
	if chars > 0 && nums > 0 {
		Errorf(Type, "array mixes numbers and characters")
	}
	return Vector(elems)
}

// Collect gathers the values of an array literal into a single array.
// Scalars become a vector; arrays of a common shape stack into an array
// of one higher rank. An empty literal is the empty numeric vector.
func Collect(elems []Value) Value {
	if len(elems) == 0 {
		return Vector{}
	}
	switch elems[0].(type) {
	case Num, Char:
		return NewVector(elems)
	}
	first := shapeOf(elems[0])
	firstChar := isChar(elems[0])
	data := make([]Value, 0, len(elems)*size(first))
	for _, e := range elems {
		if !sameShape(shapeOf(e), first) {
			Errorf(Shape, "array rows have shapes %s and %s", shapeString(first), shapeString(shapeOf(e)))
		}
		if isChar(e) != firstChar {
			Errorf(Type, "array mixes numbers and characters")
		}
		data = append(data, flatData(e)...)
	}
	shape := append([]int{len(elems)}, first...)
	return NewMatrix(shape, data)
}

// flatData returns the elements of v in row-major order.
func flatData(v Value) []Value {
	switch v := v.(type) {
	case Num, Char:
		return []Value{v}
	case Vector:
		return v
	case Matrix:
		return v.data
	}
	Errorf(Type, "cannot flatten %s", v)
	return nil
}
