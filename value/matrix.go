// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"bytes"
	"strings"

	"github.com/glyph-lang/glyph/config"
)

/*
    [2 3] [1 2 3 4 5 6] reshape

 1 2 3
 4 5 6
*/

// Matrix is an array of rank at least 2: an explicit shape plus the
// elements in row-major order. The element count always equals the
// product of the shape.
type Matrix struct {
	shape []int
	data  Vector
}

// Shape returns the shape of the matrix.
func (m Matrix) Shape() []int {
	return m.shape
}

// Data returns the elements of the matrix in row-major order.
func (m Matrix) Data() Vector {
	return m.data
}

func (m Matrix) Rank() int {
	return len(m.shape)
}

// elemSize returns the number of elements of the submatrices forming the
// elements of the matrix: for shape [a, b, c, ...] it is b*c*....
func (m Matrix) elemSize() int {
	return size(m.shape[1:])
}

// NewMatrix makes a new array of the given shape. Rank 1 demotes to a
// Vector and rank 0 to the single scalar, so the result is always in
// canonical form.
func NewMatrix(shape []int, data []Value) Value {
	n := 1
	for _, d := range shape {
		if d < 0 {
			Errorf(Domain, "negative dimension in shape %s", shapeString(shape))
		}
		n *= d
		if n > 1e9 {
			Errorf(Domain, "array too large: shape %s", shapeString(shape))
		}
	}
	if n != len(data) {
		Errorf(Shape, "inconsistent shape %s for %d elements", shapeString(shape), len(data))
	}
	switch len(shape) {
	case 0:
		return data[0]
	case 1:
		return Vector(data)
	}
	return Matrix{shape: shape, data: data}
}

func (m Matrix) String() string {
	return "(" + m.Sprint(debugConf) + ")"
}

func (m Matrix) Sprint(conf *config.Config) string {
	var b bytes.Buffer
	switch len(m.shape) {
	case 2:
		nrows, ncols := m.shape[0], m.shape[1]
		if nrows == 0 || ncols == 0 {
			return ""
		}
		// If it's all chars, print it without padding or quotes.
		if m.data.AllChars() {
			for i := 0; i < nrows; i++ {
				if i > 0 {
					b.WriteByte('\n')
				}
				b.WriteString(m.data[i*ncols : (i+1)*ncols].Sprint(conf))
			}
			break
		}
		// Print the elements individually, then pad so columns line up.
		strs := make([]string, len(m.data))
		wid := 1
		for i, elem := range m.data {
			strs[i] = elem.Sprint(conf)
			if wid < len(strs[i]) {
				wid = len(strs[i])
			}
		}
		m.write2d(&b, strs, wid)
	default:
		// Rank 3 and up: print the submatrices, separated by blank lines.
		n := m.shape[0]
		elemSize := m.elemSize()
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString("\n\n")
			}
			sub := NewMatrix(m.shape[1:], m.data[i*elemSize:(i+1)*elemSize])
			b.WriteString(sub.Sprint(conf))
		}
	}
	return b.String()
}

// write2d prints the 2d matrix into the buffer. strs is a slice of
// already-printed elements; the receiver provides only the shape.
func (m Matrix) write2d(b *bytes.Buffer, strs []string, width int) {
	nrows, ncols := m.shape[0], m.shape[1]
	for row := 0; row < nrows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		index := row * ncols
		for col := 0; col < ncols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			s := strs[index]
			if pad := width - len(s); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(s)
			index++
		}
	}
}
