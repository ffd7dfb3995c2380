// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

// Unary operators.

// A unaryOp is either pervasive, with a numeric element function that is
// mapped over the argument after broadcasting, or structural, with a
// whole-value function.
type unaryOp struct {
	name  string
	numFn func(float64) float64
	fn    func(Value) Value
}

// UnaryOps maps mnemonic names to implementations. It is built once at
// init time and read-only afterwards.
var UnaryOps map[string]*unaryOp

// Unary applies the named unary operator.
func Unary(op string, v Value) Value {
	o := UnaryOps[op]
	if o == nil {
		Errorf(Compile, "unary %q not implemented", op)
	}
	if o.fn != nil {
		return o.fn(v)
	}
	return pervade1(o, v)
}

// pervade1 maps the element function over v.
func pervade1(o *unaryOp, v Value) Value {
	switch v := v.(type) {
	case Num:
		return Num(o.numFn(float64(v)))
	case Char:
		Errorf(Type, "%s of char %s", o.name, v)
	case Vector:
		n := make([]Value, len(v))
		for i, elem := range v {
			n[i] = pervade1(o, elem)
		}
		return Vector(n)
	case Matrix:
		n := make([]Value, len(v.data))
		for i, elem := range v.data {
			n[i] = pervade1(o, elem)
		}
		return NewMatrix(v.shape, n)
	}
	Errorf(Type, "cannot take %s of %s", o.name, v)
	return nil
}

func init() {
	ops := []*unaryOp{
		{name: "neg", numFn: func(f float64) float64 { return -f }},
		{name: "abs", numFn: math.Abs},
		{name: "sign", numFn: func(f float64) float64 {
			switch {
			case f < 0:
				return -1
			case f > 0:
				return 1
			}
			return 0
		}},
		{name: "sqrt", numFn: func(f float64) float64 {
			if f < 0 {
				Errorf(Domain, "sqrt of negative number %v", Num(f))
			}
			return math.Sqrt(f)
		}},
		{name: "floor", numFn: math.Floor},
		{name: "ceil", numFn: math.Ceil},
		{name: "round", numFn: math.Round},
		{name: "not", numFn: func(f float64) float64 {
			if f == 0 {
				return 1
			}
			return 0
		}},

		{name: "len", fn: length},
		{name: "shape", fn: shape},
		{name: "range", fn: rangeOf},
		{name: "first", fn: first},
		{name: "reverse", fn: reverse},
		{name: "transpose", fn: transpose},
		{name: "ravel", fn: ravel},
	}
	UnaryOps = make(map[string]*unaryOp, len(ops))
	for _, o := range ops {
		UnaryOps[o.name] = o
	}
}

// length implements len: the number of rows, which for a vector is the
// element count. Scalars have length 1.
func length(v Value) Value {
	switch v := v.(type) {
	case Num, Char:
		return Num(1)
	case Vector:
		return Num(len(v))
	case Matrix:
		return Num(v.shape[0])
	}
	Errorf(Type, "cannot take len of %s", v)
	return nil
}

// shape implements shape: the dimensions as a numeric vector. The shape
// of a scalar is the empty vector.
func shape(v Value) Value {
	dims := shapeOf(v)
	elems := make([]Value, len(dims))
	for i, d := range dims {
		elems[i] = Num(d)
	}
	return Vector(elems)
}

// rangeOf implements range: the first n integers, starting at 0.
func rangeOf(v Value) Value {
	n := asIndex(v, "range")
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = Num(i)
	}
	return Vector(elems)
}

// first implements first: the first row of its argument.
func first(v Value) Value {
	switch v := v.(type) {
	case Num, Char:
		return v
	case Vector:
		if len(v) == 0 {
			Errorf(Domain, "first of empty vector")
		}
		return v[0]
	case Matrix:
		if v.shape[0] == 0 {
			Errorf(Domain, "first of empty array")
		}
		return NewMatrix(v.shape[1:], v.data[:v.elemSize()])
	}
	Errorf(Type, "cannot take first of %s", v)
	return nil
}

// reverse implements reverse, along the first axis.
func reverse(v Value) Value {
	switch v := v.(type) {
	case Num, Char:
		return v
	case Vector:
		n := make([]Value, len(v))
		for i, elem := range v {
			n[len(v)-1-i] = elem
		}
		return Vector(n)
	case Matrix:
		n := make([]Value, len(v.data))
		dim := v.elemSize()
		nrows := v.shape[0]
		for row := 0; row < nrows; row++ {
			copy(n[(nrows-1-row)*dim:(nrows-row)*dim], v.data[row*dim:(row+1)*dim])
		}
		return NewMatrix(v.shape, n)
	}
	Errorf(Type, "cannot reverse %s", v)
	return nil
}

// transpose implements transpose: the first axis moves to the end, so a
// rank-2 matrix transposes in the usual sense. Scalars and vectors are
// unchanged.
func transpose(v Value) Value {
	m, ok := v.(Matrix)
	if !ok {
		switch v.(type) {
		case Num, Char, Vector:
			return v
		}
		Errorf(Type, "cannot transpose %s", v)
	}
	shape := append([]int{}, m.shape[1:]...)
	shape = append(shape, m.shape[0])
	n := make([]Value, len(m.data))
	lead := m.shape[0]
	rest := m.elemSize()
	// Element (i, j...) of the argument becomes (j..., i) of the result.
	for i := 0; i < lead; i++ {
		for j := 0; j < rest; j++ {
			n[j*lead+i] = m.data[i*rest+j]
		}
	}
	return NewMatrix(shape, n)
}

// ravel implements ravel: the elements as a vector in row-major order.
func ravel(v Value) Value {
	switch v := v.(type) {
	case Num, Char:
		return Vector{v}
	case Vector:
		return v
	case Matrix:
		return v.data
	}
	Errorf(Type, "cannot ravel %s", v)
	return nil
}
