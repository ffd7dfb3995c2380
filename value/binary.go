// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math"

// Binary operators.

// A binaryOp is either pervasive, applied element-wise after broadcasting,
// or structural, with a whole-value function. Pervasive ops have a numeric
// element function and, for the comparisons, a char element function;
// chars fed to an op with no char function are a type mismatch.
type binaryOp struct {
	name   string
	numFn  func(a, b float64) float64
	charFn func(a, b rune) float64
	fn     func(u, v Value) Value
}

// BinaryOps maps mnemonic names to implementations. It is built once at
// init time and read-only afterwards.
var BinaryOps map[string]*binaryOp

// Binary applies the named binary operator to u and v.
func Binary(u Value, op string, v Value) Value {
	o := BinaryOps[op]
	if o == nil {
		Errorf(Compile, "binary %q not implemented", op)
	}
	if o.fn != nil {
		return o.fn(u, v)
	}
	return pervade2(o, u, v)
}

// pervade2 applies the element function to u and v after broadcasting:
// a scalar pairs with every element of an array operand; two arrays must
// have equal shapes.
func pervade2(o *binaryOp, u, v Value) Value {
	uShape, vShape := shapeOf(u), shapeOf(v)
	switch {
	case len(uShape) == 0 && len(vShape) == 0:
		return o.scalar(u, v)
	case len(uShape) == 0:
		return mapData(v, func(elem Value) Value { return pervade2(o, u, elem) })
	case len(vShape) == 0:
		return mapData(u, func(elem Value) Value { return pervade2(o, elem, v) })
	}
	if !sameShape(uShape, vShape) {
		Errorf(Shape, "%s of shapes %s and %s", o.name, shapeString(uShape), shapeString(vShape))
	}
	ud, vd := flatData(u), flatData(v)
	n := make([]Value, len(ud))
	for i := range ud {
		n[i] = pervade2(o, ud[i], vd[i])
	}
	return NewMatrix(uShape, n)
}

// scalar applies the element function to two scalars.
func (o *binaryOp) scalar(u, v Value) Value {
	un, uNum := u.(Num)
	vn, vNum := v.(Num)
	if uNum && vNum {
		return Num(o.numFn(float64(un), float64(vn)))
	}
	uc, uChar := u.(Char)
	vc, vChar := v.(Char)
	if uChar && vChar && o.charFn != nil {
		return Num(o.charFn(rune(uc), rune(vc)))
	}
	Errorf(Type, "cannot compute %s of %s and %s", o.name, u, v)
	return nil
}

// mapData applies fn to every element of the array v, preserving shape.
func mapData(v Value, fn func(Value) Value) Value {
	data := flatData(v)
	n := make([]Value, len(data))
	for i, elem := range data {
		n[i] = fn(elem)
	}
	return NewMatrix(shapeOf(v), n)
}

// toBool turns a boolean into 0 or 1.
func toBool(t bool) float64 {
	if t {
		return 1
	}
	return 0
}

func init() {
	ops := []*binaryOp{
		{name: "add", numFn: func(a, b float64) float64 { return a + b }},
		{name: "sub", numFn: func(a, b float64) float64 { return a - b }},
		{name: "mul", numFn: func(a, b float64) float64 { return a * b }},
		{name: "div", numFn: func(a, b float64) float64 {
			if b == 0 {
				Errorf(Domain, "division by zero")
			}
			return a / b
		}},
		{name: "mod", numFn: func(a, b float64) float64 {
			if b == 0 {
				Errorf(Domain, "modulus by zero")
			}
			// The result takes the sign of the divisor, as in APL.
			m := math.Mod(a, b)
			if m != 0 && (m < 0) != (b < 0) {
				m += b
			}
			return m
		}},
		{name: "pow", numFn: math.Pow},
		{name: "min", numFn: math.Min},
		{name: "max", numFn: math.Max},

		{name: "eq", numFn: func(a, b float64) float64 { return toBool(a == b) },
			charFn: func(a, b rune) float64 { return toBool(a == b) }},
		{name: "ne", numFn: func(a, b float64) float64 { return toBool(a != b) },
			charFn: func(a, b rune) float64 { return toBool(a != b) }},
		{name: "lt", numFn: func(a, b float64) float64 { return toBool(a < b) },
			charFn: func(a, b rune) float64 { return toBool(a < b) }},
		{name: "le", numFn: func(a, b float64) float64 { return toBool(a <= b) },
			charFn: func(a, b rune) float64 { return toBool(a <= b) }},
		{name: "gt", numFn: func(a, b float64) float64 { return toBool(a > b) },
			charFn: func(a, b rune) float64 { return toBool(a > b) }},
		{name: "ge", numFn: func(a, b float64) float64 { return toBool(a >= b) },
			charFn: func(a, b rune) float64 { return toBool(a >= b) }},

		{name: "reshape", fn: reshape},
		{name: "join", fn: join},
		{name: "couple", fn: couple},
	}
	BinaryOps = make(map[string]*binaryOp, len(ops))
	for _, o := range ops {
		BinaryOps[o.name] = o
	}
}

// reshape implements binary reshape: an array of shape u with the data of
// v, cycling the data when the new shape needs more elements.
func reshape(u, v Value) Value {
	var dims []int
	switch u := u.(type) {
	case Num:
		dims = []int{asIndex(u, "reshape")}
	case Vector:
		dims = make([]int, len(u))
		for i, d := range u {
			dims[i] = asIndex(d, "reshape")
		}
	default:
		Errorf(Type, "reshape: shape %s is not a number or vector", u)
	}
	data := flatData(v)
	if len(data) == 0 {
		Errorf(Domain, "reshape of empty array")
	}
	n := size(dims)
	if n > 1e9 {
		Errorf(Domain, "reshape: too many elements")
	}
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = data[i%len(data)]
	}
	return NewMatrix(dims, elems)
}

// join implements join: concatenation along the first axis. Scalars act
// as single elements (or single rows, against a matrix of vectors' rank).
func join(u, v Value) Value {
	if isChar(u) != isChar(v) && size(shapeOf(u)) > 0 && size(shapeOf(v)) > 0 {
		Errorf(Type, "join of numbers and characters")
	}
	ur, vr := u.Rank(), v.Rank()
	switch {
	case ur <= 1 && vr <= 1:
		return NewVector(append(append([]Value{}, flatData(u)...), flatData(v)...))
	case ur == vr:
		um, vm := u.(Matrix), v.(Matrix)
		if !sameShape(um.shape[1:], vm.shape[1:]) {
			Errorf(Shape, "join of shapes %s and %s", shapeString(um.shape), shapeString(vm.shape))
		}
		shape := append([]int{um.shape[0] + vm.shape[0]}, um.shape[1:]...)
		return NewMatrix(shape, append(append([]Value{}, um.data...), vm.data...))
	case ur == vr-1:
		// u is a single row for v.
		vm := v.(Matrix)
		if !sameShape(shapeOf(u), vm.shape[1:]) {
			Errorf(Shape, "join of shapes %s and %s", shapeString(shapeOf(u)), shapeString(vm.shape))
		}
		shape := append([]int{vm.shape[0] + 1}, vm.shape[1:]...)
		return NewMatrix(shape, append(append([]Value{}, flatData(u)...), vm.data...))
	case ur-1 == vr:
		um := u.(Matrix)
		if !sameShape(um.shape[1:], shapeOf(v)) {
			Errorf(Shape, "join of shapes %s and %s", shapeString(um.shape), shapeString(shapeOf(v)))
		}
		shape := append([]int{um.shape[0] + 1}, um.shape[1:]...)
		return NewMatrix(shape, append(append([]Value{}, um.data...), flatData(v)...))
	}
	Errorf(Shape, "join of ranks %d and %d", ur, vr)
	return nil
}

// couple implements couple: its two arguments, which must have the same
// shape, become the two rows of an array one rank higher.
func couple(u, v Value) Value {
	uShape, vShape := shapeOf(u), shapeOf(v)
	if !sameShape(uShape, vShape) {
		Errorf(Shape, "couple of shapes %s and %s", shapeString(uShape), shapeString(vShape))
	}
	if isChar(u) != isChar(v) && size(uShape) > 0 {
		Errorf(Type, "couple of numbers and characters")
	}
	shape := append([]int{2}, uShape...)
	return NewMatrix(shape, append(append([]Value{}, flatData(u)...), flatData(v)...))
}
