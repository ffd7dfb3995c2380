// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strings"
	"testing"

	"github.com/glyph-lang/glyph/config"
)

var testConf = &config.Config{}

// catch runs fn and returns the Error it panics with, or nil.
func catch(fn func()) (err *Error) {
	defer func() {
		if e := recover(); e != nil {
			if verr, ok := e.(Error); ok {
				err = &verr
				return
			}
			panic(e)
		}
	}()
	fn()
	return nil
}

func num(f float64) Value { return Num(f) }

func nums(fs ...float64) Vector {
	elems := make([]Value, len(fs))
	for i, f := range fs {
		elems[i] = Num(f)
	}
	return Vector(elems)
}

func TestBinaryScalars(t *testing.T) {
	var tests = []struct {
		left  float64
		op    string
		right float64
		want  float64
	}{
		{2, "add", 3, 5},
		{2, "sub", 3, -1},
		{2, "mul", 3, 6},
		{3, "div", 2, 1.5},
		{7, "mod", 3, 1},
		{-7, "mod", 3, 2}, // sign of the divisor
		{2, "pow", 10, 1024},
		{2, "min", 3, 2},
		{2, "max", 3, 3},
		{2, "eq", 3, 0},
		{2, "ne", 3, 1},
		{2, "lt", 3, 1},
		{3, "le", 3, 1},
		{2, "gt", 3, 0},
		{2, "ge", 3, 0},
	}
	for _, test := range tests {
		got := Binary(num(test.left), test.op, num(test.right))
		if got != num(test.want) {
			t.Errorf("%v %s %v: expected %v; got %v", test.left, test.op, test.right, test.want, got)
		}
	}
}

func TestBroadcast(t *testing.T) {
	// scalar against vector, both ways
	got := Binary(nums(1, 2, 3), "mul", num(10))
	if got.Sprint(testConf) != "10 20 30" {
		t.Errorf("vector mul scalar: got %s", got.Sprint(testConf))
	}
	got = Binary(num(10), "sub", nums(1, 2, 3))
	if got.Sprint(testConf) != "9 8 7" {
		t.Errorf("scalar sub vector: got %s", got.Sprint(testConf))
	}
	// equal-shaped vectors
	got = Binary(nums(1, 2), "add", nums(3, 4))
	if got.Sprint(testConf) != "4 6" {
		t.Errorf("vector add vector: got %s", got.Sprint(testConf))
	}
	// scalar against matrix
	m := Binary(nums(2, 2), "reshape", nums(1, 2, 3, 4))
	got = Binary(m, "add", num(10))
	if got.Sprint(testConf) != "11 12\n13 14" {
		t.Errorf("matrix add scalar: got %q", got.Sprint(testConf))
	}
}

func TestShapeMismatch(t *testing.T) {
	err := catch(func() { Binary(nums(1, 2), "add", nums(1, 2, 3)) })
	if err == nil || err.Kind != Shape {
		t.Fatalf("expected shape mismatch; got %v", err)
	}
	if !strings.Contains(err.Message, "[2]") || !strings.Contains(err.Message, "[3]") {
		t.Errorf("error does not name both shapes: %q", err.Message)
	}
	// Same rank, different dimensions.
	a := Binary(nums(2, 3), "reshape", nums(1, 2, 3, 4, 5, 6))
	b := Binary(nums(3, 2), "reshape", nums(1, 2, 3, 4, 5, 6))
	err = catch(func() { Binary(a, "add", b) })
	if err == nil || err.Kind != Shape {
		t.Fatalf("expected shape mismatch for [2 3] vs [3 2]; got %v", err)
	}
}

func TestTypeMismatch(t *testing.T) {
	var tests = []func(){
		func() { Binary(Char('a'), "add", num(1)) },
		func() { Binary(num(1), "mul", NewString("hi")) },
		func() { Unary("neg", Char('a')) },
		func() { Binary(NewString("ab"), "join", nums(1, 2)) },
	}
	for i, fn := range tests {
		err := catch(fn)
		if err == nil || err.Kind != Type {
			t.Errorf("case %d: expected type mismatch; got %v", i, err)
		}
	}
	// Char comparisons are fine.
	if got := Binary(Char('a'), "lt", Char('b')); got != num(1) {
		t.Errorf("'a' lt 'b': expected 1; got %v", got)
	}
}

func TestDomainErrors(t *testing.T) {
	var tests = []func(){
		func() { Binary(num(1), "div", num(0)) },
		func() { Unary("sqrt", num(-1)) },
		func() { Unary("range", num(-3)) },
		func() { Unary("range", num(1.5)) },
		func() { Binary(num(3), "reshape", Vector{}) },
		func() { Unary("first", Vector{}) },
		// A matrix with a zero leading dimension has no first row.
		func() { Unary("first", Binary(nums(0, 3), "reshape", nums(1))) },
	}
	for i, fn := range tests {
		err := catch(fn)
		if err == nil || err.Kind != Domain {
			t.Errorf("case %d: expected domain error; got %v", i, err)
		}
	}
}

func TestUnary(t *testing.T) {
	var tests = []struct {
		op    string
		v     Value
		want  string
	}{
		{"neg", num(3), "-3"},
		{"neg", nums(1, -2), "-1 2"},
		{"abs", num(-2.5), "2.5"},
		{"sign", num(-7), "-1"},
		{"sqrt", num(16), "4"},
		{"floor", num(1.7), "1"},
		{"ceil", num(1.2), "2"},
		{"round", num(2.5), "3"},
		{"not", nums(0, 1, 7), "1 0 0"},
		{"range", num(4), "0 1 2 3"},
		{"range", num(0), ""},
		{"len", num(7), "1"},
		{"len", nums(1, 2, 3), "3"},
		{"shape", num(7), ""},
		{"shape", nums(1, 2, 3), "3"},
		{"first", nums(9, 8), "9"},
		{"reverse", nums(1, 2, 3), "3 2 1"},
		{"ravel", num(7), "7"},
	}
	for _, test := range tests {
		got := Unary(test.op, test.v)
		if got.Sprint(testConf) != test.want {
			t.Errorf("%s of %s: expected %q; got %q", test.op, test.v, test.want, got.Sprint(testConf))
		}
	}
}

func TestMatrixOps(t *testing.T) {
	m := Binary(nums(2, 3), "reshape", nums(1, 2, 3, 4, 5, 6))
	if m.Rank() != 2 {
		t.Fatalf("reshape: expected rank 2; got %d", m.Rank())
	}
	if got := m.Sprint(testConf); got != "1 2 3\n4 5 6" {
		t.Errorf("matrix display: got %q", got)
	}
	if got := Unary("shape", m).Sprint(testConf); got != "2 3" {
		t.Errorf("shape: got %q", got)
	}
	if got := Unary("len", m).Sprint(testConf); got != "2" {
		t.Errorf("len: got %q", got)
	}
	if got := Unary("transpose", m).Sprint(testConf); got != "1 4\n2 5\n3 6" {
		t.Errorf("transpose: got %q", got)
	}
	if got := Unary("first", m).Sprint(testConf); got != "1 2 3" {
		t.Errorf("first: got %q", got)
	}
	if got := Unary("reverse", m).Sprint(testConf); got != "4 5 6\n1 2 3" {
		t.Errorf("reverse: got %q", got)
	}
	if got := Unary("ravel", m).Sprint(testConf); got != "1 2 3 4 5 6" {
		t.Errorf("ravel: got %q", got)
	}
	// Reshape cycles its data.
	if got := Binary(num(5), "reshape", nums(1, 2)).Sprint(testConf); got != "1 2 1 2 1" {
		t.Errorf("reshape cycling: got %q", got)
	}
}

func TestJoinCouple(t *testing.T) {
	if got := Binary(num(1), "join", num(2)).Sprint(testConf); got != "1 2" {
		t.Errorf("scalar join scalar: got %q", got)
	}
	if got := Binary(nums(1, 2), "join", num(3)).Sprint(testConf); got != "1 2 3" {
		t.Errorf("vector join scalar: got %q", got)
	}
	if got := Binary(NewString("ab"), "join", NewString("cd")).Sprint(testConf); got != "abcd" {
		t.Errorf("string join: got %q", got)
	}
	coupled := Binary(nums(1, 2), "couple", nums(3, 4))
	if got := coupled.Sprint(testConf); got != "1 2\n3 4" {
		t.Errorf("couple: got %q", got)
	}
	// Matrix join matrix stacks rows.
	m := Binary(nums(1, 2), "couple", nums(3, 4))
	joined := Binary(m, "join", m)
	if got := Unary("shape", joined).Sprint(testConf); got != "4 2" {
		t.Errorf("matrix join shape: got %q", got)
	}
	// Couple demands equal shapes.
	err := catch(func() { Binary(nums(1, 2), "couple", nums(1, 2, 3)) })
	if err == nil || err.Kind != Shape {
		t.Errorf("couple of unequal shapes: expected shape mismatch; got %v", err)
	}
}

func TestCollect(t *testing.T) {
	if got := Collect(nil).Sprint(testConf); got != "" {
		t.Errorf("empty collect: got %q", got)
	}
	got := Collect([]Value{num(1), num(2), num(3)})
	if got.Sprint(testConf) != "1 2 3" {
		t.Errorf("scalar collect: got %q", got.Sprint(testConf))
	}
	rows := Collect([]Value{nums(1, 2), nums(3, 4)})
	if rows.Rank() != 2 || rows.Sprint(testConf) != "1 2\n3 4" {
		t.Errorf("row collect: got %q", rows.Sprint(testConf))
	}
	err := catch(func() { Collect([]Value{num(1), Char('a')}) })
	if err == nil || err.Kind != Type {
		t.Errorf("mixed collect: expected type mismatch; got %v", err)
	}
	err = catch(func() { Collect([]Value{nums(1, 2), nums(1, 2, 3)}) })
	if err == nil || err.Kind != Shape {
		t.Errorf("ragged collect: expected shape mismatch; got %v", err)
	}
}

func TestDisplay(t *testing.T) {
	var tests = []struct {
		v    Value
		want string
	}{
		{num(5), "5"},
		{num(-1.5), "-1.5"},
		{Num(0) * Num(-1), "0"}, // negative zero folds
		{Char('q'), "q"},
		{NewString("hello"), "hello"},
		{nums(1, 2, 3), "1 2 3"},
		{Vector{}, ""},
	}
	for _, test := range tests {
		if got := test.v.Sprint(testConf); got != test.want {
			t.Errorf("display of %s: expected %q; got %q", test.v, test.want, got)
		}
	}
	// Matrix columns align on the widest element.
	m := Binary(nums(2, 2), "reshape", nums(1, 10, 100, 1000))
	want := "   1   10\n 100 1000"
	if got := m.Sprint(testConf); got != want {
		t.Errorf("aligned display: expected %q; got %q", want, got)
	}
	// The number format applies when set.
	var conf config.Config
	conf.SetFormat("%.2f")
	if got := num(1.5).Sprint(&conf); got != "1.50" {
		t.Errorf("formatted display: got %q", got)
	}
}
