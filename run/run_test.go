// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"reflect"
	"strings"
	"testing"

	"github.com/glyph-lang/glyph/config"
	"github.com/glyph-lang/glyph/value"
)

func TestRun(t *testing.T) {
	var tests = []struct {
		input     string
		output    string
		stack     []string
		formatted string
	}{
		{"", "", []string{}, ""},
		{"2 3 add", "5", []string{"5"}, "2 3 +"},
		{"1 2 3", "1\n2\n3", []string{"1", "2", "3"}, "1 2 3"},
		{"\"oof\" reverse", "foo", []string{"foo"}, "\"oof\" ⇌"},
		{"[1 2 3] 2 mul", "2 4 6", []string{"2 4 6"}, "[1 2 3] 2 ×"},
	}
	var conf config.Config
	for _, test := range tests {
		r := Run(&conf, "test", test.input)
		if !r.Success {
			t.Errorf("running %q: failed with %q", test.input, r.Output)
			continue
		}
		if r.Output != test.output {
			t.Errorf("%q: expected output %q; got %q", test.input, test.output, r.Output)
		}
		if !reflect.DeepEqual(r.Stack, test.stack) {
			t.Errorf("%q: expected stack %q; got %q", test.input, test.stack, r.Stack)
		}
		if r.Formatted != test.formatted {
			t.Errorf("%q: expected formatted %q; got %q", test.input, test.formatted, r.Formatted)
		}
	}
}

func TestRunErrors(t *testing.T) {
	var tests = []struct {
		input     string
		error     string
		formatted string
	}{
		// Unknown identifiers fail compilation but still format: the
		// formatter passes unrecognized words through.
		{"foobar", `unknown name "foobar"`, "foobar"},
		{"add", "stack underflow", "+"},
		{"[1 2] [3 4 5] add", "shape mismatch", "[1 2] [3 4 5] +"},
		// A lex error fails both; the formatted field falls back to the
		// original source.
		{`"unterminated`, "unterminated", `"unterminated`},
	}
	var conf config.Config
	for _, test := range tests {
		r := Run(&conf, "test", test.input)
		if r.Success {
			t.Errorf("running %q: expected failure; got output %q", test.input, r.Output)
			continue
		}
		if !strings.Contains(r.Output, test.error) {
			t.Errorf("%q: expected error %q; got %q", test.input, test.error, r.Output)
		}
		if len(r.Stack) != 0 {
			t.Errorf("%q: expected empty stack; got %q", test.input, r.Stack)
		}
		if r.Formatted != test.formatted {
			t.Errorf("%q: expected formatted %q; got %q", test.input, test.formatted, r.Formatted)
		}
	}
}

// TestFormatPreservesEvaluation is the round-trip property: a program and
// its formatted spelling evaluate to the same stack.
func TestFormatPreservesEvaluation(t *testing.T) {
	var inputs = []string{
		"2 3 add",
		"[1 2 3] dup add first",
		"10 range 5 mul reverse",
		"1 2 gt if \"yes\" else \"no\" then",
		"[2 3] [1 2 3 4 5 6] reshape transpose ravel",
		"'a' 'b' couple",
		// Mnemonics hard against literals: the substituted glyph must not
		// merge into its neighbor and change the token stream.
		"2dup add",
		"3dup mul dup",
		"[1 2 3]first 2dup pow",
		"10range reverse",
	}
	var conf config.Config
	for _, input := range inputs {
		formatted, err := Format(&conf, "test", input)
		if err != nil {
			t.Errorf("formatting %q: %v", input, err)
			continue
		}
		before, err := Eval(&conf, "test", input)
		if err != nil {
			t.Errorf("evaluating %q: %v", input, err)
			continue
		}
		after, err := Eval(&conf, "test", formatted)
		if err != nil {
			t.Errorf("evaluating %q: %v", formatted, err)
			continue
		}
		if !reflect.DeepEqual(before, after) {
			t.Errorf("%q and %q evaluate differently: %v vs %v", input, formatted, before, after)
		}
	}
}

func TestEvalError(t *testing.T) {
	var conf config.Config
	_, err := Eval(&conf, "test", "1 0 div")
	verr, ok := err.(value.Error)
	if !ok {
		t.Fatalf("expected a value.Error; got %T (%v)", err, err)
	}
	if verr.Kind != value.Domain {
		t.Errorf("expected a domain error; got %s", verr.Kind)
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("expected division by zero; got %q", err)
	}
}
