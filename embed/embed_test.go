// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package embed

import (
	"encoding/json"
	"io"
	"strings"
	"testing"
)

// We know the core works. These test that the envelope does.

func TestFormatSource(t *testing.T) {
	var tests = []struct {
		input     string
		success   bool
		formatted string
		output    string
	}{
		{"", true, "", ""},
		{"2 3 add", true, "2 3 +", ""},
		{"2 3 +", true, "2 3 +", ""},
		{`"unterminated`, false, `"unterminated`, "unterminated quoted string"},
	}
	for _, test := range tests {
		var res struct {
			Success   bool   `json:"success"`
			Formatted string `json:"formatted"`
			Output    string `json:"output"`
		}
		raw := FormatSource(test.input)
		if err := json.Unmarshal([]byte(raw), &res); err != nil {
			t.Fatalf("formatting %q: bad JSON %q: %v", test.input, raw, err)
		}
		if res.Success != test.success {
			t.Errorf("%q: expected success=%t; got %q", test.input, test.success, raw)
		}
		if res.Formatted != test.formatted {
			t.Errorf("%q: expected formatted %q; got %q", test.input, test.formatted, res.Formatted)
		}
		if !strings.Contains(res.Output, test.output) {
			t.Errorf("%q: expected output %q; got %q", test.input, test.output, res.Output)
		}
	}
}

func TestEvalSource(t *testing.T) {
	var tests = []struct {
		input     string
		success   bool
		output    string
		stack     []string
		formatted string
	}{
		{"", true, "", []string{}, ""},
		{"2 3 add", true, "5", []string{"5"}, "2 3 +"},
		{"1 2 3", true, "1\n2\n3", []string{"1", "2", "3"}, "1 2 3"},
		{"foobar", false, `unknown name "foobar"`, []string{}, "foobar"},
		{"add", false, "stack underflow", []string{}, "+"},
	}
	for _, test := range tests {
		var res struct {
			Success   bool     `json:"success"`
			Output    string   `json:"output"`
			Stack     []string `json:"stack"`
			Formatted string   `json:"formatted"`
		}
		raw := EvalSource(test.input)
		if err := json.Unmarshal([]byte(raw), &res); err != nil {
			t.Fatalf("evaluating %q: bad JSON %q: %v", test.input, raw, err)
		}
		if res.Success != test.success {
			t.Errorf("%q: expected success=%t; got %q", test.input, test.success, raw)
		}
		if !strings.Contains(res.Output, test.output) {
			t.Errorf("%q: expected output %q; got %q", test.input, test.output, res.Output)
		}
		if len(res.Stack) != len(test.stack) {
			t.Errorf("%q: expected stack %q; got %q", test.input, test.stack, res.Stack)
		} else {
			for i := range res.Stack {
				if res.Stack[i] != test.stack[i] {
					t.Errorf("%q stack %d: expected %q; got %q", test.input, i, test.stack[i], res.Stack[i])
				}
			}
		}
		if res.Formatted != test.formatted {
			t.Errorf("%q: expected formatted %q; got %q", test.input, test.formatted, res.Formatted)
		}
	}
}

// TestStackIsArray pins the envelope shape: the stack field must be a
// JSON array even when empty, never null.
func TestStackIsArray(t *testing.T) {
	raw := EvalSource("foobar")
	if !strings.Contains(raw, `"stack":[]`) {
		t.Errorf("expected an empty stack array; got %s", raw)
	}
}

func TestVersion(t *testing.T) {
	v := Version()
	if v == "" || strings.Count(v, ".") != 2 {
		t.Errorf("implausible version %q", v)
	}
	if Version() != v {
		t.Errorf("version is not constant")
	}
}

const demoText = `# A short tour.
2 3 add
10 range
1 0 div # an error
"keep going" reverse
`

const demoOut = `5
0 1 2 3 4 5 6 7 8 9
gniog peek
`

func TestDemo(t *testing.T) {
	demo := NewDemo(demoText)
	results := make([]byte, 0, 100)
	errors := make([]byte, 0, 100)
	for {
		result, err := demo.Next()
		if err == io.EOF {
			break
		}
		results = append(results, result...)
		if err != nil {
			errors = append(errors, err.Error()...)
		}
	}
	if demoOut != string(results) {
		t.Fatalf("expected %q; got %q", demoOut, results)
	}
	if !strings.Contains(string(errors), "division by zero") {
		t.Fatalf("expected a division error; got %q", errors)
	}
}
