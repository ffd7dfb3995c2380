// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package embed provides a very narrow interface to glyph, suitable for
// wrapping in a host environment such as a web page or a mobile UI. It
// exposes only strings: source text in, a JSON envelope out. No error or
// panic ever crosses this boundary; failures appear as success=false in
// the envelope. Each call builds its own configuration and machine, so
// concurrent calls are independent.
package embed

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/glyph-lang/glyph/config"
	"github.com/glyph-lang/glyph/run"
)

// formatResult is the envelope returned by FormatSource.
type formatResult struct {
	Success   bool   `json:"success"`
	Formatted string `json:"formatted"`
	Output    string `json:"output"`
}

// evalResult is the envelope returned by EvalSource.
type evalResult struct {
	Success   bool     `json:"success"`
	Output    string   `json:"output"`
	Stack     []string `json:"stack"`
	Formatted string   `json:"formatted"`
}

// FormatSource formats the code and returns the JSON envelope
// {success, formatted, output}. On failure formatted holds the original
// code and output the error message.
func FormatSource(code string) string {
	var conf config.Config
	formatted, err := run.Format(&conf, "<embed>", code)
	res := formatResult{Success: true, Formatted: formatted}
	if err != nil {
		res = formatResult{Success: false, Formatted: code, Output: err.Error()}
	}
	return marshal(res)
}

// EvalSource evaluates the code and returns the JSON envelope
// {success, output, stack, formatted}. The formatted field always holds
// a best-effort formatting pass, whatever the evaluation outcome; the
// evaluation itself runs on the code as given.
func EvalSource(code string) string {
	var conf config.Config
	r := run.Run(&conf, "<embed>", code)
	return marshal(evalResult{
		Success:   r.Success,
		Output:    r.Output,
		Stack:     r.Stack,
		Formatted: r.Formatted,
	})
}

// Version returns the interpreter version.
func Version() string {
	return run.Version
}

func marshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		// The envelopes hold only strings and bools; this cannot happen.
		return `{"success":false,"output":"internal error"}`
	}
	return string(data)
}

// Demo represents a running line-by-line demonstration.
type Demo struct {
	conf    config.Config
	scanner *bufio.Scanner
}

// NewDemo returns a new Demo that will evaluate the input text line by
// line, keeping no state between lines.
func NewDemo(input string) *Demo {
	return &Demo{
		scanner: bufio.NewScanner(strings.NewReader(input)),
	}
}

// Next returns the result (and error) produced by the next line of
// input. It returns ("", io.EOF) at EOF.
func (d *Demo) Next() (result string, err error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	stack, err := run.Eval(&d.conf, "<demo>", d.scanner.Text())
	if err != nil {
		return "", err
	}
	strs := make([]string, len(stack))
	for i, v := range stack {
		strs[i] = v.Sprint(&d.conf)
	}
	out := strings.Join(strs, "\n")
	if out != "" {
		out += "\n"
	}
	return out, nil
}
