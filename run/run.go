// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for glyph. It is the one
// place where the core's value.Error panics are recovered and turned
// into ordinary error returns, so everything above it — the embedding
// surface, the CLI — deals only in values and errors.
package run

import (
	"strings"

	"github.com/glyph-lang/glyph/compile"
	"github.com/glyph-lang/glyph/config"
	"github.com/glyph-lang/glyph/exec"
	"github.com/glyph-lang/glyph/format"
	"github.com/glyph-lang/glyph/scan"
	"github.com/glyph-lang/glyph/value"
)

// Version identifies the interpreter core. It is a process-wide constant.
const Version = "0.3.0"

// Result is the structured outcome of a Run: a success flag, the printed
// output (the error message on failure), the stack renderings bottom
// first, and the best-effort formatted source.
type Result struct {
	Success   bool
	Output    string
	Stack     []string
	Formatted string
}

// Format formats the source. On failure the returned text is the input,
// unchanged.
func Format(conf *config.Config, name, src string) (string, error) {
	return format.Source(conf, name, src)
}

// Eval compiles and evaluates the source and returns the final stack,
// bottom first. On failure it returns the error and the partial stack at
// the point of failure.
func Eval(conf *config.Config, name, src string) (stack []value.Value, err error) {
	machine := exec.NewMachine(conf)
	defer func() {
		if conf.Debug("panic") {
			return
		}
		e := recover()
		if e == nil {
			return
		}
		if e, ok := e.(value.Error); ok {
			stack = machine.Stack()
			err = e
			return
		}
		panic(e)
	}()
	program := compile.Compile(name, scan.All(name, src))
	return machine.Run(program), nil
}

// Run evaluates the source and renders the structured result. Formatting
// is attempted first, best-effort: a format failure never blocks the
// evaluation, and evaluation runs on the original source, not the
// formatted text. On success Output is the newline-joined display forms
// of the stack values, bottom first; on failure Output is the error
// message and Stack is empty.
func Run(conf *config.Config, name, src string) Result {
	formatted, ferr := Format(conf, name, src)
	if ferr != nil {
		formatted = src
	}
	stack, err := Eval(conf, name, src)
	if err != nil {
		return Result{
			Success:   false,
			Output:    err.Error(),
			Stack:     []string{},
			Formatted: formatted,
		}
	}
	strs := make([]string, len(stack))
	for i, v := range stack {
		strs[i] = v.Sprint(conf)
	}
	return Result{
		Success:   true,
		Output:    strings.Join(strs, "\n"),
		Stack:     strs,
		Formatted: formatted,
	}
}
