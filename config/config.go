// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the scanner, formatter and
// evaluator. A zero Config is ready to use; every knob has a getter that
// supplies the default.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxSteps is the operation budget applied when none is set.
// It is generous enough for any program a person would type and small
// enough to stop a runaway loop quickly.
const DefaultMaxSteps = 10_000_000

type Config struct {
	output        io.Writer
	errOutput     io.Writer
	format        string
	commentColumn int
	maxSteps      int
	debug         map[string]bool
}

// Output returns the writer used for program output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer used for error output.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Format returns the format string for printing numbers.
func (c *Config) Format() string {
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

// CommentColumn returns the column, counting from zero, that the formatter
// aligns trailing comments to. Zero disables alignment; comments keep the
// spacing they were written with.
func (c *Config) CommentColumn() int {
	return c.commentColumn
}

func (c *Config) SetCommentColumn(col int) {
	c.commentColumn = col
}

// MaxSteps returns the evaluator's operation budget.
func (c *Config) MaxSteps() int {
	if c.maxSteps <= 0 {
		return DefaultMaxSteps
	}
	return c.maxSteps
}

func (c *Config) SetMaxSteps(n int) {
	c.maxSteps = n
}

func (c *Config) Debug(flag string) bool {
	return c.debug[flag]
}

func (c *Config) SetDebug(flag string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[flag] = state
}

// fileConfig is the YAML shape of a settings file.
type fileConfig struct {
	Format        string `yaml:"format"`
	CommentColumn int    `yaml:"comment_column"`
	MaxSteps      int    `yaml:"max_steps"`
}

// LoadFile reads settings from a YAML file and applies them over the
// current values. Fields absent from the file are left alone.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.Format != "" {
		c.format = fc.Format
	}
	if fc.CommentColumn > 0 {
		c.commentColumn = fc.CommentColumn
	}
	if fc.MaxSteps > 0 {
		c.maxSteps = fc.MaxSteps
	}
	return nil
}
