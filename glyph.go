// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/glyph-lang/glyph/config"
	"github.com/glyph-lang/glyph/run"
)

var (
	execute    = flag.String("e", "", "evaluate the expression and exit")
	format     = flag.String("format", "", "format string for printing numbers")
	fmtOnly    = flag.Bool("fmt", false, "format the input instead of evaluating it")
	configFile = flag.String("config", "", "YAML settings file")
	debugFlags = flag.String("debug", "", "comma-separated debug settings (ops, panic)")
	maxSteps   = flag.Int("maxsteps", 0, "operation budget; 0 means the default")
	version    = flag.Bool("version", false, "print the version and exit")
)

const historyFile = ".glyph_history"

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("glyph: ")

	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println(run.Version)
		return
	}
	if *configFile != "" {
		if err := conf.LoadFile(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if *format != "" {
		conf.SetFormat(*format)
	}
	if *maxSteps > 0 {
		conf.SetMaxSteps(*maxSteps)
	}
	for _, f := range strings.Split(*debugFlags, ",") {
		if f != "" {
			conf.SetDebug(f, true)
		}
	}

	switch {
	case *execute != "":
		doSource("<args>", *execute)
	case flag.NArg() > 0:
		for _, name := range flag.Args() {
			data, err := os.ReadFile(name)
			if err != nil {
				log.Fatal(err)
			}
			doSource(name, string(data))
		}
	case interactive():
		repl()
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		doSource("<stdin>", string(data))
	}
}

// doSource formats or evaluates one unit of source and prints the result.
func doSource(name, src string) {
	if *fmtOnly {
		out, err := run.Format(&conf, name, src)
		if err != nil {
			log.Fatalf("%s: %s", name, err)
		}
		fmt.Print(out)
		if out != "" && !strings.HasSuffix(out, "\n") {
			fmt.Println()
		}
		return
	}
	stack, err := run.Eval(&conf, name, src)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	for _, v := range stack {
		fmt.Println(v.Sprint(&conf))
	}
}

// interactive reports whether stdin is a terminal worth prompting.
func interactive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0 && liner.TerminalSupported()
}

// repl runs the interactive loop. Each line is evaluated on its own,
// from an empty stack; the resulting stack is printed bottom first.
func repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyFile)
		if f, err := os.Open(history); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if history == "" {
			return
		}
		if f, err := os.Create(history); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("glyph %s\n", run.Version)
	for {
		line, err := ln.Prompt("> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil { // io.EOF on ctrl-D
			fmt.Println()
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		stack, err := run.Eval(&conf, "<stdin>", line)
		if err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
			continue
		}
		for _, v := range stack {
			fmt.Println(v.Sprint(&conf))
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: glyph [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
