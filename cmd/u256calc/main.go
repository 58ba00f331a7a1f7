// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// realMain is the real main function for u256calc.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
// The returned value is the process exit code.
func realMain() int {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		// The flags package already printed its own errors.
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				return 0
			}
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Enable cpu profiling if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			log.Errorf("Unable to create cpu profile: %v", err)
			return 1
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			log.Errorf("Unable to start cpu profile: %v", err)
			return 1
		}
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	switch {
	case cfg.ListOps:
		writeOperations(os.Stdout)
		return 0

	case cfg.SelfTest > 0:
		failed, err := runSelfTest(interruptListener(), cfg.SelfTest)
		if err != nil {
			log.Error(err)
			return 1
		}
		if failed > 0 {
			return 1
		}
		return 0

	case len(args) > 0:
		result, err := evalExpr(args, cfg.Base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Println(result)
		return 0
	}

	// Read expressions from standard input and only show a prompt when it is
	// attached to a terminal so piped input produces clean output.
	prompt := term.IsTerminal(int(os.Stdin.Fd()))
	failed, err := evalLines(os.Stdin, os.Stdout, cfg.Base, prompt)
	if err != nil {
		log.Errorf("Unable to read input: %v", err)
		return 1
	}
	if failed > 0 && !prompt {
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain())
}
