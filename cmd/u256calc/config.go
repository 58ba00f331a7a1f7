// Copyright (c) 2020-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultBase     = 10
	defaultLogLevel = "info"
	minBase         = 2
	maxBase         = 36
)

// config defines the configuration options for u256calc.
type config struct {
	Base       int    `short:"b" long:"base" description:"Base used to display results (2-36)"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile    string `long:"logfile" description:"Also write logs to this file which is rotated automatically"`
	SelfTest   int    `long:"selftest" description:"Run the given number of randomized checks of every operation against math/big and exit"`
	ListOps    bool   `short:"l" long:"listops" description:"List the supported operations and exit"`
	CPUProfile string `long:"cpuprofile" description:"Write CPU profile to the specified file"`
}

// loadConfig parses the passed command line arguments into a config with
// sensible defaults and returns it along with the remaining positional
// arguments which form the expression to evaluate.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Base:       defaultBase,
		DebugLevel: defaultLogLevel,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [operation operands...]"
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Base < minBase || cfg.Base > maxBase {
		str := "the base %d is invalid -- it must be between %d and %d"
		return nil, nil, fmt.Errorf(str, cfg.Base, minBase, maxBase)
	}
	if cfg.SelfTest < 0 {
		str := "the number of self test iterations %d may not be negative"
		return nil, nil, fmt.Errorf(str, cfg.SelfTest)
	}

	level, ok := slog.LevelFromString(cfg.DebugLevel)
	if !ok {
		str := "the specified debug level %q is invalid"
		return nil, nil, fmt.Errorf(str, cfg.DebugLevel)
	}
	setLogLevels(level)

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return nil, nil, err
		}
	}

	return &cfg, remaining, nil
}
