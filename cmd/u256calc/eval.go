// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/decred/dcrd/math/uint256"
	"github.com/decred/dcrd/math/uint256/difficulty"
)

var (
	// errUnknownOperation is returned when an expression names an
	// operation that does not exist.
	errUnknownOperation = errors.New("unknown operation")

	// errNumOperands is returned when an expression provides the wrong
	// number of operands for its operation.
	errNumOperands = errors.New("wrong number of operands")
)

// operation describes a calculator operation along with the number of operands
// it requires and the function that evaluates it.
type operation struct {
	operands string
	numArgs  int
	exec     func(args []string, base int) (string, error)
}

// parseOperand parses the passed string as an unsigned 256-bit integer with the
// base implied by its prefix.
func parseOperand(s string) (uint256.Uint256, error) {
	n, err := uint256.Parse(s, 0)
	if err != nil {
		return uint256.Zero, fmt.Errorf("operand %q: %w", s, err)
	}
	return n, nil
}

// parseOperands parses all of the passed strings as unsigned 256-bit integers.
func parseOperands(args []string) ([]uint256.Uint256, error) {
	vals := make([]uint256.Uint256, 0, len(args))
	for _, arg := range args {
		n, err := parseOperand(arg)
		if err != nil {
			return nil, err
		}
		vals = append(vals, n)
	}
	return vals, nil
}

// parseCount parses the passed string as a bit count or position.
func parseCount(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bit count %q: %w", s, err)
	}
	return uint(n), nil
}

// parseDiffBits parses the passed string as compact difficulty bits.
func parseDiffBits(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("difficulty bits %q: %w", s, err)
	}
	return uint32(n), nil
}

func unary(fn func(x uint256.Uint256) uint256.Uint256) operation {
	return operation{"x", 1, func(args []string, base int) (string, error) {
		x, err := parseOperand(args[0])
		if err != nil {
			return "", err
		}
		return fn(x).Text(base), nil
	}}
}

func binary(fn func(x, y uint256.Uint256) uint256.Uint256) operation {
	return operation{"x y", 2, func(args []string, base int) (string, error) {
		vals, err := parseOperands(args)
		if err != nil {
			return "", err
		}
		return fn(vals[0], vals[1]).Text(base), nil
	}}
}

// binaryFlag returns an operation that reports both the result and a flag such
// as whether or not it overflowed.
func binaryFlag(fn func(x, y uint256.Uint256) (uint256.Uint256, bool)) operation {
	return operation{"x y", 2, func(args []string, base int) (string, error) {
		vals, err := parseOperands(args)
		if err != nil {
			return "", err
		}
		result, flag := fn(vals[0], vals[1])
		return fmt.Sprintf("%s %v", result.Text(base), flag), nil
	}}
}

func ternary(fn func(x, y, m uint256.Uint256) uint256.Uint256) operation {
	return operation{"x y m", 3, func(args []string, base int) (string, error) {
		vals, err := parseOperands(args)
		if err != nil {
			return "", err
		}
		return fn(vals[0], vals[1], vals[2]).Text(base), nil
	}}
}

func shift(fn func(x uint256.Uint256, n uint) uint256.Uint256) operation {
	return operation{"x n", 2, func(args []string, base int) (string, error) {
		x, err := parseOperand(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseCount(args[1])
		if err != nil {
			return "", err
		}
		return fn(x, n).Text(base), nil
	}}
}

// operations houses all of the operations supported by the calculator keyed by
// name.
var operations = map[string]operation{
	"add":    binary(uint256.Uint256.Add),
	"addov":  binaryFlag(uint256.Uint256.AddOverflow),
	"sub":    binary(uint256.Uint256.Sub),
	"subuf":  binaryFlag(uint256.Uint256.SubUnderflow),
	"mul":    binary(uint256.Uint256.Mul),
	"mulov":  binaryFlag(uint256.Uint256.MulOverflow),
	"sqr":    unary(uint256.Uint256.Square),
	"div":    binary(uint256.Uint256.Div),
	"mod":    binary(uint256.Uint256.Mod),
	"addmod": ternary(uint256.Uint256.AddMod),
	"submod": ternary(uint256.Uint256.SubMod),
	"mulmod": ternary(uint256.Uint256.MulMod),
	"exp":    binary(uint256.Uint256.Exp),
	"expmod": ternary(uint256.Uint256.ExpMod),
	"and":    binary(uint256.Uint256.And),
	"or":     binary(uint256.Uint256.Or),
	"xor":    binary(uint256.Uint256.Xor),
	"not":    unary(uint256.Uint256.Not),
	"lsh":    shift(uint256.Uint256.Lsh),
	"rsh":    shift(uint256.Uint256.Rsh),

	"divmod": {"x y", 2, func(args []string, base int) (string, error) {
		vals, err := parseOperands(args)
		if err != nil {
			return "", err
		}
		quo, rem := vals[0].DivMod(vals[1])
		return quo.Text(base) + " " + rem.Text(base), nil
	}},

	"bit": {"x n", 2, func(args []string, base int) (string, error) {
		x, err := parseOperand(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseCount(args[1])
		if err != nil {
			return "", err
		}
		if x.Bit(n) {
			return "1", nil
		}
		return "0", nil
	}},

	"cmp": {"x y", 2, func(args []string, base int) (string, error) {
		vals, err := parseOperands(args)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(vals[0].Cmp(vals[1])), nil
	}},

	"work": {"bits", 1, func(args []string, base int) (string, error) {
		bits, err := parseDiffBits(args[0])
		if err != nil {
			return "", err
		}
		return difficulty.CalcWork(bits).Text(base), nil
	}},

	"target": {"bits", 1, func(args []string, base int) (string, error) {
		bits, err := parseDiffBits(args[0])
		if err != nil {
			return "", err
		}
		target, isNegative, overflows := difficulty.DiffBitsToUint256(bits)
		switch {
		case overflows:
			return "", fmt.Errorf("difficulty bits %08x overflow", bits)
		case isNegative:
			return "", fmt.Errorf("difficulty bits %08x are negative", bits)
		}
		return target.Text(base), nil
	}},

	"bits": {"x", 1, func(args []string, base int) (string, error) {
		x, err := parseOperand(args[0])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%08x", difficulty.Uint256ToDiffBits(x)), nil
	}},
}

// operationNames returns the sorted names of all supported operations.
func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeOperations writes a usage line for every supported operation.
func writeOperations(w io.Writer) {
	for _, name := range operationNames() {
		fmt.Fprintf(w, "%s %s\n", name, operations[name].operands)
	}
}

// evalExpr evaluates the expression formed by an operation name followed by
// its operands and returns the result formatted in the given base.
func evalExpr(fields []string, base int) (string, error) {
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty expression", errUnknownOperation)
	}
	name := strings.ToLower(fields[0])
	op, ok := operations[name]
	if !ok {
		return "", fmt.Errorf("%w %q", errUnknownOperation, fields[0])
	}
	args := fields[1:]
	if len(args) != op.numArgs {
		return "", fmt.Errorf("%w: %s expects %d (%s), got %d", errNumOperands,
			name, op.numArgs, op.operands, len(args))
	}

	log.Tracef("Evaluating %s %s", name, strings.Join(args, " "))
	return op.exec(args, base)
}

// evalLines evaluates every expression read from r, one per line, and writes
// the results to w.  Blank lines and lines starting with '#' are ignored.  A
// prompt is written before every line when requested.  Expressions that fail
// are reported and do not stop the evaluation.  The number of failed
// expressions is returned.
func evalLines(r io.Reader, w io.Writer, base int, prompt bool) (int, error) {
	const promptStr = "u256> "

	var failed int
	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprint(w, promptStr)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result, err := evalExpr(strings.Fields(line), base)
		if err != nil {
			failed++
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(w, result)
	}
	if prompt {
		fmt.Fprintln(w)
	}
	return failed, scanner.Err()
}
