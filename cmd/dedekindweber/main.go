// SPDX-License-Identifier: MIT

// Command dedekindweber prints the Dedekind–Weber form of one invertible
// Laurent polynomial matrix:
//
//	dedekindweber -matrix '[[z, z^2], [z^-1, z^3 + 1]]'
//	The Dedeking-Weber form is diag(z^-1,z^5)
//
// Pass -matrix - to read the literal from standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/dedekind/echelon"
	"github.com/katalvlaran/dedekind/field"
	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
)

var log = logging.Logger("dedekindweber")

const defaultMatrix = "[[z, z^2], [z^-1, z^3 + 1]]"

func main() {
	var (
		literal    = flag.String("matrix", defaultMatrix, "Matrix literal, or - to read it from stdin")
		fieldName  = flag.String("field", "rational", "Coefficient field (rational, gaussian)")
		variable   = flag.String("var", laurent.DefaultVariable, "Name of the polynomial variable")
		maxRepairs = flag.Int("max-repairs", echelon.DefaultMaxRepairs, "Cap on repair iterations")
		timeout    = flag.Duration("timeout", 0, "Abort the reduction after this long (0 disables)")
		logLevel   = flag.String("log-level", "error", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	// Set log level for all subsystems
	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		level = logging.LevelError
	}
	logging.SetAllLoggers(level)

	if err = run(*literal, *fieldName, *variable, *maxRepairs, *timeout, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "dedekindweber:", err)
		os.Exit(1)
	}
}

func run(literal, fieldName, variable string, maxRepairs int, timeout time.Duration, in io.Reader, out io.Writer) error {
	f, ok := field.ByName(fieldName)
	if !ok {
		return fmt.Errorf("unknown field %q", fieldName)
	}
	if maxRepairs <= 0 {
		return errors.New("-max-repairs must be positive")
	}
	if literal == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		literal = strings.TrimSpace(string(b))
	}

	ring := laurent.NewRing(f, variable)
	m, err := matrix.ParseDense(ring, literal)
	if err != nil {
		return err
	}
	log.Debugf("input over %s: %s", f.Name(), m)

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := echelon.Diagonalize(ctx, m, echelon.WithMaxRepairs(maxRepairs))
	if err != nil {
		return err
	}
	log.Infof("reduced in %d repairs, shift %d", res.Repairs, res.Shift)
	_, err = fmt.Fprintln(out, res)

	return err
}
