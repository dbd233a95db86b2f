// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/gogs/textenc/internal/osutil"
)

func stringFlag(name, value, usage string) *cli.StringFlag {
	parts := strings.SplitN(name, ", ", 2)
	f := &cli.StringFlag{
		Name:  parts[0],
		Value: value,
		Usage: usage,
	}
	if len(parts) > 1 {
		f.Aliases = []string{parts[1]}
	}
	return f
}

func boolFlag(name, usage string) *cli.BoolFlag {
	parts := strings.SplitN(name, ", ", 2)
	f := &cli.BoolFlag{
		Name:  parts[0],
		Usage: usage,
	}
	if len(parts) > 1 {
		f.Aliases = []string{parts[1]}
	}
	return f
}

// readInput reads the file named by the first argument, or standard input
// when no argument is given.
func readInput(cmd *cli.Command) ([]byte, error) {
	name := cmd.Args().First()
	if name == "" {
		return io.ReadAll(os.Stdin)
	}
	if !osutil.IsFile(name) {
		return nil, errors.Newf("input %q does not exist or is not a file", name)
	}
	return os.ReadFile(name)
}
