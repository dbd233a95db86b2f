// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Textconv encodes UTF-8 text into the legacy encodings of the WHATWG
// Encoding Standard.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	log "unknwon.dev/clog/v2"
)

const version = "0.3.0+dev"

func main() {
	cmd := &cli.Command{
		Name:    "textconv",
		Usage:   "Encode UTF-8 text into legacy web encodings",
		Version: version,
		Commands: []*cli.Command{
			&convertCommand,
			&detectCommand,
			&listCommand,
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal("Failed to run command: %v", err)
	}
}
