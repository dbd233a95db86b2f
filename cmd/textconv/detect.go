// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v3"

	"github.com/gogs/textenc"
	"github.com/gogs/textenc/internal/charsetutil"
	"github.com/gogs/textenc/internal/conf"
)

var detectCommand = cli.Command{
	Name:      "detect",
	Usage:     "Detect the charset of a file",
	ArgsUsage: "[file]",
	Action:    runDetect,
	Flags: []cli.Flag{
		boolFlag("json", "Print the result as JSON"),
		stringFlag("config, c", "", "Custom configuration file path"),
	},
}

func runDetect(_ context.Context, cmd *cli.Command) error {
	if err := conf.Init(cmd.String("config")); err != nil {
		return errors.Wrap(err, "init configuration")
	}

	content, err := readInput(cmd)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	label, err := charsetutil.DetectEncoding(content)
	if err != nil {
		return errors.Wrap(err, "detect charset")
	}

	if cmd.Bool("json") {
		json := jsoniter.ConfigCompatibleWithStandardLibrary
		result, err := json.Marshal(map[string]any{
			"charset":     label,
			"has_encoder": textenc.EncoderFor(label) != nil,
		})
		if err != nil {
			return errors.Wrap(err, "marshal result")
		}
		fmt.Println(string(result))
		return nil
	}

	fmt.Println(label)
	return nil
}
