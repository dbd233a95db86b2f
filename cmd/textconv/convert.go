// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/gogs/textenc"
	"github.com/gogs/textenc/internal/charsetutil"
	"github.com/gogs/textenc/internal/conf"
)

var convertCommand = cli.Command{
	Name:  "convert",
	Usage: "Encode text into a target encoding",
	Description: `Convert reads text from a file or standard input and writes it to standard
output in the target encoding. Input that is not valid UTF-8 is decoded
using its detected charset first.`,
	ArgsUsage: "[file]",
	Action:    runConvert,
	Flags: []cli.Flag{
		stringFlag("to, t", "utf-8", "Target encoding name or label"),
		stringFlag("error-mode, e", "", "Unmappable code point handling: replacement, html or fatal"),
		boolFlag("percent-escape", "Percent-escape the output for use in a URL or form payload"),
		stringFlag("config, c", "", "Custom configuration file path"),
	},
}

func runConvert(_ context.Context, cmd *cli.Command) error {
	if err := conf.Init(cmd.String("config")); err != nil {
		return errors.Wrap(err, "init configuration")
	}

	content, err := readInput(cmd)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	if !utf8.Valid(content) {
		label, err := charsetutil.DetectEncoding(content)
		if err != nil {
			return errors.Wrap(err, "detect charset")
		}
		content, err = charsetutil.ToUTF8(content, label)
		if err != nil {
			return errors.Wrap(err, "decode to UTF-8")
		}
	}

	name := cmd.String("error-mode")
	if name == "" {
		name = conf.Convert.ErrorMode
	}
	mode, err := parseErrorMode(name)
	if err != nil {
		return err
	}

	encoder := textenc.EncoderFor(cmd.String("to"))
	if encoder == nil {
		return errors.Newf("no encoder for label %q", cmd.String("to"))
	}

	out := bufio.NewWriter(os.Stdout)
	sink := func(b byte, _ bool) error {
		return out.WriteByte(b)
	}
	if cmd.Bool("percent-escape") {
		sink = percentEscapeSink(out)
	}

	if err = encoder.Process(string(content), mode, sink); err != nil {
		return errors.Wrap(err, "encode")
	}
	return out.Flush()
}

func parseErrorMode(name string) (textenc.ErrorMode, error) {
	switch name {
	case "replacement":
		return textenc.ErrorModeReplacement, nil
	case "html":
		return textenc.ErrorModeHTML, nil
	case "fatal":
		return textenc.ErrorModeFatal, nil
	}
	return 0, errors.Newf("unknown error mode %q", name)
}

// percentEscapeSink writes bytes as a URL component. Bytes the encoder
// flags always-escape are escaped regardless of their value.
func percentEscapeSink(w *bufio.Writer) textenc.Sink {
	return func(b byte, alwaysEscape bool) error {
		if !alwaysEscape && isURLSafe(b) {
			return w.WriteByte(b)
		}
		_, err := fmt.Fprintf(w, "%%%02X", b)
		return err
	}
}

func isURLSafe(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') ||
		b == '-' || b == '_' || b == '.' || b == '~'
}
