// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/gogs/textenc"
)

var listCommand = cli.Command{
	Name:   "list",
	Usage:  "List encodings that can be encoded to",
	Action: runList,
	Flags: []cli.Flag{
		boolFlag("json", "Print the list as JSON"),
	},
}

// commonLabels holds a few well-known aliases per canonical name, purely
// informational; any label the Encoding Standard knows is accepted.
var commonLabels = map[string][]string{
	"big5":        {"cn-big5", "csbig5", "x-x-big5"},
	"euc-jp":      {"cseucpkdfmtjapanese", "x-euc-jp"},
	"euc-kr":      {"cseuckr", "korean", "windows-949"},
	"gb18030":     {},
	"gbk":         {"chinese", "gb2312", "x-gbk"},
	"iso-2022-jp": {"csiso2022jp"},
	"shift_jis":   {"ms932", "sjis", "windows-31j"},
	"utf-8":       {"unicode-1-1-utf-8", "utf8"},
}

func runList(_ context.Context, cmd *cli.Command) error {
	names := textenc.EncoderNames()

	if cmd.Bool("json") {
		type encoding struct {
			Name   string   `json:"name"`
			Labels []string `json:"labels"`
		}
		list := make([]encoding, 0, len(names))
		for _, name := range names {
			list = append(list, encoding{Name: name, Labels: commonLabels[name]})
		}
		json := jsoniter.ConfigCompatibleWithStandardLibrary
		result, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal list")
		}
		fmt.Println(string(result))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Common labels"})
	for _, name := range names {
		table.Append([]string{name, strings.Join(commonLabels[name], ", ")})
	}
	table.Render()
	return nil
}
