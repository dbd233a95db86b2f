// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package conf loads the optional textconv configuration file.
package conf

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	log "unknwon.dev/clog/v2"

	"github.com/gogs/textenc/internal/osutil"
)

func init() {
	// Initialize the primary logger until a command decides otherwise.
	err := log.NewConsole()
	if err != nil {
		panic("init console logger: " + err.Error())
	}
}

// Convert holds defaults for the "convert" command.
var Convert = struct {
	ErrorMode string
}{
	ErrorMode: "replacement",
}

// Detect holds defaults for the "detect" command. ANSICharset overrides
// non-UTF-8 detection results when set.
var Detect = struct {
	ANSICharset string `ini:"ANSI_CHARSET"`
}{}

// File is the loaded configuration file, or nil when none was found.
var File *ini.File

// Init initializes configuration from the given file. If `customConf` is
// empty, it falls back to the default location, i.e.
// "<USER CONFIG DIR>/textconv/app.ini", and silently keeps the built-in
// defaults when no file exists there. It is safe to call this function
// multiple times with desired `customConf`, but it is not concurrent safe.
func Init(customConf string) error {
	if customConf == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		customConf = filepath.Join(dir, "textconv", "app.ini")
		if !osutil.IsFile(customConf) {
			return nil
		}
	}

	var err error
	File, err = ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, customConf)
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}
	File.NameMapper = ini.SnackCase

	if err = File.Section("convert").MapTo(&Convert); err != nil {
		return errors.Wrap(err, `mapping "convert" section`)
	}
	if err = File.Section("detect").MapTo(&Detect); err != nil {
		return errors.Wrap(err, `mapping "detect" section`)
	}
	return nil
}
