// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	err := os.WriteFile(path, []byte(`
[convert]
ERROR_MODE = html

[detect]
ANSI_CHARSET = windows-1252
`), 0644)
	require.NoError(t, err)

	require.NoError(t, Init(path))
	assert.Equal(t, "html", Convert.ErrorMode)
	assert.Equal(t, "windows-1252", Detect.ANSICharset)
}

func TestInitMissingFile(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "not_found.ini"))
	assert.Error(t, err)
}
