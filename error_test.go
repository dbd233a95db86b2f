// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorReplacement(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, handleError(ErrorModeReplacement, 0x1F600, rec.sink))
	assert.Equal(t, []byte{0xFF, 0xFD}, rec.bytes)
	assert.Equal(t, []bool{true, true}, rec.escapes)
}

func TestHandleErrorHTML(t *testing.T) {
	tests := []struct {
		cp  rune
		exp string
	}{
		{cp: 0, exp: "&#0;"},
		{cp: 9, exp: "&#9;"},
		{cp: 0xA9, exp: "&#169;"},
		{cp: 0x1F600, exp: "&#128512;"},
		{cp: 0x10FFFF, exp: "&#1114111;"},
	}
	for _, test := range tests {
		t.Run(test.exp, func(t *testing.T) {
			rec := &recorder{}
			require.NoError(t, handleError(ErrorModeHTML, test.cp, rec.sink))
			assert.Equal(t, test.exp, string(rec.bytes))

			// Only the framing bytes ask for unconditional escaping.
			for i, escape := range rec.escapes {
				assert.Equal(t, i == 0 || i == 1 || i == len(rec.escapes)-1, escape, "byte %d", i)
			}
		})
	}
}

func TestHandleErrorFatal(t *testing.T) {
	rec := &recorder{}
	err := handleError(ErrorModeFatal, 0xE5E5, rec.sink)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFatalEncoding)
	assert.Empty(t, rec.bytes)
}

func TestHandleErrorSinkFailure(t *testing.T) {
	calls := 0
	sink := func(byte, bool) error {
		calls++
		if calls == 4 {
			return assert.AnError
		}
		return nil
	}

	// Fails on the second digit of "&#169;".
	err := handleError(ErrorModeHTML, 0xA9, sink)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 4, calls)
}
