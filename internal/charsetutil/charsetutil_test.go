// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charsetutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEncoding(t *testing.T) {
	name, err := DetectEncoding([]byte("plain old ASCII"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", name)

	name, err = DetectEncoding([]byte("\xe4\xbd\xa0\xe5\xa5\xbd"))
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", name)
}

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		label   string
		expVal  string
	}{
		{
			name:    "utf-8 passthrough",
			content: []byte("你好"),
			label:   "utf-8",
			expVal:  "你好",
		}, {
			name:    "gbk",
			content: []byte{0xC4, 0xE3, 0xBA, 0xC3},
			label:   "gbk",
			expVal:  "你好",
		}, {
			name:    "euc-kr",
			content: []byte{0xC7, 0xD1},
			label:   "euc-kr",
			expVal:  "한",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := ToUTF8(test.content, test.label)
			require.NoError(t, err)
			assert.Equal(t, test.expVal, string(result))
		})
	}
}

func TestToUTF8UnknownCharset(t *testing.T) {
	_, err := ToUTF8([]byte("x"), "no-such-charset")
	assert.Error(t, err)
}
