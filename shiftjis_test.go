// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogs/textenc/internal/index"
)

func TestShiftJISEncoder(t *testing.T) {
	tests := []struct {
		name string
		text string
		exp  []byte
	}{
		{
			name: "minus sign alias",
			text: "−", // U+2212 encodes as the full-width hyphen-minus
			exp:  []byte{0x81, 0x7C},
		}, {
			name: "u+0080 passes through",
			text: "\u0080",
			exp:  []byte{0x80},
		}, {
			name: "fixups",
			text: "¥‾",
			exp:  []byte{0x5C, 0x7E},
		}, {
			name: "half-width katakana stays single byte",
			text: "ｦｱ",
			exp:  []byte{0xA6, 0xB1},
		}, {
			name: "hiragana",
			text: "あ",
			exp:  []byte{0x82, 0xA0},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, encode(t, "shift_jis", test.text, ErrorModeFatal))
		})
	}
}

func TestShiftJISEncoderExcludedPointerBand(t *testing.T) {
	// Code points whose first jis0208 pointer falls in 8272..8835 have no
	// Shift_JIS byte form and must take the error path.
	checked := 0
	for r := rune(0x80); r <= 0xFFFF; r++ {
		pointer, ok := index.JIS0208(r)
		if !ok || pointer < 8272 || pointer > 8835 {
			continue
		}
		checked++

		rec := &recorder{}
		require.NoError(t, EncoderForExactName("shift_jis").Process(string(r), ErrorModeReplacement, rec.sink))
		assert.Equal(t, []byte{0xFF, 0xFD}, rec.bytes, "U+%04X (pointer %d)", r, pointer)
	}
	assert.NotZero(t, checked, "expected the index to carry pointers in the excluded band")
}

func TestShiftJISEncoderUnmappable(t *testing.T) {
	assert.Equal(t, []byte("&#8364;"), encode(t, "shift_jis", "€", ErrorModeHTML))

	err := EncoderForExactName("shift_jis").Process("€", ErrorModeFatal, (&recorder{}).sink)
	assert.ErrorIs(t, err, ErrFatalEncoding)
}
