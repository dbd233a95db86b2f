// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBig5Encoder(t *testing.T) {
	tests := []struct {
		name string
		text string
		exp  []byte
	}{
		{
			name: "first ideograph",
			text: "一",
			exp:  []byte{0xA4, 0x40},
		}, {
			name: "mixed with ascii",
			text: "a一b",
			exp:  []byte{0x61, 0xA4, 0x40, 0x62},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, encode(t, "big5", test.text, ErrorModeFatal))
		})
	}
}

func TestBig5EncoderLeadRange(t *testing.T) {
	// Encoder pointers start at (0xA1-0x81)*157, so every lead byte is at
	// least 0xA1: the lower rows are the decode-only Hong Kong region.
	for r := rune(0x80); r <= 0xFFFF; r++ {
		rec := &recorder{}
		if EncoderForExactName("big5").Process(string(r), ErrorModeFatal, rec.sink) != nil {
			continue
		}
		assert.GreaterOrEqual(t, rec.bytes[0], byte(0xA1), "U+%04X", r)
	}
}

func TestBig5EncoderUnmappable(t *testing.T) {
	assert.Equal(t, []byte("&#128512;"), encode(t, "big5", "\U0001F600", ErrorModeHTML))

	err := EncoderForExactName("big5").Process("\U0001F600", ErrorModeFatal, (&recorder{}).sink)
	assert.ErrorIs(t, err, ErrFatalEncoding)
}
