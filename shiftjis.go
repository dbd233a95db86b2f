// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"github.com/gogs/textenc/internal/index"
)

// shiftJISPointer is the jis0208 pointer with the band 8272..8835 masked
// out; those rows exist in the index but have no Shift_JIS byte form.
// https://encoding.spec.whatwg.org/#index-shift_jis-pointer
func shiftJISPointer(r rune) (uint16, bool) {
	pointer, ok := index.JIS0208(r)
	if !ok || (pointer >= 8272 && pointer <= 8835) {
		return 0, false
	}
	return pointer, true
}

// shiftJISEncoder encodes the jis0208 repertoire as Shift_JIS.
// https://encoding.spec.whatwg.org/#shift_jis-encoder
type shiftJISEncoder struct{}

func (shiftJISEncoder) Process(text string, mode ErrorMode, sink Sink) error {
	for _, item := range text {
		// U+0080 passes through as a bare byte, unlike in every other
		// encoder of this package.
		if item <= 0x0080 {
			if err := sink(byte(item), false); err != nil {
				return err
			}
			continue
		}

		if item == 0x00A5 {
			if err := sink(0x5C, false); err != nil {
				return err
			}
			continue
		}
		if item == 0x203E {
			if err := sink(0x7E, false); err != nil {
				return err
			}
			continue
		}

		// Half-width katakana is single-byte in Shift_JIS.
		if item >= 0xFF61 && item <= 0xFF9F {
			if err := sink(byte(item-0xFF61+0xA1), false); err != nil {
				return err
			}
			continue
		}

		if item == 0x2212 {
			item = 0xFF0D
		}

		pointer, ok := shiftJISPointer(item)
		if !ok {
			if err := handleError(mode, item, sink); err != nil {
				return err
			}
			continue
		}

		lead := pointer / 188
		leadOffset := uint16(0xC1)
		if lead < 0x1F {
			leadOffset = 0x81
		}
		trail := pointer % 188
		trailOffset := uint16(0x41)
		if trail < 0x3F {
			trailOffset = 0x40
		}
		if err := emit(sink, byte(lead+leadOffset), byte(trail+trailOffset)); err != nil {
			return err
		}
	}
	return nil
}
