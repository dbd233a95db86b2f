// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

// utf8Encoder serializes code points as UTF-8.
// https://encoding.spec.whatwg.org/#utf-8-encoder
type utf8Encoder struct{}

func (utf8Encoder) Process(text string, _ ErrorMode, sink Sink) error {
	for _, item := range text {
		if item < 0x0080 {
			if err := sink(byte(item), false); err != nil {
				return err
			}
			continue
		}

		// Lead-byte offset and trailing-byte count by code point range.
		var count uint
		var offset rune
		switch {
		case item <= 0x07FF:
			count, offset = 1, 0xC0
		case item <= 0xFFFF:
			count, offset = 2, 0xE0
		default:
			count, offset = 3, 0xF0
		}

		if err := sink(byte(item>>(6*count)+offset), false); err != nil {
			return err
		}
		for count > 0 {
			temp := item >> (6 * (count - 1))
			if err := sink(byte(0x80|(temp&0x3F)), false); err != nil {
				return err
			}
			count--
		}
	}
	return nil
}
