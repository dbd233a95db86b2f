// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"github.com/gogs/textenc/internal/index"
)

// eucJPEncoder encodes the jis0208 repertoire as EUC-JP.
// https://encoding.spec.whatwg.org/#euc-jp-encoder
type eucJPEncoder struct{}

func (eucJPEncoder) Process(text string, mode ErrorMode, sink Sink) error {
	for _, item := range text {
		if item < 0x0080 {
			if err := sink(byte(item), false); err != nil {
				return err
			}
			continue
		}

		// Yen sign and overline map onto the 0x5C and 0x7E slots of the
		// JIS-Roman layer.
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

		// Half-width katakana has a dedicated single-shift lead byte.
		if item >= 0xFF61 && item <= 0xFF9F {
			if err := emit(sink, 0x8E, byte(item-0xFF61+0xA1)); err != nil {
				return err
			}
			continue
		}

		if item == 0x2212 {
			item = 0xFF0D
		}

		pointer, ok := index.JIS0208(item)
		if !ok {
			if err := handleError(mode, item, sink); err != nil {
				return err
			}
			continue
		}

		if err := emit(sink, byte(pointer/94+0xA1), byte(pointer%94+0xA1)); err != nil {
			return err
		}
	}
	return nil
}
