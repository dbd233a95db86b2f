// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"github.com/gogs/textenc/internal/index"
)

// big5Encoder encodes the Big5 repertoire.
// https://encoding.spec.whatwg.org/#big5-encoder
type big5Encoder struct{}

func (big5Encoder) Process(text string, mode ErrorMode, sink Sink) error {
	for _, item := range text {
		if item < 0x0080 {
			if err := sink(byte(item), false); err != nil {
				return err
			}
			continue
		}

		pointer, ok := index.Big5(item)
		if !ok {
			if err := handleError(mode, item, sink); err != nil {
				return err
			}
			continue
		}

		lead := pointer/157 + 0x81
		trail := pointer % 157
		trailOffset := uint16(0x62)
		if trail < 0x3F {
			trailOffset = 0x40
		}
		if err := emit(sink, byte(lead), byte(trail+trailOffset)); err != nil {
			return err
		}
	}
	return nil
}
