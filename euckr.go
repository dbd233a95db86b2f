// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"github.com/gogs/textenc/internal/index"
)

// eucKREncoder encodes the EUC-KR repertoire.
// https://encoding.spec.whatwg.org/#euc-kr-encoder
type eucKREncoder struct{}

func (eucKREncoder) Process(text string, mode ErrorMode, sink Sink) error {
	for _, item := range text {
		if item < 0x0080 {
			if err := sink(byte(item), false); err != nil {
				return err
			}
			continue
		}

		pointer, ok := index.EUCKR(item)
		if !ok {
			if err := handleError(mode, item, sink); err != nil {
				return err
			}
			continue
		}

		if err := emit(sink, byte(pointer/190+0x81), byte(pointer%190+0x41)); err != nil {
			return err
		}
	}
	return nil
}
