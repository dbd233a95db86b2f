// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"github.com/gogs/textenc/internal/index"
)

// gb18030Encoder encodes GB18030 or, when gbk is set, its GBK subset.
// https://encoding.spec.whatwg.org/#gb18030-encoder
type gb18030Encoder struct {
	// gbk restricts output to the two-byte repertoire plus the 0x80 euro
	// byte of Code Page 936; code points needing the four-byte form become
	// errors.
	gbk bool
}

func (e gb18030Encoder) Process(text string, mode ErrorMode, sink Sink) error {
	for _, item := range text {
		if item < 0x0080 {
			if err := sink(byte(item), false); err != nil {
				return err
			}
			continue
		}

		// U+E5E5 is unmappable by fiat even though the index could carry
		// it; it is the PUA slot legacy content used as a blank.
		if item == 0xE5E5 {
			if err := handleError(mode, item, sink); err != nil {
				return err
			}
			continue
		}

		if e.gbk && item == 0x20AC {
			if err := sink(0x80, false); err != nil {
				return err
			}
			continue
		}

		if pointer, ok := index.GB18030(item); ok {
			lead := pointer/190 + 0x81
			trail := pointer % 190
			trailOffset := uint16(0x41)
			if trail < 0x3F {
				trailOffset = 0x40
			}
			if err := emit(sink, byte(lead), byte(trail+trailOffset)); err != nil {
				return err
			}
			continue
		}

		if e.gbk {
			if err := handleError(mode, item, sink); err != nil {
				return err
			}
			continue
		}

		// Four-byte form: the ranges pointer unrolls into base-10/126/10
		// digits.
		pointer := gb18030RangesPointer(item)
		byte1 := pointer / (10 * 126 * 10)
		pointer %= 10 * 126 * 10
		byte2 := pointer / (10 * 126)
		pointer %= 10 * 126
		byte3 := pointer / 10
		byte4 := pointer % 10
		if err := emit(sink, byte(byte1+0x81), byte(byte2+0x30), byte(byte3+0x81), byte(byte4+0x30)); err != nil {
			return err
		}
	}
	return nil
}

// gb18030RangesPointer resolves a code point through the gb18030 ranges
// table: the last range starting at or below the code point supplies the
// base pointer, and the code point's distance into the range is added.
// https://encoding.spec.whatwg.org/#index-gb18030-ranges-pointer
func gb18030RangesPointer(r rune) uint32 {
	if r == 0xE7C7 {
		return 7457
	}

	ranges := index.GB18030Ranges()
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if ranges[mid].CodePoint <= r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	entry := ranges[lo-1]
	return entry.Pointer + uint32(r-entry.CodePoint)
}
