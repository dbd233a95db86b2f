// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package index exposes the encoder-side view of the WHATWG Encoding
// Standard index tables: for each legacy encoding, the mapping from a code
// point to its index pointer.
//
// The tables are not vendored. golang.org/x/text generates its decode
// tables from the same WHATWG index files, so this package recovers each
// reverse index once, lazily, by walking the encoding's byte space through
// the x/text decoder and inverting the pointer arithmetic.
package index

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// GB18030Range associates the first code point of a contiguous run with
// its first four-byte pointer. The run extends to the next entry.
type GB18030Range struct {
	CodePoint rune
	Pointer   uint32
}

var (
	jis0208Once sync.Once
	jis0208Map  map[rune]uint16

	eucKROnce sync.Once
	eucKRMap  map[rune]uint16

	big5Once sync.Once
	big5Map  map[rune]uint16

	gb18030Once sync.Once
	gb18030Map  map[rune]uint16

	gb18030RangesOnce sync.Once
	gb18030Ranges     []GB18030Range
)

// JIS0208 returns the first jis0208 index pointer for a code point.
func JIS0208(r rune) (uint16, bool) {
	jis0208Once.Do(buildJIS0208)
	p, ok := jis0208Map[r]
	return p, ok
}

// EUCKR returns the EUC-KR index pointer for a code point.
func EUCKR(r rune) (uint16, bool) {
	eucKROnce.Do(buildEUCKR)
	p, ok := eucKRMap[r]
	return p, ok
}

// Big5 returns the Big5 index pointer for a code point, honoring the
// encoder-side rules of the Encoding Standard: pointers below
// (0xA1-0x81)*157 belong to the decode-only Hong Kong region, and six
// code points take their last pointer instead of their first.
func Big5(r rune) (uint16, bool) {
	big5Once.Do(buildBig5)
	p, ok := big5Map[r]
	return p, ok
}

// GB18030 returns the two-byte gb18030 index pointer for a code point.
func GB18030(r rune) (uint16, bool) {
	gb18030Once.Do(buildGB18030)
	p, ok := gb18030Map[r]
	return p, ok
}

// GB18030Ranges returns the gb18030 ranges table, sorted by code point,
// for resolving four-byte pointers by predecessor search. The returned
// slice is shared and must not be modified.
func GB18030Ranges() []GB18030Range {
	gb18030RangesOnce.Do(buildGB18030Ranges)
	return gb18030Ranges
}

// decodePair feeds one legacy byte pair through dec and reports the single
// code point it decodes to. Pairs outside the encoding come back as
// U+FFFD, or as more than one code point, and are rejected.
func decodePair(dec *encoding.Decoder, b0, b1 byte) (rune, bool) {
	out, err := dec.Bytes([]byte{b0, b1})
	if err != nil {
		return 0, false
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError || size != len(out) {
		return 0, false
	}
	return r, true
}

// buildJIS0208 recovers the reverse jis0208 index by walking the two-byte
// Shift_JIS space in pointer order. Shift_JIS reaches every pointer the
// index defines, including the 8836+ region that EUC-JP cannot express,
// so keeping the first hit per code point reproduces the index's
// first-pointer rule.
func buildJIS0208() {
	jis0208Map = make(map[rune]uint16, 7500)
	dec := japanese.ShiftJIS.NewDecoder()
	for lead := 0x81; lead <= 0xFC; lead++ {
		if lead >= 0xA0 && lead <= 0xDF {
			// Single-byte half-width katakana block.
			continue
		}
		leadOffset := 0xC1
		if lead < 0xA0 {
			leadOffset = 0x81
		}
		for trail := 0x40; trail <= 0xFC; trail++ {
			if trail == 0x7F {
				continue
			}
			trailOffset := 0x41
			if trail < 0x7F {
				trailOffset = 0x40
			}
			pointer := (lead-leadOffset)*188 + trail - trailOffset
			r, ok := decodePair(dec, byte(lead), byte(trail))
			if !ok {
				continue
			}
			if _, seen := jis0208Map[r]; !seen {
				jis0208Map[r] = uint16(pointer)
			}
		}
	}
}

func buildEUCKR() {
	eucKRMap = make(map[rune]uint16, 17500)
	dec := korean.EUCKR.NewDecoder()
	for lead := 0x81; lead <= 0xFE; lead++ {
		for trail := 0x41; trail <= 0xFE; trail++ {
			pointer := (lead-0x81)*190 + trail - 0x41
			r, ok := decodePair(dec, byte(lead), byte(trail))
			if !ok {
				continue
			}
			if _, seen := eucKRMap[r]; !seen {
				eucKRMap[r] = uint16(pointer)
			}
		}
	}
}

// big5LastPointer reports the code points whose encoder pointer is the
// last one in the index rather than the first.
// https://encoding.spec.whatwg.org/#index-big5-pointer
func big5LastPointer(r rune) bool {
	switch r {
	case 0x2550, 0x255E, 0x2561, 0x256A, 0x5341, 0x5345:
		return true
	}
	return false
}

func buildBig5() {
	big5Map = make(map[rune]uint16, 14000)
	dec := traditionalchinese.Big5.NewDecoder()
	// Lead 0xA1 is the (0xA1-0x81)*157 = 5024 boundary: everything below
	// it is the decode-only Hong Kong region.
	for lead := 0xA1; lead <= 0xFE; lead++ {
		for trail := 0x40; trail <= 0xFE; trail++ {
			if trail > 0x7E && trail < 0xA1 {
				continue
			}
			trailOffset := 0x62
			if trail < 0x7F {
				trailOffset = 0x40
			}
			pointer := (lead-0x81)*157 + trail - trailOffset
			r, ok := decodePair(dec, byte(lead), byte(trail))
			if !ok {
				continue
			}
			if _, seen := big5Map[r]; !seen || big5LastPointer(r) {
				big5Map[r] = uint16(pointer)
			}
		}
	}
}

func buildGB18030() {
	gb18030Map = make(map[rune]uint16, 23000)
	dec := simplifiedchinese.GB18030.NewDecoder()
	for lead := 0x81; lead <= 0xFE; lead++ {
		for trail := 0x40; trail <= 0xFE; trail++ {
			if trail == 0x7F {
				continue
			}
			trailOffset := 0x41
			if trail < 0x7F {
				trailOffset = 0x40
			}
			pointer := (lead-0x81)*190 + trail - trailOffset
			r, ok := decodePair(dec, byte(lead), byte(trail))
			if !ok {
				continue
			}
			if _, seen := gb18030Map[r]; !seen {
				gb18030Map[r] = uint16(pointer)
			}
		}
	}
}

// buildGB18030Ranges recovers the ranges table by decoding every four-byte
// sequence below the supplementary-plane cutover in one pass and recording
// each pointer where the code point stops being contiguous with its
// predecessor. Pointers from 189000 up map linearly onto the supplementary
// planes and need a single entry.
func buildGB18030Ranges() {
	const bmpPointers = 39420

	buf := make([]byte, 0, bmpPointers*4)
	for p := 0; p < bmpPointers; p++ {
		rem := p
		b1 := rem / 12600
		rem %= 12600
		b2 := rem / 1260
		rem %= 1260
		buf = append(buf, byte(b1+0x81), byte(b2+0x30), byte(rem/10+0x81), byte(rem%10+0x30))
	}

	out, err := simplifiedchinese.GB18030.NewDecoder().Bytes(buf)
	if err != nil {
		panic("index: decode gb18030 four-byte space: " + err.Error())
	}

	ranges := make([]GB18030Range, 0, 256)
	pointer, prev := 0, rune(-2)
	for i := 0; i < len(out); {
		r, size := utf8.DecodeRune(out[i:])
		i += size
		if r != prev+1 {
			ranges = append(ranges, GB18030Range{CodePoint: r, Pointer: uint32(pointer)})
		}
		prev = r
		pointer++
	}
	if pointer != bmpPointers {
		panic("index: gb18030 four-byte space decoded to unexpected length")
	}

	gb18030Ranges = append(ranges, GB18030Range{CodePoint: 0x10000, Pointer: 189000})
}
