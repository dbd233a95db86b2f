// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"github.com/gogs/textenc/internal/index"
)

// iso2022JPState tracks which character layer the byte stream is currently
// announcing via escape sequences.
type iso2022JPState int

const (
	stateASCII iso2022JPState = iota
	stateRoman
	stateJIS0208
)

// iso2022JPEncoder encodes the jis0208 repertoire as ISO-2022-JP. The
// escape-sequence state lives for a single Process call, so the shared
// instance stays safe for concurrent use.
// https://encoding.spec.whatwg.org/#iso-2022-jp-encoder
type iso2022JPEncoder struct{}

func (e iso2022JPEncoder) Process(text string, mode ErrorMode, sink Sink) error {
	state := stateASCII
	for _, item := range text {
		var err error
		state, err = e.processItem(item, state, mode, sink)
		if err != nil {
			return err
		}
	}

	// Leave the stream in ASCII so a concatenating consumer starts clean.
	if state != stateASCII {
		return emit(sink, 0x1B, 0x28, 0x42)
	}
	return nil
}

// processItem encodes one code point under the given state and returns the
// state for the next one. A layer switch emits its escape sequence and
// re-enters with the same code point; at most one switch happens before
// the code point is consumed.
func (e iso2022JPEncoder) processItem(item rune, state iso2022JPState, mode ErrorMode, sink Sink) (iso2022JPState, error) {
	// SO, SI and ESC would let input forge escape sequences.
	if state == stateASCII || state == stateRoman {
		if item == 0x000E || item == 0x000F || item == 0x001B {
			return state, handleError(mode, 0xFFFD, sink)
		}
	}

	if state == stateASCII && item < 0x0080 {
		return state, sink(byte(item), false)
	}

	if state == stateRoman && ((item < 0x0080 && item != 0x005C && item != 0x007E) || item == 0x00A5 || item == 0x203E) {
		switch item {
		case 0x00A5:
			return state, sink(0x5C, false)
		case 0x203E:
			return state, sink(0x7E, false)
		}
		return state, sink(byte(item), false)
	}

	if item < 0x0080 && state != stateASCII {
		if err := emit(sink, 0x1B, 0x28, 0x42); err != nil {
			return state, err
		}
		return e.processItem(item, stateASCII, mode, sink)
	}

	if (item == 0x00A5 || item == 0x203E) && state != stateRoman {
		if err := emit(sink, 0x1B, 0x28, 0x4A); err != nil {
			return state, err
		}
		return e.processItem(item, stateRoman, mode, sink)
	}

	if item == 0x2212 {
		item = 0xFF0D
	}

	// Half-width katakana narrows to its full-width equivalent before the
	// jis0208 lookup.
	if item >= 0xFF61 && item <= 0xFF9F {
		item = index.ISO2022JPKatakana(int(item - 0xFF61))
	}

	pointer, ok := index.JIS0208(item)
	if !ok {
		if state == stateJIS0208 {
			// The escape emitted here is the Roman one (1B 28 4A) even
			// though the state restores to ASCII.
			if err := emit(sink, 0x1B, 0x28, 0x4A); err != nil {
				return state, err
			}
			return e.processItem(item, stateASCII, mode, sink)
		}
		return state, handleError(mode, item, sink)
	}

	if state != stateJIS0208 {
		if err := emit(sink, 0x1B, 0x24, 0x42); err != nil {
			return state, err
		}
		return e.processItem(item, stateJIS0208, mode, sink)
	}

	return state, emit(sink, byte(pointer/94+0x21), byte(pointer%94+0x21))
}
