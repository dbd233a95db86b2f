// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package textenc implements the encoder side of the WHATWG Encoding
// Standard (https://encoding.spec.whatwg.org) for the encodings that have
// one: UTF-8 and the legacy multi-byte encodings EUC-JP, ISO-2022-JP,
// Shift_JIS, EUC-KR, Big5, GB18030 and GBK.
//
// An Encoder turns a stream of Unicode code points into a raw byte stream,
// delivering the bytes one at a time to a caller-supplied Sink. Decoding is
// out of scope; use golang.org/x/text for that direction.
package textenc

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrorMode controls what an encoder does with a code point the target
// encoding cannot represent.
type ErrorMode int

const (
	// ErrorModeReplacement emits the two bytes 0xFF 0xFD, flagged for
	// unconditional percent-escaping.
	ErrorModeReplacement ErrorMode = iota

	// ErrorModeHTML emits a decimal numeric character reference such as
	// "&#128512;", with the framing bytes flagged for escaping.
	ErrorModeHTML

	// ErrorModeFatal aborts the encode with ErrFatalEncoding.
	ErrorModeFatal
)

// Sink consumes output bytes in strict stream order, one call per byte.
// alwaysEscape marks bytes that a percent-encoding caller must escape no
// matter what their value is; callers without such a layer may ignore it.
// A non-nil return aborts the encode and is handed back to the Process
// caller verbatim.
type Sink func(b byte, alwaysEscape bool) error

// Encoder encodes UTF-8 text into one target encoding.
//
// Encoders are immutable and safe for concurrent use. Invalid UTF-8 in the
// input surfaces as U+FFFD and is encoded like any other U+FFFD: encodings
// that can represent it (UTF-8, GB18030) emit its bytes, the others apply
// the selected ErrorMode.
type Encoder interface {
	// Process encodes text and writes the result to sink. It returns the
	// first error reported by sink, ErrFatalEncoding when mode is
	// ErrorModeFatal and a code point cannot be represented, or nil.
	Process(text string, mode ErrorMode, sink Sink) error
}

var encoders = map[string]Encoder{
	"utf-8":       utf8Encoder{},
	"big5":        big5Encoder{},
	"euc-jp":      eucJPEncoder{},
	"iso-2022-jp": iso2022JPEncoder{},
	"shift_jis":   shiftJISEncoder{},
	"euc-kr":      eucKREncoder{},
	"gb18030":     gb18030Encoder{},
	"gbk":         gb18030Encoder{gbk: true},
}

// EncoderForExactName returns the encoder for a canonical encoding name,
// matched ASCII case-insensitively, or nil when no encoder exists for the
// name.
func EncoderForExactName(name string) Encoder {
	return encoders[strings.ToLower(name)]
}

// EncoderFor normalizes an encoding label the way the Encoding Standard
// does ("sjis", "csbig5", surrounding whitespace, ...) and returns the
// encoder for the resulting canonical name. It returns nil when the label
// is unknown or names an encoding without an encoder.
func EncoderFor(label string) Encoder {
	_, name := charset.Lookup(label)
	if name == "" {
		return nil
	}
	return EncoderForExactName(name)
}

// EncoderNames returns the canonical names of all encodings that have an
// encoder, sorted.
func EncoderNames() []string {
	return slices.Sorted(maps.Keys(encoders))
}

// emit hands each byte to sink without the always-escape flag, stopping at
// the first error.
func emit(sink Sink, bs ...byte) error {
	for _, b := range bs {
		if err := sink(b, false); err != nil {
			return err
		}
	}
	return nil
}
