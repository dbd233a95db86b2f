// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textenc

import (
	"github.com/cockroachdb/errors"
)

// ErrFatalEncoding reports a code point the target encoding cannot
// represent while ErrorModeFatal is in effect. Match it with errors.Is.
var ErrFatalEncoding = errors.New("fatal encoding error")

// handleError runs the shared unmappable-code-point policy.
// https://encoding.spec.whatwg.org/#concept-encoding-process
func handleError(mode ErrorMode, cp rune, sink Sink) error {
	switch mode {
	case ErrorModeReplacement:
		if err := sink(0xFF, true); err != nil {
			return err
		}
		return sink(0xFD, true)

	case ErrorModeHTML:
		if err := sink('&', true); err != nil {
			return err
		}
		if err := sink('#', true); err != nil {
			return err
		}
		// U+10FFFF is 7 decimal digits, so a small scratch array is enough
		// to reverse them.
		var digits [8]byte
		n := 0
		if cp == 0 {
			digits[0], n = '0', 1
		}
		for next := uint32(cp); next > 0; next /= 10 {
			digits[n] = byte('0' + next%10)
			n++
		}
		for i := n - 1; i >= 0; i-- {
			if err := sink(digits[i], false); err != nil {
				return err
			}
		}
		return sink(';', true)

	case ErrorModeFatal:
		return errors.Wrapf(ErrFatalEncoding, "cannot represent %U", cp)
	}
	return nil
}
