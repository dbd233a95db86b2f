// Copyright 2025 The Gogs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package charsetutil guesses and normalizes the charset of legacy text.
package charsetutil

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
	log "unknwon.dev/clog/v2"

	"github.com/gogs/textenc/internal/conf"
)

// DetectEncoding returns the best guess of the encoding of given content.
func DetectEncoding(content []byte) (string, error) {
	if utf8.Valid(content) {
		log.Trace("Detected encoding: UTF-8 (fast)")
		return "UTF-8", nil
	}

	result, err := chardet.NewTextDetector().DetectBest(content)
	if err != nil {
		return "", errors.Wrap(err, "detect")
	}
	if result.Charset != "UTF-8" && len(conf.Detect.ANSICharset) > 0 {
		log.Trace("Using default ANSI charset: %s", conf.Detect.ANSICharset)
		return conf.Detect.ANSICharset, nil
	}

	log.Trace("Detected encoding: %s", result.Charset)
	return result.Charset, nil
}

// ToUTF8 decodes content of the given charset label to UTF-8. When the
// content stops being decodable partway, the nicely decoded part is
// concatenated with the original leftover so no data is lost.
func ToUTF8(content []byte, label string) ([]byte, error) {
	e, name := charset.Lookup(label)
	if e == nil {
		return nil, errors.Newf("unknown charset: %q", label)
	}
	if name == "utf-8" {
		return content, nil
	}

	result, n, err := transform.Bytes(e.NewDecoder(), content)
	if err != nil {
		return append(result, content[n:]...), nil
	}
	return result, nil
}
