// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

import (
	"strings"
	"unicode/utf8"
)

// Primitive parsers over string input.
// Characters are runes decoded as UTF-8; an invalid byte is seen by
// predicates as utf8.RuneError and spans one byte.
// Every primitive is atomic: it either succeeds or consumes nothing.

// Literal matches text byte for byte at the start of the input.
func Literal(text string) Parser[Unit] {
	return func(in string) (string, Unit, bool) {
		if !strings.HasPrefix(in, text) {
			return in, Unit{}, false
		}
		return in[len(text):], Unit{}, true
	}
}

// NewLine matches a single line feed.
var NewLine = Literal("\n")

// End succeeds only on empty input.
var End Parser[Unit] = func(in string) (string, Unit, bool) {
	return in, Unit{}, in == ""
}

// ScanTo skips to the first occurrence of c. The value is the skipped
// prefix and the remainder starts at c. It fails when c does not occur.
func ScanTo(c rune) Parser[string] {
	return func(in string) (string, string, bool) {
		i := strings.IndexRune(in, c)
		if i < 0 {
			return in, "", false
		}
		return in[i:], in[:i], true
	}
}

// ScanToFunc is like [ScanTo] but stops at the first rune satisfying f.
func ScanToFunc(f func(rune) bool) Parser[string] {
	return func(in string) (string, string, bool) {
		i := strings.IndexFunc(in, f)
		if i < 0 {
			return in, "", false
		}
		return in[i:], in[:i], true
	}
}

// Characters matches the longest run of leading runes satisfying f.
// It never fails; when the first rune does not satisfy f the value is
// empty and nothing is consumed.
func Characters(f func(rune) bool) Parser[string] {
	return func(in string) (string, string, bool) {
		i := 0
		for i < len(in) {
			r, size := utf8.DecodeRuneInString(in[i:])
			if !f(r) {
				break
			}
			i += size
		}
		return in[i:], in[:i], true
	}
}

// Satisfy matches one rune satisfying f.
func Satisfy(f func(rune) bool) Parser[rune] {
	return func(in string) (string, rune, bool) {
		if in == "" {
			return in, 0, false
		}
		r, size := utf8.DecodeRuneInString(in)
		if !f(r) {
			return in, 0, false
		}
		return in[size:], r, true
	}
}
