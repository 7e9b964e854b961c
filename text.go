// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

import "strings"

// Refinements for parsers whose value is a slice of the input.

// NotEmpty succeeds only when p succeeds with a non-empty value.
// An empty success of p is reported as failure, consuming nothing.
func NotEmpty(p Parser[string]) Parser[string] {
	return func(in string) (string, string, bool) {
		rest, s, ok := p(in)
		if !ok || s == "" {
			return in, "", false
		}
		return rest, s, true
	}
}

// Owned replaces the value of p with an independent copy.
// Values produced by the primitives share memory with the input; use Owned
// when a result is retained after the input should be released.
func Owned(p Parser[string]) Parser[string] {
	return Map(p, strings.Clone)
}

// Recognize discards the value of p and produces the input slice p
// consumed instead.
func Recognize[A any](p Parser[A]) Parser[string] {
	return func(in string) (string, string, bool) {
		rest, _, ok := p(in)
		if !ok {
			return in, "", false
		}
		return rest, in[:len(in)-len(rest)], true
	}
}

// Complete succeeds only when p succeeds and consumes the whole input.
func Complete[A any](p Parser[A]) Parser[A] {
	return FollowedBy(p, End)
}

// Not succeeds without consuming input exactly when p fails.
// It is a negative lookahead, used to stop repetition before a delimiter.
func Not[A any](p Parser[A]) Parser[Unit] {
	return func(in string) (string, Unit, bool) {
		_, _, ok := p(in)
		return in, Unit{}, !ok
	}
}
