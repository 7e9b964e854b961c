// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

import "sync"

// Parser represents a parse from a string input view.
// Parser[A] recognizes a prefix of in and produces a value of type A.
//
// On success it returns the unconsumed remainder, which is always a suffix
// of in, the produced value, and true. On failure it returns in unchanged,
// the zero value and false; nothing is consumed.
type Parser[A any] func(in string) (rest string, a A, ok bool)

// Parse applies p to in.
func (p Parser[A]) Parse(in string) (rest string, a A, ok bool) {
	return p(in)
}

// Unit is the value of parsers that only recognize input.
type Unit struct{}

// Return lifts a pure value into a parser.
// The resulting parser always succeeds without consuming input.
func Return[A any](a A) Parser[A] {
	return func(in string) (string, A, bool) {
		return in, a, true
	}
}

// Empty always succeeds, consumes nothing and produces Unit.
// It is the identity element of sequencing.
var Empty = Return(Unit{})

// Fail returns a parser that fails on every input.
// It is the identity element of [OneOf].
func Fail[A any]() Parser[A] {
	return failed[A]
}

// failed is the named failing parser.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func failed[A any](in string) (string, A, bool) {
	var zero A
	return in, zero, false
}

// Lazy defers construction of a parser until it is first applied.
// This is the primitive for recursive grammars, where a rule refers to
// itself before the variable holding it is assigned.
// f runs at most once, on the first application.
func Lazy[A any](f func() Parser[A]) Parser[A] {
	get := sync.OnceValue(f)
	return func(in string) (string, A, bool) {
		return get()(in)
	}
}

// Consumed reports how many bytes a parser consumed between the view it was
// given and the remainder it returned.
// rest must be a suffix of in.
func Consumed(in, rest string) int {
	return len(in) - len(rest)
}
