// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

// Repetition combinators.
// Accumulators live on the stack of a single call; a constructed parser
// holds no mutable state and is reusable across inputs and goroutines.
//
// Greedy loops stop at the first failing item. An item that succeeds
// without consuming input also stops the loop and is not accumulated,
// so every loop runs at most len(in)+1 iterations.

// Optional returns a parser that always succeeds.
// If p succeeds, its remainder and Some(value) are returned.
// If p fails, in is returned unchanged with None.
func Optional[A any](p Parser[A]) Parser[Option[A]] {
	return func(in string) (string, Option[A], bool) {
		rest, a, ok := p(in)
		if !ok {
			return in, Option[A]{}, true
		}
		return rest, Option[A]{isSome: true, value: a}, true
	}
}

// Repeated returns a parser that applies p greedily zero or more times,
// collecting the values in order. It never fails; with no match the value
// is nil and the remainder is in.
func Repeated[A any](p Parser[A]) Parser[[]A] {
	return func(in string) (string, []A, bool) {
		var out []A
		rest := in
		for {
			next, a, ok := p(rest)
			if !ok || len(next) == len(rest) {
				return rest, out, true
			}
			out = append(out, a)
			rest = next
		}
	}
}

// Reduce applies p greedily, folding each value into an accumulator that
// starts at initial. It never fails; with no match it produces initial and
// the remainder is in.
//
// fold receives the accumulator by value. Reference-typed accumulators
// such as slices or maps must not be mutated in place when the parser is
// shared, since initial is the same value for every call.
func Reduce[A, B any](p Parser[A], initial B, fold func(B, A) B) Parser[B] {
	return func(in string) (string, B, bool) {
		acc := initial
		rest := in
		for {
			next, a, ok := p(rest)
			if !ok || len(next) == len(rest) {
				return rest, acc, true
			}
			acc = fold(acc, a)
			rest = next
		}
	}
}

// SepBy returns a parser for one or more p separated by sep.
//
// The first item is required: when it fails, SepBy fails, so an empty list
// is never accepted. After each item sep is tried; if sep fails the items so
// far are returned, and if sep succeeds another item is required and its
// failure fails the whole parse. A trailing separator is therefore an error.
// The values of sep are discarded.
func SepBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return func(in string) (string, []A, bool) {
		rest, a, ok := p(in)
		if !ok {
			return in, nil, false
		}
		out := []A{a}
		for {
			afterSep, _, ok := sep(rest)
			if !ok {
				return rest, out, true
			}
			next, a, ok := p(afterSep)
			if !ok {
				return in, nil, false
			}
			if len(next) == len(rest) {
				return rest, out, true
			}
			out = append(out, a)
			rest = next
		}
	}
}
