// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

// Monad operations for parsers.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map, Then, FollowedBy, Preceded and Between are derived operations kept
// as direct closures to avoid the intermediate Return parsers that a
// Bind-based definition would build on every call.

// Bind sequences two parsers (monadic bind).
// It runs p, then passes the value to f to get the parser for the remainder.
// f is not called when p fails.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in string) (string, B, bool) {
		rest, a, ok := p(in)
		if !ok {
			var zero B
			return in, zero, false
		}
		rest, b, ok := f(a)(rest)
		if !ok {
			var zero B
			return in, zero, false
		}
		return rest, b, true
	}
}

// Map applies a pure function to the value of a successful parse.
// Failure propagates unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in string) (string, B, bool) {
		rest, a, ok := p(in)
		if !ok {
			var zero B
			return in, zero, false
		}
		return rest, f(a), true
	}
}

// Then runs p and then q on the remainder, pairing both values.
// q is not attempted when p fails.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(in string) (string, Pair[A, B], bool) {
		rest, a, ok := p(in)
		if !ok {
			return in, Pair[A, B]{}, false
		}
		rest, b, ok := q(rest)
		if !ok {
			return in, Pair[A, B]{}, false
		}
		return rest, Pair[A, B]{Fst: a, Snd: b}, true
	}
}

// FollowedBy runs p and then q, keeping only the value of p.
// It is used to consume trailers and delimiters.
func FollowedBy[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return func(in string) (string, A, bool) {
		var zero A
		rest, a, ok := p(in)
		if !ok {
			return in, zero, false
		}
		if rest, _, ok = q(rest); !ok {
			return in, zero, false
		}
		return rest, a, true
	}
}

// Preceded runs p and then q, keeping only the value of q.
func Preceded[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return func(in string) (string, B, bool) {
		rest, _, ok := p(in)
		if !ok {
			var zero B
			return in, zero, false
		}
		rest, b, ok := q(rest)
		if !ok {
			var zero B
			return in, zero, false
		}
		return rest, b, true
	}
}

// Between runs left, p and right in order, keeping only the value of p.
func Between[L, A, R any](left Parser[L], p Parser[A], right Parser[R]) Parser[A] {
	return FollowedBy(Preceded(left, p), right)
}
