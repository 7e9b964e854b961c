// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

// Sequencing and ordered choice.
// Sequences run their parsers against the progressively shrinking
// remainder and fail at the first failing parser with no partial value.

// Seq2 runs p1 then p2. It is [Then] under the sequence naming.
func Seq2[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Pair[A, B]] {
	return Then(p1, p2)
}

// Seq3 runs p1, p2 and p3 in order.
func Seq3[A, B, C any](p1 Parser[A], p2 Parser[B], p3 Parser[C]) Parser[Triple[A, B, C]] {
	return func(in string) (string, Triple[A, B, C], bool) {
		var t Triple[A, B, C]
		rest, a, ok := p1(in)
		if !ok {
			return in, t, false
		}
		rest, b, ok := p2(rest)
		if !ok {
			return in, t, false
		}
		rest, c, ok := p3(rest)
		if !ok {
			return in, t, false
		}
		t.Fst, t.Snd, t.Thd = a, b, c
		return rest, t, true
	}
}

// Seq4 runs p1, p2, p3 and p4 in order.
func Seq4[A, B, C, D any](p1 Parser[A], p2 Parser[B], p3 Parser[C], p4 Parser[D]) Parser[Quad[A, B, C, D]] {
	return func(in string) (string, Quad[A, B, C, D], bool) {
		var q Quad[A, B, C, D]
		rest, a, ok := p1(in)
		if !ok {
			return in, q, false
		}
		rest, b, ok := p2(rest)
		if !ok {
			return in, q, false
		}
		rest, c, ok := p3(rest)
		if !ok {
			return in, q, false
		}
		rest, d, ok := p4(rest)
		if !ok {
			return in, q, false
		}
		q.Fst, q.Snd, q.Thd, q.Fth = a, b, c, d
		return rest, q, true
	}
}

// Seq runs any number of parsers of the same type in order, collecting
// their values positionally. With no parsers it succeeds with an empty
// slice and consumes nothing.
func Seq[A any](ps ...Parser[A]) Parser[[]A] {
	ps = append([]Parser[A](nil), ps...)
	return func(in string) (string, []A, bool) {
		out := make([]A, 0, len(ps))
		rest := in
		for _, p := range ps {
			next, a, ok := p(rest)
			if !ok {
				return in, nil, false
			}
			out = append(out, a)
			rest = next
		}
		return rest, out, true
	}
}

// OneOf tries each parser in order against the same input and returns the
// first success. It fails only when every alternative fails.
//
// Choice is ordered, not longest-match: an earlier alternative that matches
// a shorter prefix shadows a later one that would match more. No
// backtracking state is kept, since a failed alternative consumes nothing.
func OneOf[A any](ps ...Parser[A]) Parser[A] {
	ps = append([]Parser[A](nil), ps...)
	return func(in string) (string, A, bool) {
		for _, p := range ps {
			if rest, a, ok := p(in); ok {
				return rest, a, true
			}
		}
		var zero A
		return in, zero, false
	}
}
