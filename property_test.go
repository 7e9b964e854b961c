// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb_test

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/pcomb"
)

const propertyN = 1000

// randInput returns a random string of length [0, 12] over a small
// alphabet, so literals and separators match often.
func randInput(rng *rand.Rand) string {
	const alphabet = "ab,1 "
	n := rng.IntN(13)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}

// randParser returns a random consuming-or-failing parser producing the
// consumed text.
func randParser(rng *rand.Rand) pcomb.Parser[string] {
	lits := []string{"a", "ab", "b", ",", "1", "a1"}
	switch rng.IntN(4) {
	case 0:
		return pcomb.Recognize(pcomb.Literal(lits[rng.IntN(len(lits))]))
	case 1:
		return pcomb.NotEmpty(pcomb.Characters(func(r rune) bool { return r == 'a' || r == 'b' }))
	case 2:
		return pcomb.NotEmpty(pcomb.ScanTo(','))
	default:
		return pcomb.Recognize(pcomb.Satisfy(func(r rune) bool { return r != ' ' }))
	}
}

type outcome[A comparable] struct {
	rest string
	a    A
	ok   bool
}

func run[A comparable](p pcomb.Parser[A], in string) outcome[A] {
	rest, a, ok := p(in)
	return outcome[A]{rest, a, ok}
}

// --- Group 1: Functor Laws ---

// TestPropertyMapIdentity: Map(p, id) ≡ p
func TestPropertyMapIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randParser(rng)
		in := randInput(rng)
		left := run(pcomb.Map(p, func(s string) string { return s }), in)
		right := run(p, in)
		if left != right {
			t.Fatalf("map identity: %+v != %+v (in=%q)", left, right, in)
		}
	}
}

// TestPropertyMapComposition: Map(Map(p, f), g) ≡ Map(p, g∘f)
func TestPropertyMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(s string) int { return len(s) }
	g := func(n int) int { return n*3 + 1 }
	for range propertyN {
		p := randParser(rng)
		in := randInput(rng)
		left := run(pcomb.Map(pcomb.Map(p, f), g), in)
		right := run(pcomb.Map(p, func(s string) int { return g(f(s)) }), in)
		if left != right {
			t.Fatalf("map composition: %+v != %+v (in=%q)", left, right, in)
		}
	}
}

// --- Group 2: Monad Laws ---

// TestPropertyBindLeftIdentity: Bind(Return(a), f) ≡ f(a)
func TestPropertyBindLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(s string) pcomb.Parser[string] {
		return pcomb.Recognize(pcomb.Literal(s))
	}
	for range propertyN {
		a := []string{"", "a", "b,", "1"}[rng.IntN(4)]
		in := randInput(rng)
		left := run(pcomb.Bind(pcomb.Return(a), f), in)
		right := run(f(a), in)
		if left != right {
			t.Fatalf("left identity: %+v != %+v (a=%q, in=%q)", left, right, a, in)
		}
	}
}

// TestPropertyBindRightIdentity: Bind(p, Return) ≡ p
func TestPropertyBindRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randParser(rng)
		in := randInput(rng)
		left := run(pcomb.Bind(p, pcomb.Return[string]), in)
		right := run(p, in)
		if left != right {
			t.Fatalf("right identity: %+v != %+v (in=%q)", left, right, in)
		}
	}
}

// TestPropertyBindAssociativity: Bind(Bind(p, f), g) ≡ Bind(p, func(x) Bind(f(x), g))
func TestPropertyBindAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randParser(rng)
		q := randParser(rng)
		r := randParser(rng)
		f := func(x string) pcomb.Parser[string] {
			return pcomb.Map(q, func(y string) string { return x + y })
		}
		g := func(x string) pcomb.Parser[string] {
			return pcomb.Map(r, func(y string) string { return x + "|" + y })
		}
		in := randInput(rng)
		left := run(pcomb.Bind(pcomb.Bind(p, f), g), in)
		right := run(pcomb.Bind(p, func(x string) pcomb.Parser[string] {
			return pcomb.Bind(f(x), g)
		}), in)
		if left != right {
			t.Fatalf("associativity: %+v != %+v (in=%q)", left, right, in)
		}
	}
}

// --- Group 3: Parser Invariants ---

// TestPropertyNonExpansion: on success the remainder is a suffix of the input.
func TestPropertyNonExpansion(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range propertyN {
		p := pcomb.Then(randParser(rng), pcomb.Optional(randParser(rng)))
		in := randInput(rng)
		rest, _, ok := p(in)
		if ok && !strings.HasSuffix(in, rest) {
			t.Fatalf("remainder %q is not a suffix of %q", rest, in)
		}
		if !ok && rest != in {
			t.Fatalf("failure consumed input: %q from %q", rest, in)
		}
	}
}

// TestPropertyOptionalTotal: Optional always succeeds and consumes nothing on failure.
func TestPropertyOptionalTotal(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randParser(rng)
		in := randInput(rng)
		rest, o, ok := pcomb.Optional(p)(in)
		if !ok {
			t.Fatalf("Optional failed (in=%q)", in)
		}
		prest, pv, pok := p(in)
		if !pok && (rest != in || o.IsSome()) {
			t.Fatalf("Optional consumed on failure: rest=%q in=%q", rest, in)
		}
		if pok {
			v, _ := o.Get()
			if rest != prest || v != pv {
				t.Fatalf("Optional differs from success: (%q, %q) != (%q, %q)", rest, v, prest, pv)
			}
		}
	}
}

// TestPropertyRepeatedMonotone: Repeated counts consecutive successes and
// removes exactly their prefixes, in order.
func TestPropertyRepeatedMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randParser(rng)
		in := randInput(rng)
		rest, vs, ok := pcomb.Repeated(p)(in)
		if !ok {
			t.Fatalf("Repeated failed (in=%q)", in)
		}
		var want []string
		cur := in
		for {
			next, v, ok := p(cur)
			if !ok || next == cur {
				break
			}
			want = append(want, v)
			cur = next
		}
		if !slices.Equal(vs, want) || rest != cur {
			t.Fatalf("Repeated(%q) = (%q, %q), want (%q, %q)", in, rest, vs, cur, want)
		}
		if strings.Join(vs, "") != in[:len(in)-len(rest)] {
			t.Fatalf("values %q do not spell the consumed prefix of %q", vs, in)
		}
	}
}

// TestPropertyReduceGeneralizesRepeated: Reduce with append ≡ Repeated.
func TestPropertyReduceGeneralizesRepeated(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randParser(rng)
		in := randInput(rng)
		rr, rv, _ := pcomb.Repeated(p)(in)
		fr, fv, ok := pcomb.Reduce(p, []string(nil), func(acc []string, s string) []string {
			return append(acc, s)
		})(in)
		if !ok || rr != fr || !slices.Equal(rv, fv) {
			t.Fatalf("Reduce(%q) = (%q, %q), Repeated = (%q, %q)", in, fr, fv, rr, rv)
		}
	}
}

// TestPropertySeq2Atomic: Seq2 either succeeds or leaves the input untouched.
func TestPropertySeq2Atomic(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p1 := randParser(rng)
		p2 := randParser(rng)
		in := randInput(rng)
		rest, v, ok := pcomb.Seq2(p1, p2)(in)
		if !ok {
			if rest != in || v != (pcomb.Pair[string, string]{}) {
				t.Fatalf("Seq2 failure leaked: rest=%q v=%+v in=%q", rest, v, in)
			}
			continue
		}
		if v.Fst+v.Snd != in[:len(in)-len(rest)] {
			t.Fatalf("Seq2 values %+v do not spell the consumed prefix of %q", v, in)
		}
	}
}
