// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

// Tuple types for fixed-arity sequencing.
// Fields are positional: the value of the first parser is Fst, and so on.

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Thd C
}

// Quad holds four values.
type Quad[A, B, C, D any] struct {
	Fst A
	Snd B
	Thd C
	Fth D
}
