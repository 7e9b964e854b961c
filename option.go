// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pcomb

// Option represents a value that is either present (Some) or absent (None).
// It is the value produced by [Optional].
type Option[A any] struct {
	isSome bool
	value  A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{isSome: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.isSome
}

// GetOr returns the value if present, otherwise def.
func (o Option[A]) GetOr(def A) A {
	if o.isSome {
		return o.value
	}
	return def
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.isSome {
		return Some(f(o.value))
	}
	return None[B]()
}
