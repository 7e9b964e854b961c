// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pcomb provides generic parser combinators over string input.
//
// The core type [Parser] is a pure function from an input view to the
// unconsumed remainder and a value, or failure. Parsers are built once from
// primitives and combinators, then applied any number of times:
//
//	digits := pcomb.NotEmpty(pcomb.Characters(unicode.IsDigit))
//	list := pcomb.SepBy(digits, pcomb.Literal(","))
//
//	rest, items, ok := list.Parse("1,2,3")
//	// rest == "", items == []string{"1", "2", "3"}, ok == true
//
// # Design Philosophy
//
// pcomb provides:
//   - A single function type as the only abstraction; composition is closure nesting
//   - Comma-ok results with no diagnostic payload; failure is a boolean
//   - Atomic failure: a failed parser returns its input unchanged, so ordered
//     choice never needs a backtracking stack
//   - Zero-copy values: text values are substrings of the input until [Owned]
//     copies them
//
// # Input Views
//
// The input view is a Go string. Strings are immutable and slicing is O(1),
// so a remainder is always a suffix of the view the parser was given and
// nothing is copied. [Consumed] reports the byte distance between two views,
// which is how callers that need positions compute them.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Return]: Succeed with a value, consuming nothing
//   - [Bind]: Sequence two parsers, choosing the second from the first value
//
// Derived operations:
//
//   - [Map]: Transform the value, equivalent to Bind(p, func(a) Return(f(a)))
//   - [Then]: Sequence, pairing both values in a [Pair]
//   - [FollowedBy]: Sequence, keeping the first value
//   - [Preceded]: Sequence, keeping the second value
//   - [Between]: Delimited value
//   - [Lazy]: Deferred construction for recursive grammars
//
// Application:
//
//   - [Parser.Parse]: Apply a parser to an input view
//
// # Repetition
//
//   - [Optional]: Zero or one, producing an [Option]
//   - [Repeated]: Zero or more, greedy
//   - [SepBy]: One or more, separator-delimited, no trailing separator
//   - [Reduce]: Zero or more, folded into an accumulator
//
// Repetition never loops on a parser that succeeds without consuming input:
// such a success ends the loop like a failure would.
//
// # Primitives
//
//   - [Literal]: Exact prefix match
//   - [NewLine]: Literal("\n")
//   - [ScanTo], [ScanToFunc]: Skip to a rune, or the first rune satisfying a predicate
//   - [Characters]: Longest run of runes satisfying a predicate
//   - [Satisfy]: One rune satisfying a predicate
//   - [Empty]: Always succeed with [Unit]
//   - [Fail]: Always fail
//   - [End]: Succeed only at the end of input
//
// # Sequencing and Choice
//
//   - [Seq2], [Seq3], [Seq4]: Heterogeneous sequences producing [Pair], [Triple], [Quad]
//   - [Seq]: Homogeneous sequence of any length
//   - [OneOf]: Ordered choice; the first success wins, not the longest
//
// # Text Refinements
//
//   - [NotEmpty]: Reject empty text values
//   - [Owned]: Copy the text value out of the input
//   - [Recognize]: The consumed slice as the value
//   - [Complete]: Require the whole input to be consumed
//   - [Not]: Negative lookahead, consuming nothing
//
// # Concurrency
//
// A constructed parser holds no mutable state. The same parser may be
// applied concurrently from any number of goroutines; accumulators of
// repetition combinators are local to each call.
package pcomb
