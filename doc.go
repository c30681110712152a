// Package digitseq provides signed integers whose digit expansion is either
// finite or right-infinite.
//
// A finite Sequence is an exact integer. An infinite Sequence knows only its
// low-order digits; the digits above them are an unknown tail. Every infinite
// value parsed or constructed gets a tail of its own, identified by a token,
// and arithmetic keeps count of which tails a result is made of. That is what
// lets unknown tails cancel:
//
//	x := digitseq.MustParse("5")
//	y := digitseq.MustParse("...123")
//	s := x.MustAdd(y) // ...128
//	s.MustSub(y)      // 5, exactly equal to x
//
// # Text Format
//
// The text form, accepted by Parse and produced by String, is
//
//	value := "-"? "..."? digit+ ("b" [0-9]+)?
//	digit := [0-9] | "(" [0-9]+ ")"
//
// A leading "..." marks an infinite value. The "b" suffix selects a base
// other than 10; digits of ten or more are written in decimal between
// parentheses. Leading zeros of finite values are dropped. Leading zeros of
// infinite values are known digits and are kept.
//
// # Ordering
//
// An infinite magnitude is larger than any finite one. Two infinite
// magnitudes are ordered by their tails when one is made of strictly more of
// every token than the other. Magnitudes made of the same tails differ by an
// exact offset that arithmetic carries along, so they are ordered exactly.
// Anything else is undecidable: Compare reports series.CantTell and Add of
// such values of opposite signs fails with IndecisiveComparisonError rather
// than guess.
//
// The base is limited to series.MaxBase. Zero is the same number in every
// base and combines with values of any base.
//
// # Binary Format
//
// MarshalBinary, Encoder and Decoder use the block framing of package
// control. Tokens and offsets survive a binary round trip, so a decoded
// infinite value is equal to the value that was encoded.
package digitseq
