// Package strbuild provides a byte string builder on top of seq.Sequence.
//
// A Builder is a Sequence[byte] with string flavoured helpers. Its growth,
// splice and error behaviour are exactly those of the seq package, and its
// errors are seq's sentinels.
package strbuild
