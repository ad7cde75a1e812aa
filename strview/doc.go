// Package strview provides View, a borrowed window onto a string that is
// narrowed in place by cut, chop and trim operations.
//
// A View never copies or owns the bytes it looks at. Narrowing past either
// end is an error for the counted operations, and yields an empty view for
// the scanning ones (TrimRight on an all-space string, CutRightUntil when the
// byte is absent), rather than reading outside the window.
package strview
