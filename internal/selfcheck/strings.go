package selfcheck

import (
	"github.com/forestrie/go-crzds/harness"
	"github.com/forestrie/go-crzds/strbuild"
	"github.com/forestrie/go-crzds/strview"
)

// StringBuilder checks the strbuild helpers layered over seq.
func StringBuilder(h *harness.Harness) {
	var sb strbuild.Builder
	h.AfterEach(sb.Free)

	expect := func(want string) {
		h.Expectf(sb.String() == want, "builder is %q, want %q", sb.String(), want)
	}

	h.Describe("Builder.Write", func() {
		h.Test("Pushing a byte", func() {
			_ = sb.WriteByte('a')
			expect("a")
		})
		h.Test("Pushing a string", func() {
			_, _ = sb.WriteString("abc")
			expect("abc")
		})
		h.Test("Pushing another builder", func() {
			var other strbuild.Builder
			_, _ = other.WriteString("def")
			_, _ = sb.WriteString("abc")
			sb.PushOther(&other)
			expect("abcdef")
		})
	})

	h.Describe("Builder.Splice", func() {
		h.Test("Inserting a string", func() {
			_, _ = sb.WriteString("ad")
			h.Expect(sb.InsertString(1, "bc") == nil)
			expect("abcd")
		})
		h.Test("Replacing a word", func() {
			_, _ = sb.WriteString("hello world")
			h.Expect(sb.SpliceString(6, 5, "there") == nil)
			expect("hello there")
		})
		h.Test("Removing", func() {
			_, _ = sb.WriteString("abcdef")
			h.Expect(sb.Remove(1, 4) == nil)
			expect("af")
		})
	})

	h.Describe("Builder.Terminate", func() {
		h.Test("Appending a NUL", func() {
			_, _ = sb.WriteString("abc")
			sb.Terminate()
			h.Expect(sb.Len() == 4)
			c, err := sb.Get(3)
			h.Expect(err == nil && c == 0)
		})
	})
}

// StringView checks the strview cursor operations, including the guarded
// edge cases.
func StringView(h *harness.Harness) {
	expect := func(v strview.View, want string) {
		h.Expectf(v.String() == want, "view is %q, want %q", v.String(), want)
	}

	h.Describe("View.Cut", func() {
		h.Test("Cutting from both ends", func() {
			v := strview.FromString("hello world")
			h.Expect(v.CutLeft(6) == nil)
			h.Expect(v.CutRight(2) == nil)
			expect(v, "wor")
		})
		h.Test("Cutting past the end is rejected", func() {
			v := strview.FromString("abc")
			h.Expect(v.CutLeft(4) != nil)
			expect(v, "abc")
		})
		h.Test("Cutting until a byte", func() {
			v := strview.FromString("key=value")
			v.CutLeftUntil('=')
			expect(v, "=value")
			v.CutRightUntil('=')
			expect(v, "=")
		})
	})

	h.Describe("View.Trim", func() {
		h.Test("Trimming both sides", func() {
			v := strview.FromString(" \t abc \n")
			v.Trim()
			expect(v, "abc")
		})
		h.Test("Trimming an all-whitespace string", func() {
			v := strview.FromString(" \t\r\n ")
			v.TrimRight()
			expect(v, "")
		})
		h.Test("Trimming an empty string", func() {
			var v strview.View
			v.Trim()
			expect(v, "")
		})
	})
}
