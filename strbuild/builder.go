package strbuild

import (
	"bytes"

	"github.com/forestrie/go-crzds/seq"
)

// Builder accumulates bytes. The zero value is an empty builder.
type Builder struct {
	buf seq.Sequence[byte]
}

func New(opts ...seq.Option) *Builder {
	return &Builder{buf: *seq.New[byte](opts...)}
}

func (b *Builder) Len() int { return b.buf.Len() }
func (b *Builder) Cap() int { return b.buf.Cap() }

// Reserve ensures room for n more bytes.
func (b *Builder) Reserve(n int) { b.buf.Reserve(n) }

// WriteByte appends c. It always returns nil.
func (b *Builder) WriteByte(c byte) error {
	b.buf.Push(c)
	return nil
}

// Write appends p. It always returns len(p), nil.
func (b *Builder) Write(p []byte) (int, error) {
	b.buf.PushMany(p...)
	return len(p), nil
}

// WriteString appends s. It always returns len(s), nil.
func (b *Builder) WriteString(s string) (int, error) {
	b.buf.PushMany([]byte(s)...)
	return len(s), nil
}

// PushOther appends the contents of other.
func (b *Builder) PushOther(other *Builder) {
	if other == nil {
		return
	}
	b.buf.PushOther(&other.buf)
}

func (b *Builder) Get(index int) (byte, error) { return b.buf.Get(index) }

// Splice removes removeCount bytes at index and inserts p in their place.
func (b *Builder) Splice(index, removeCount int, p []byte) error {
	return b.buf.Splice(index, removeCount, p...)
}

func (b *Builder) SpliceString(index, removeCount int, s string) error {
	return b.buf.Splice(index, removeCount, []byte(s)...)
}

func (b *Builder) Insert(index int, p []byte) error {
	return b.buf.Insert(index, p...)
}

func (b *Builder) InsertString(index int, s string) error {
	return b.buf.Insert(index, []byte(s)...)
}

func (b *Builder) Remove(index, count int) error {
	return b.buf.Remove(index, count)
}

// Terminate appends a NUL byte, for handing the contents to code expecting a
// C string.
func (b *Builder) Terminate() { b.buf.Push(0) }

// Bytes returns the contents without copying. The slice is invalidated by the
// next write.
func (b *Builder) Bytes() []byte { return b.buf.Slice() }

func (b *Builder) String() string { return string(b.buf.Slice()) }

// Equal reports whether b and other hold the same bytes.
func (b *Builder) Equal(other *Builder) bool {
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// Free releases the buffer and resets the builder to empty.
func (b *Builder) Free() { b.buf.Free() }
