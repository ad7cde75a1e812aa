package strview

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOutOfRange = errors.New("strview: count out of range")

// View is a window onto a string. The zero value is the empty view.
type View struct {
	s string
}

func FromString(s string) View { return View{s: s} }

// FromBytes makes a view of a copy of b, so later writes to b are not seen.
func FromBytes(b []byte) View { return View{s: string(b)} }

func (v View) Len() int          { return len(v.s) }
func (v View) String() string    { return v.s }
func (v View) Equal(o View) bool { return v.s == o.s }

// asciiSpace matches the C isspace set in the "C" locale.
var asciiSpace = [256]bool{' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true}

func checkCount(count, length int) error {
	if count < 0 || count > length {
		return fmt.Errorf("%w: count %d, length %d", ErrOutOfRange, count, length)
	}
	return nil
}

// CutLeft drops count bytes from the front.
func (v *View) CutLeft(count int) error {
	if err := checkCount(count, len(v.s)); err != nil {
		return err
	}
	v.s = v.s[count:]
	return nil
}

// ChopLeft drops one byte from the front.
func (v *View) ChopLeft() error { return v.CutLeft(1) }

// CutRight drops count bytes from the back.
func (v *View) CutRight(count int) error {
	if err := checkCount(count, len(v.s)); err != nil {
		return err
	}
	v.s = v.s[:len(v.s)-count]
	return nil
}

// ChopRight drops one byte from the back.
func (v *View) ChopRight() error { return v.CutRight(1) }

func (v *View) TrimLeft() {
	i := 0
	for i < len(v.s) && asciiSpace[v.s[i]] {
		i++
	}
	v.s = v.s[i:]
}

// TrimRight drops trailing whitespace. An all-whitespace view becomes empty.
func (v *View) TrimRight() {
	i := len(v.s)
	for i > 0 && asciiSpace[v.s[i-1]] {
		i--
	}
	v.s = v.s[:i]
}

func (v *View) Trim() {
	v.TrimLeft()
	v.TrimRight()
}

// CutLeftUntil drops bytes from the front up to, not including, the first c.
// If c does not occur the view becomes empty.
func (v *View) CutLeftUntil(c byte) {
	i := strings.IndexByte(v.s, c)
	if i < 0 {
		i = len(v.s)
	}
	v.s = v.s[i:]
}

// CutRightUntil drops bytes from the back down to, not including, the last c.
// If c does not occur the view becomes empty.
func (v *View) CutRightUntil(c byte) {
	i := strings.LastIndexByte(v.s, c)
	v.s = v.s[:i+1]
}
