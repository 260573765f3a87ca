package bounded

import (
	"unicode/utf8"

	cerrors "github.com/cockroachdb/errors"

	"github.com/hearthware/heapless"
)

// String is a UTF-8 string buffer with a byte capacity fixed at construction.
// The stored bytes form a valid UTF-8 sequence at all times: appends are
// all-or-nothing, so no partial fragment and no split code point can ever be
// observed through View.
//
// Go strings carry no UTF-8 guarantee at the type level, so Append verifies
// its input and rejects malformed fragments with heapless.ErrInvalidUTF8
// rather than trusting the caller.
type String struct {
	buf    []byte
	length int
}

var _ heapless.Validatable = &String{}

// NewString creates an empty String that can hold up to capacity bytes.
func NewString(capacity int) *String {
	return &String{
		buf: make([]byte, capacity),
	}
}

// Append appends the whole fragment, or nothing at all. It returns an error
// matching heapless.ErrWouldOverflow when the fragment does not fit in the
// remaining capacity and an error matching heapless.ErrInvalidUTF8 when the
// fragment is not valid UTF-8. On any error the stored bytes are untouched.
// Appending an empty fragment succeeds and is a no-op.
func (s *String) Append(fragment string) error {
	if len(fragment) == 0 {
		return nil
	}
	if !utf8.ValidString(fragment) {
		return cerrors.Wrapf(heapless.ErrInvalidUTF8, "fragment %q", fragment)
	}
	if s.length+len(fragment) > len(s.buf) {
		return cerrors.Wrapf(heapless.ErrWouldOverflow, "fragment is %d bytes, but only %d of %d bytes remain", len(fragment), len(s.buf)-s.length, len(s.buf))
	}

	copy(s.buf[s.length:], fragment)
	s.length += len(fragment)
	return nil
}

// AppendRune appends the UTF-8 encoding of r under the same all-or-nothing
// contract as Append. utf8.RuneError is accepted and encoded as the
// replacement character; values outside the valid rune range are rejected
// with heapless.ErrInvalidUTF8.
func (s *String) AppendRune(r rune) error {
	encodedLen := utf8.RuneLen(r)
	if encodedLen < 0 {
		return cerrors.Wrapf(heapless.ErrInvalidUTF8, "rune %#U", r)
	}
	if s.length+encodedLen > len(s.buf) {
		return cerrors.Wrapf(heapless.ErrWouldOverflow, "rune %#U needs %d bytes, but only %d of %d bytes remain", r, encodedLen, len(s.buf)-s.length, len(s.buf))
	}

	s.length += utf8.EncodeRune(s.buf[s.length:], r)
	return nil
}

// View returns the current contents. The result is always valid UTF-8.
func (s *String) View() string {
	return string(s.buf[:s.length])
}

// Len returns the number of bytes currently stored.
func (s *String) Len() int {
	return s.length
}

// Remaining returns the number of bytes that can still be appended.
func (s *String) Remaining() int {
	return len(s.buf) - s.length
}

// Cap returns the fixed byte capacity the string was created with.
func (s *String) Cap() int {
	return len(s.buf)
}

// Clear removes all stored bytes.
func (s *String) Clear() {
	s.length = 0
}

// Validate performs internal consistency checks. When the implementation is
// functioning correctly it should not be possible for this method to return
// an error.
func (s *String) Validate() error {
	if s.length < 0 {
		return cerrors.Newf("byte length %d is negative", s.length)
	}
	if s.length > len(s.buf) {
		return cerrors.Newf("byte length %d exceeds the capacity of %d", s.length, len(s.buf))
	}
	if !utf8.Valid(s.buf[:s.length]) {
		return cerrors.New("stored bytes are not valid utf-8")
	}
	return nil
}
