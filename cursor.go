package wad

import "encoding/binary"

// Cursor is a read-only, forward-seekable view over an in-memory buffer.
// All decoding in this package goes through a Cursor; short reads signal
// truncation by returning fewer bytes than requested, never an error.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data. The cursor
// retains data; callers must not modify it while the cursor is in use.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Seek moves the read position to pos, clamping to the buffer bounds.
// An out-of-range seek is not an error; subsequent reads come up short.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.data) {
		pos = len(c.data)
	}
	c.pos = pos
}

// Read returns up to n bytes from the current position and advances by the
// number of bytes actually returned. The result aliases the underlying
// buffer and must not be modified.
func (c *Cursor) Read(n int) []byte {
	if n < 0 {
		n = 0
	}
	if rem := c.Remaining(); n > rem {
		n = rem
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

// U16 reads a little-endian uint16. ok is false on a short read.
func (c *Cursor) U16() (v uint16, ok bool) {
	b := c.Read(2)
	if len(b) < 2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b), true
}

// I16 reads a little-endian int16. ok is false on a short read.
func (c *Cursor) I16() (v int16, ok bool) {
	u, ok := c.U16()
	return int16(u), ok
}

// U32 reads a little-endian uint32. ok is false on a short read.
func (c *Cursor) U32() (v uint32, ok bool) {
	b := c.Read(4)
	if len(b) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}
