// Package wad decodes Doom's data archives, also known as WAD files, into
// the typed records a map viewer needs: the lump directory, map geometry
// (VERTEXES/LINEDEFS) and placed things. The file format is documented in
// The Unofficial DOOM Specs: http://www.gamers.org/dhs/helpdocs/dmsp1666.html
//
// The package is purely computational. It never touches the filesystem or
// the network; callers load the archive into memory and hand the buffer to
// New. Apart from an unrecognized header magic, malformed input is never an
// error: truncated fields, missing lumps and dangling record references all
// degrade to shorter results.
package wad

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidFormat is returned by New when the buffer does not start with a
// recognized archive magic. It is the only hard error in the decode path.
var ErrInvalidFormat = errors.New("wad: invalid archive format")

// Kind distinguishes the two archive magics.
type Kind int

const (
	// KindInternal is a complete, standalone archive ("IWAD").
	KindInternal Kind = iota
	// KindPatch is a partial archive overriding another ("PWAD").
	KindPatch
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "IWAD"
	case KindPatch:
		return "PWAD"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Format tags the archive dialect. It is recorded for callers but the
// decode paths do not branch on it.
type Format int

const (
	FormatDefault Format = iota
	FormatHexen
	FormatStrife
)

func (f Format) String() string {
	switch f {
	case FormatDefault:
		return "default"
	case FormatHexen:
		return "hexen"
	case FormatStrife:
		return "strife"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

const (
	magicInternal = "IWAD"
	magicPatch    = "PWAD"
)

// Lump describes a named contiguous byte range within the archive.
// The range is not validated against the archive length; out-of-range
// reads simply truncate.
type Lump struct {
	Name   string
	Offset uint32
	Size   uint32
}

// String8 is the WAD eight-character string type, NUL-padded for short
// strings.
type String8 [8]byte

// String converts String8 to string, stripping trailing NULs.
func (s String8) String() string {
	i := bytes.IndexByte(s[:], 0)
	if i == -1 {
		i = len(s)
	}
	return string(s[0:i])
}

// Archive represents a WAD archive held entirely in memory. It is the sole
// owner of the buffer; lumps and records decoded from it are value copies.
// Decoding is safe to call concurrently because every operation builds its
// own cursor and the buffer is never mutated.
type Archive struct {
	data   []byte
	kind   Kind
	format Format
}

// Option configures an Archive at construction time.
type Option func(*Archive)

// WithFormat tags the archive with a dialect other than FormatDefault.
func WithFormat(f Format) Option {
	return func(a *Archive) { a.format = f }
}

// New wraps data in an Archive after identifying its kind from the 4-byte
// header magic. The archive retains data; callers must not modify it while
// the archive is in use.
func New(data []byte, opts ...Option) (*Archive, error) {
	kind, err := identify(data)
	if err != nil {
		return nil, err
	}
	a := &Archive{data: data, kind: kind}
	for _, opt := range opts {
		opt(a)
	}
	logger.Debug("opened archive", "kind", a.kind, "format", a.format, "bytes", len(data))
	return a, nil
}

// identify reads the archive magic from the first 4 bytes of data.
func identify(data []byte) (Kind, error) {
	magic := NewCursor(data).Read(4)
	switch string(magic) {
	case magicInternal:
		return KindInternal, nil
	case magicPatch:
		return KindPatch, nil
	default:
		return 0, fmt.Errorf("%w: bad magic %q", ErrInvalidFormat, magic)
	}
}

// Kind returns the archive kind identified from the header magic.
func (a *Archive) Kind() Kind {
	return a.kind
}

// Format returns the dialect tag the archive was constructed with.
func (a *Archive) Format() Format {
	return a.format
}

// Len returns the size of the underlying buffer in bytes.
func (a *Archive) Len() int {
	return len(a.data)
}

// Lumps returns an iterator over the archive's lump directory in file
// order. The directory is re-decoded on every call, so the sequence is
// restartable. If the header or any directory entry is truncated the
// sequence ends early; that is the package-wide truncation policy, not an
// error.
func (a *Archive) Lumps() iter.Seq[Lump] {
	return func(yield func(Lump) bool) {
		c := NewCursor(a.data)
		c.Seek(4) // past magic
		count, ok := c.U32()
		if !ok {
			return
		}
		dirOffset, ok := c.U32()
		if !ok {
			return
		}
		if int32(count) < 0 {
			return
		}
		c.Seek(int(dirOffset))
		for i := uint32(0); i < count; i++ {
			offset, ok := c.U32()
			if !ok {
				return
			}
			size, ok := c.U32()
			if !ok {
				return
			}
			raw := c.Read(8)
			if len(raw) < 8 {
				return
			}
			var name String8
			copy(name[:], raw)
			if !yield(Lump{Name: name.String(), Offset: offset, Size: size}) {
				return
			}
		}
	}
}

// NumLumps returns the number of well-formed directory entries.
func (a *Archive) NumLumps() int {
	n := 0
	for range a.Lumps() {
		n++
	}
	return n
}
