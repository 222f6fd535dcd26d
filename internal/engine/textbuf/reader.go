package textbuf

import (
	"errors"
	"io"
	"unicode/utf8"
)

var errUnreadAtStart = errors.New("textbuf: UnreadRune at beginning of buffer")

// Reader reads units from a Builder.
//
// A Reader holds a reference to its Builder, not a copy: units appended
// after the Reader was created are visible to later reads. The Builder must
// not be mutated from another goroutine while a Reader is in use.
type Reader struct {
	b    *Builder
	pos  int
	mark int

	// pending holds the undelivered UTF-8 bytes of a unit split by Read.
	pending []byte
	scratch [utf8.UTFMax]byte
}

// AsReader returns a Reader positioned at the start of b.
func (b *Builder) AsReader() *Reader {
	return &Reader{b: b}
}

// ReadRune returns the next unit and its UTF-8 length.
// It implements io.RuneReader.
func (r *Reader) ReadRune() (rune, int, error) {
	r.pending = nil
	if r.pos >= r.b.size {
		return 0, 0, io.EOF
	}
	ch := r.b.data[r.pos]
	r.pos++
	return ch, runeLen(ch), nil
}

// UnreadRune steps back one unit.
// It implements io.RuneScanner.
func (r *Reader) UnreadRune() error {
	if r.pos <= 0 {
		return errUnreadAtStart
	}
	r.pending = nil
	r.pos--
	return nil
}

// ReadRunes copies up to len(dst) units into dst. It returns io.EOF only
// when no units remain.
func (r *Reader) ReadRunes(dst []rune) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	r.pending = nil
	if r.pos >= r.b.size {
		return 0, io.EOF
	}
	n := copy(dst, r.b.data[r.pos:r.b.size])
	r.pos += n
	return n, nil
}

// Read fills p with the UTF-8 encoding of the following units.
// It implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	for n < len(p) && r.pos < r.b.size {
		ch := r.b.data[r.pos]
		r.pos++
		size := utf8.EncodeRune(r.scratch[:], ch)
		m := copy(p[n:], r.scratch[:size])
		n += m
		if m < size {
			r.pending = r.scratch[m:size]
		}
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Skip advances past up to n units and returns how many were skipped.
func (r *Reader) Skip(n int) int {
	r.pending = nil
	if n <= 0 {
		return 0
	}
	n = min(n, r.b.size-r.pos)
	n = max(n, 0)
	r.pos += n
	return n
}

// Len returns the number of unread units.
func (r *Reader) Len() int {
	return max(r.b.size-r.pos, 0)
}

// Ready reports whether a read would return a unit without hitting the end.
func (r *Reader) Ready() bool {
	return r.pos < r.b.size
}

// Mark records the current position for a later Reset.
func (r *Reader) Mark() {
	r.mark = r.pos
}

// Reset returns to the marked position, or the start if Mark was never
// called.
func (r *Reader) Reset() {
	r.pending = nil
	r.pos = r.mark
}

func runeLen(ch rune) int {
	if n := utf8.RuneLen(ch); n > 0 {
		return n
	}
	return len(string(utf8.RuneError))
}
