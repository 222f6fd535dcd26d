package textbuf

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// Writer appends UTF-8 text to a Builder.
//
// A multi-byte sequence split across two writes is held back until the rest
// of it arrives. Flush and Close append any held bytes as utf8.RuneError.
type Writer struct {
	b       *Builder
	pending [utf8.UTFMax]byte
	npend   int
}

// AsWriter returns a Writer that appends to b.
func (b *Builder) AsWriter() *Writer {
	return &Writer{b: b}
}

// Write appends the UTF-8 text in p. Invalid bytes become utf8.RuneError.
// It implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	data := p
	if w.npend > 0 {
		data = make([]byte, 0, w.npend+len(p))
		data = append(data, w.pending[:w.npend]...)
		data = append(data, p...)
		w.npend = 0
	}

	i := 0
	for i < len(data) {
		if !utf8.FullRune(data[i:]) {
			break
		}
		ch, size := utf8.DecodeRune(data[i:])
		w.b.AppendRune(ch)
		i += size
	}
	w.npend = copy(w.pending[:], data[i:])
	return len(p), nil
}

// WriteString appends s.
// It implements io.StringWriter.
func (w *Writer) WriteString(s string) (int, error) {
	if w.npend > 0 {
		return w.Write([]byte(s))
	}
	w.b.Append(s)
	return len(s), nil
}

// WriteByte appends c as the next byte of UTF-8 input.
// It implements io.ByteWriter.
func (w *Writer) WriteByte(c byte) error {
	if w.npend == 0 && c < utf8.RuneSelf {
		w.b.AppendRune(rune(c))
		return nil
	}
	_, err := w.Write([]byte{c})
	return err
}

// WriteRune appends r and returns its UTF-8 length. Held bytes are flushed
// first.
func (w *Writer) WriteRune(r rune) (int, error) {
	w.flushPending()
	w.b.AppendRune(r)
	return runeLen(r), nil
}

// ReadFrom appends UTF-8 text read from r until EOF and returns the number
// of bytes read from r.
// It implements io.ReaderFrom.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	if w.npend == 0 {
		return w.b.ReadFrom(r)
	}
	held := int64(w.npend)
	src := io.MultiReader(bytes.NewReader(w.pending[:w.npend]), r)
	w.npend = 0
	n, err := w.b.ReadFrom(src)
	return max(n-held, 0), err
}

// Flush appends any held bytes of an incomplete sequence as utf8.RuneError.
func (w *Writer) Flush() error {
	w.flushPending()
	return nil
}

// Close flushes held bytes. The Writer stays usable.
func (w *Writer) Close() error {
	return w.Flush()
}

func (w *Writer) flushPending() {
	for i := 0; i < w.npend; i++ {
		w.b.AppendRune(utf8.RuneError)
	}
	w.npend = 0
}

// Builder returns the Builder being written to.
func (w *Writer) Builder() *Builder {
	return w.b
}
