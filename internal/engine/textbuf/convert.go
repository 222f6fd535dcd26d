package textbuf

import (
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Runes returns a copy of the content.
func (b *Builder) Runes() []rune {
	r := make([]rune, b.size)
	copy(r, b.data[:b.size])
	return r
}

// RunesRange returns a copy of the units in [start, end). An end past Len
// is clamped.
func (b *Builder) RunesRange(start, end int) ([]rune, error) {
	end, err := b.validateRange("runes", start, end)
	if err != nil {
		return nil, err
	}
	r := make([]rune, end-start)
	copy(r, b.data[start:end])
	return r, nil
}

// CopyRunes copies the units in [srcBegin, srcEnd) into dst at dstBegin.
// Unlike the span operations, srcEnd is not clamped.
func (b *Builder) CopyRunes(dst []rune, srcBegin, srcEnd, dstBegin int) error {
	if srcBegin < 0 || srcEnd < 0 || srcEnd > b.size {
		return rangeError("copyRunes", srcBegin, srcEnd, b.size, ErrIndexOutOfRange)
	}
	if srcBegin > srcEnd {
		return rangeError("copyRunes", srcBegin, srcEnd, b.size, ErrRangeInvalid)
	}
	n := srcEnd - srcBegin
	if dstBegin < 0 || dstBegin+n > len(dst) {
		return rangeError("copyRunes", dstBegin, dstBegin+n, len(dst), ErrIndexOutOfRange)
	}
	copy(dst[dstBegin:], b.data[srcBegin:srcEnd])
	return nil
}

// Substring returns the content from start to the end.
func (b *Builder) Substring(start int) (string, error) {
	return b.SubstringRange(start, b.size)
}

// SubstringRange returns the units in [start, end). An end past Len is
// clamped.
func (b *Builder) SubstringRange(start, end int) (string, error) {
	end, err := b.validateRange("substring", start, end)
	if err != nil {
		return "", err
	}
	return string(b.data[start:end]), nil
}

// LeftString returns at most the first n units.
func (b *Builder) LeftString(n int) string {
	switch {
	case n <= 0:
		return ""
	case n >= b.size:
		return b.String()
	}
	return string(b.data[:n])
}

// RightString returns at most the last n units.
func (b *Builder) RightString(n int) string {
	switch {
	case n <= 0:
		return ""
	case n >= b.size:
		return b.String()
	}
	return string(b.data[b.size-n : b.size])
}

// MidString returns at most n units starting at index. A negative index is
// treated as 0.
func (b *Builder) MidString(index, n int) string {
	index = max(index, 0)
	if n <= 0 || index >= b.size {
		return ""
	}
	end := min(index+n, b.size)
	return string(b.data[index:end])
}

// ToStringsBuilder returns a new strings.Builder holding the content.
func (b *Builder) ToStringsBuilder() *strings.Builder {
	var sb strings.Builder
	sb.Grow(b.size)
	for _, r := range b.data[:b.size] {
		sb.WriteRune(r)
	}
	return &sb
}

// ToBytesBuffer returns a new bytes.Buffer holding the UTF-8 encoded
// content.
func (b *Builder) ToBytesBuffer() *bytes.Buffer {
	buf := bytes.NewBuffer(make([]byte, 0, b.size))
	for _, r := range b.data[:b.size] {
		buf.WriteRune(r)
	}
	return buf
}

// Equals reports whether other holds the same units. Capacity and
// configuration are not compared.
func (b *Builder) Equals(other *Builder) bool {
	if other == nil {
		return false
	}
	if b == other {
		return true
	}
	if b.size != other.size {
		return false
	}
	for i := 0; i < b.size; i++ {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// EqualFold reports whether other holds the same units, ignoring case one
// unit at a time.
func (b *Builder) EqualFold(other *Builder) bool {
	if other == nil {
		return false
	}
	if b.size != other.size {
		return false
	}
	for i := 0; i < b.size; i++ {
		c1, c2 := b.data[i], other.data[i]
		if c1 != c2 && unicode.ToUpper(c1) != unicode.ToUpper(c2) && unicode.ToLower(c1) != unicode.ToLower(c2) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy with the same content, capacity and
// configuration.
func (b *Builder) Clone() *Builder {
	c := &Builder{
		data:    make([]rune, len(b.data)),
		size:    b.size,
		newline: b.newline,
		null:    b.null,
	}
	copy(c.data, b.data[:b.size])
	return c
}

// WriteTo writes the UTF-8 encoded content to w.
// It implements io.WriterTo.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// ReadFrom appends UTF-8 text read from r until EOF and returns the number
// of bytes read. Invalid bytes become utf8.RuneError.
// It implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	var (
		buf   = make([]byte, 4096)
		carry int
		total int64
	)
	for {
		n, err := r.Read(buf[carry:])
		total += int64(n)
		data := buf[:carry+n]

		i := 0
		for i < len(data) {
			// Keep a partial rune for the next read unless input is done.
			if err == nil && !utf8.FullRune(data[i:]) {
				break
			}
			ch, size := utf8.DecodeRune(data[i:])
			b.AppendRune(ch)
			i += size
		}
		carry = copy(buf, data[i:])

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
