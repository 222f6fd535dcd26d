package textbuf

import (
	"strconv"

	"github.com/dshills/textbuf/internal/engine/matcher"
)

// Insert Operations
//
// Index == Len is accepted and behaves like an append. Out of range indices
// fail before anything is written.

// Insert inserts s at index.
func (b *Builder) Insert(index int, s string) error {
	if err := b.validateInsertIndex("insert", index); err != nil {
		return err
	}
	b.insertRunes(index, []rune(s))
	return nil
}

// InsertRune inserts a single unit at index.
func (b *Builder) InsertRune(index int, r rune) error {
	if err := b.validateInsertIndex("insert", index); err != nil {
		return err
	}
	b.insertRunes(index, []rune{r})
	return nil
}

// InsertRunes inserts a copy of r at index.
func (b *Builder) InsertRunes(index int, r []rune) error {
	if err := b.validateInsertIndex("insert", index); err != nil {
		return err
	}
	b.insertRunes(index, r)
	return nil
}

// InsertRunesRange inserts r[offset:offset+length] at index.
func (b *Builder) InsertRunesRange(index int, r []rune, offset, length int) error {
	if err := b.validateInsertIndex("insert", index); err != nil {
		return err
	}
	if err := validateSubrange("insert", offset, length, len(r)); err != nil {
		return err
	}
	b.insertRunes(index, r[offset:offset+length])
	return nil
}

// InsertBool inserts "true" or "false" at index.
func (b *Builder) InsertBool(index int, v bool) error {
	return b.Insert(index, strconv.FormatBool(v))
}

// InsertInt inserts the decimal form of v at index.
func (b *Builder) InsertInt(index int, v int64) error {
	return b.Insert(index, strconv.FormatInt(v, 10))
}

// InsertFloat inserts the textual form of v at index.
func (b *Builder) InsertFloat(index int, v float64) error {
	return b.Insert(index, formatFloat(v, 64))
}

// InsertValue inserts the textual form of v at index. Absent values insert
// the null text.
func (b *Builder) InsertValue(index int, v any) error {
	return b.InsertText(index, formatValue(v))
}

// InsertText inserts t at index, or the null text when t is absent.
// The index is validated even when nothing ends up being inserted.
func (b *Builder) InsertText(index int, t Text) error {
	if err := b.validateInsertIndex("insert", index); err != nil {
		return err
	}
	s, ok := t.Get()
	if !ok {
		s = b.null.String()
	}
	b.insertRunes(index, []rune(s))
	return nil
}

// insertRunes opens a gap of len(r) units at index and fills it.
func (b *Builder) insertRunes(index int, r []rune) {
	n := len(r)
	if n == 0 {
		return
	}
	b.EnsureCapacity(b.size + n)
	copy(b.data[index+n:], b.data[index:b.size])
	copy(b.data[index:], r)
	b.size += n
}

// Delete Operations

// Delete removes the units in [start, end). An end past Len is clamped.
func (b *Builder) Delete(start, end int) error {
	end, err := b.validateRange("delete", start, end)
	if err != nil {
		return err
	}
	if n := end - start; n > 0 {
		b.deleteRange(start, end, n)
	}
	return nil
}

// DeleteCharAt removes the unit at index.
func (b *Builder) DeleteCharAt(index int) error {
	if err := b.validateIndex("deleteCharAt", index); err != nil {
		return err
	}
	b.deleteRange(index, index+1, 1)
	return nil
}

// DeleteAllRune removes every occurrence of r.
func (b *Builder) DeleteAllRune(r rune) *Builder {
	for i := 0; i < b.size; i++ {
		if b.data[i] != r {
			continue
		}
		start := i
		for i++; i < b.size && b.data[i] == r; i++ {
		}
		n := i - start
		b.deleteRange(start, i, n)
		i -= n
	}
	return b
}

// DeleteFirstRune removes the first occurrence of r.
func (b *Builder) DeleteFirstRune(r rune) *Builder {
	if i := b.IndexRune(r); i >= 0 {
		b.deleteRange(i, i+1, 1)
	}
	return b
}

// DeleteAll removes every occurrence of s.
func (b *Builder) DeleteAll(s string) *Builder {
	n := len([]rune(s))
	if n == 0 {
		return b
	}
	for i := b.Index(s); i >= 0; i = b.IndexFrom(s, i) {
		b.deleteRange(i, i+n, n)
	}
	return b
}

// DeleteFirst removes the first occurrence of s.
func (b *Builder) DeleteFirst(s string) *Builder {
	n := len([]rune(s))
	if n == 0 {
		return b
	}
	if i := b.Index(s); i >= 0 {
		b.deleteRange(i, i+n, n)
	}
	return b
}

// DeleteAllMatch removes every span matched by m. A nil matcher returns
// ErrNilMatcher.
func (b *Builder) DeleteAllMatch(m matcher.Matcher) error {
	if m == nil {
		return ErrNilMatcher
	}
	b.replaceMatch(m, nil, 0, b.size, -1)
	return nil
}

// DeleteFirstMatch removes the first span matched by m.
func (b *Builder) DeleteFirstMatch(m matcher.Matcher) error {
	if m == nil {
		return ErrNilMatcher
	}
	b.replaceMatch(m, nil, 0, b.size, 1)
	return nil
}

// deleteRange closes the gap [start, end) of n units.
func (b *Builder) deleteRange(start, end, n int) {
	copy(b.data[start:], b.data[end:b.size])
	b.size -= n
}

// Replace Operations

// Replace replaces the units in [start, end) with s. An end past Len is
// clamped. An empty s deletes the span.
func (b *Builder) Replace(start, end int, s string) error {
	end, err := b.validateRange("replace", start, end)
	if err != nil {
		return err
	}
	b.replaceRange(start, end, end-start, []rune(s))
	return nil
}

// ReplaceAllRune replaces every old with repl.
func (b *Builder) ReplaceAllRune(old, repl rune) *Builder {
	if old == repl {
		return b
	}
	for i := 0; i < b.size; i++ {
		if b.data[i] == old {
			b.data[i] = repl
		}
	}
	return b
}

// ReplaceFirstRune replaces the first old with repl.
func (b *Builder) ReplaceFirstRune(old, repl rune) *Builder {
	if old == repl {
		return b
	}
	if i := b.IndexRune(old); i >= 0 {
		b.data[i] = repl
	}
	return b
}

// ReplaceAll replaces every occurrence of search with repl. Occurrences
// are found left to right and replaced text is never rescanned.
func (b *Builder) ReplaceAll(search, repl string) *Builder {
	needle := []rune(search)
	if len(needle) == 0 {
		return b
	}
	insert := []rune(repl)
	for i := b.Index(search); i >= 0; i = b.IndexFrom(search, i+len(insert)) {
		b.replaceRange(i, i+len(needle), len(needle), insert)
	}
	return b
}

// ReplaceFirst replaces the first occurrence of search with repl.
func (b *Builder) ReplaceFirst(search, repl string) *Builder {
	needle := []rune(search)
	if len(needle) == 0 {
		return b
	}
	if i := b.Index(search); i >= 0 {
		b.replaceRange(i, i+len(needle), len(needle), []rune(repl))
	}
	return b
}

// ReplaceAllMatch replaces every span matched by m with repl.
func (b *Builder) ReplaceAllMatch(m matcher.Matcher, repl string) error {
	return b.ReplaceMatch(m, repl, 0, b.size, -1)
}

// ReplaceFirstMatch replaces the first span matched by m with repl.
func (b *Builder) ReplaceFirstMatch(m matcher.Matcher, repl string) error {
	return b.ReplaceMatch(m, repl, 0, b.size, 1)
}

// ReplaceMatch replaces up to count spans matched by m inside [start, end)
// with repl. A negative count replaces every match. The matcher only sees
// the [start, end) window. A nil matcher returns ErrNilMatcher.
func (b *Builder) ReplaceMatch(m matcher.Matcher, repl string, start, end, count int) error {
	if m == nil {
		return ErrNilMatcher
	}
	end, err := b.validateRange("replace", start, end)
	if err != nil {
		return err
	}
	b.replaceMatch(m, []rune(repl), start, end, count)
	return nil
}

// replaceMatch expects a non-nil matcher.
func (b *Builder) replaceMatch(m matcher.Matcher, insert []rune, from, to, count int) {
	if b.size == 0 {
		return
	}
	for i := from; i < to && count != 0; i++ {
		n := m.Match(b.data, i, from, to)
		if n <= 0 {
			continue
		}
		b.replaceRange(i, i+n, n, insert)
		to += len(insert) - n
		i += len(insert) - 1
		if count > 0 {
			count--
		}
	}
}

// replaceRange swaps the removeLen units of [start, end) for insert,
// shifting the tail at most once.
func (b *Builder) replaceRange(start, end, removeLen int, insert []rune) {
	insertLen := len(insert)
	newSize := b.size - removeLen + insertLen
	switch {
	case insertLen > removeLen:
		b.EnsureCapacity(newSize)
		copy(b.data[start+insertLen:], b.data[end:b.size])
		copy(b.data[start:], insert)
	case insertLen < removeLen:
		copy(b.data[start:], insert)
		copy(b.data[start+insertLen:], b.data[end:b.size])
	default:
		copy(b.data[start:], insert)
	}
	b.size = newSize
}

// Whole-buffer Operations

// Reverse reverses the units in place.
func (b *Builder) Reverse() *Builder {
	for i, j := 0, b.size-1; i < j; i, j = i+1, j-1 {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	}
	return b
}

// Trim removes leading and trailing units less than or equal to the space
// character.
func (b *Builder) Trim() *Builder {
	if b.size == 0 {
		return b
	}
	pos, end := 0, b.size
	for pos < end && b.data[pos] <= ' ' {
		pos++
	}
	for pos < end && b.data[end-1] <= ' ' {
		end--
	}
	if end < b.size {
		_ = b.Delete(end, b.size)
	}
	if pos > 0 {
		_ = b.Delete(0, pos)
	}
	return b
}
