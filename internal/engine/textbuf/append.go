package textbuf

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Append adds s to the end of the builder.
func (b *Builder) Append(s string) *Builder {
	if s == "" {
		return b
	}
	b.EnsureCapacity(b.size + utf8.RuneCountInString(s))
	for _, r := range s {
		b.data[b.size] = r
		b.size++
	}
	return b
}

// AppendRune adds a single unit.
func (b *Builder) AppendRune(r rune) *Builder {
	b.EnsureCapacity(b.size + 1)
	b.data[b.size] = r
	b.size++
	return b
}

// AppendRunes adds a copy of r.
func (b *Builder) AppendRunes(r []rune) *Builder {
	if len(r) == 0 {
		return b
	}
	b.EnsureCapacity(b.size + len(r))
	b.size += copy(b.data[b.size:], r)
	return b
}

// AppendRunesRange adds r[offset:offset+length].
func (b *Builder) AppendRunesRange(r []rune, offset, length int) error {
	if err := validateSubrange("appendRange", offset, length, len(r)); err != nil {
		return err
	}
	b.AppendRunes(r[offset : offset+length])
	return nil
}

// AppendStringRange adds length units of s starting at unit offset.
func (b *Builder) AppendStringRange(s string, offset, length int) error {
	return b.AppendRunesRange([]rune(s), offset, length)
}

// AppendBuilder adds the content of other. A nil other appends the null text.
func (b *Builder) AppendBuilder(other *Builder) *Builder {
	if other == nil {
		return b.AppendNull()
	}
	// other may be b itself, so read other.data only after growing.
	n := other.size
	b.EnsureCapacity(b.size + n)
	b.size += copy(b.data[b.size:], other.data[:n])
	return b
}

// AppendBuilderRange adds length units of other starting at offset.
func (b *Builder) AppendBuilderRange(other *Builder, offset, length int) error {
	if other == nil {
		b.AppendNull()
		return nil
	}
	if err := validateSubrange("appendRange", offset, length, other.size); err != nil {
		return err
	}
	b.EnsureCapacity(b.size + length)
	b.size += copy(b.data[b.size:], other.data[offset:offset+length])
	return nil
}

// AppendBool adds "true" or "false".
func (b *Builder) AppendBool(v bool) *Builder {
	return b.Append(strconv.FormatBool(v))
}

// AppendInt adds the decimal form of v.
func (b *Builder) AppendInt(v int64) *Builder {
	return b.Append(strconv.FormatInt(v, 10))
}

// AppendUint adds the decimal form of v.
func (b *Builder) AppendUint(v uint64) *Builder {
	return b.Append(strconv.FormatUint(v, 10))
}

// AppendFloat adds the textual form of v. Integral values keep a ".0"
// suffix, so 10 is written as "10.0".
func (b *Builder) AppendFloat(v float64) *Builder {
	return b.Append(formatFloat(v, 64))
}

// AppendFloat32 adds the shortest textual form of v as a float32.
func (b *Builder) AppendFloat32(v float32) *Builder {
	return b.Append(formatFloat(float64(v), 32))
}

// AppendValue adds the textual form of v. nil and nil pointers append the
// null text. Runes are int32 values here; use AppendRune for characters.
func (b *Builder) AppendValue(v any) *Builder {
	if other, ok := v.(*Builder); ok {
		return b.AppendBuilder(other)
	}
	return b.AppendText(formatValue(v))
}

// AppendText adds t, or the null text when t is absent.
func (b *Builder) AppendText(t Text) *Builder {
	if s, ok := t.Get(); ok {
		return b.Append(s)
	}
	return b.AppendNull()
}

// AppendNull adds the null text, if one is configured.
func (b *Builder) AppendNull() *Builder {
	if s, ok := b.null.Get(); ok {
		return b.Append(s)
	}
	return b
}

// Appendf adds fmt.Sprintf(format, args...).
func (b *Builder) Appendf(format string, args ...any) *Builder {
	return b.Append(fmt.Sprintf(format, args...))
}

// AppendNewLine adds the newline text.
func (b *Builder) AppendNewLine() *Builder {
	return b.Append(b.NewlineText())
}

// AppendLine adds s followed by the newline text.
func (b *Builder) AppendLine(s string) *Builder {
	return b.Append(s).AppendNewLine()
}

// AppendLineValue adds the textual form of v followed by the newline text.
func (b *Builder) AppendLineValue(v any) *Builder {
	return b.AppendValue(v).AppendNewLine()
}

// AppendAll adds the textual form of each value in order.
func (b *Builder) AppendAll(values ...any) *Builder {
	for _, v := range values {
		b.AppendValue(v)
	}
	return b
}

// AppendWithSeparators adds the values with sep between each pair.
// Absent values contribute the null text.
func (b *Builder) AppendWithSeparators(values []any, sep string) *Builder {
	for i, v := range values {
		b.AppendSeparatorAt(sep, i)
		b.AppendValue(v)
	}
	return b
}

// AppendJoin adds the strings with sep between each pair.
func (b *Builder) AppendJoin(values []string, sep string) *Builder {
	for i, s := range values {
		b.AppendSeparatorAt(sep, i)
		b.Append(s)
	}
	return b
}

// AppendSeparator adds sep unless the builder is empty.
//
// This makes building lists in a loop simple:
//
//	for _, name := range names {
//		b.AppendSeparator(", ").Append(name)
//	}
func (b *Builder) AppendSeparator(sep string) *Builder {
	return b.AppendSeparatorOr(sep, "")
}

// AppendSeparatorOr adds sep, or defaultIfEmpty when the builder is empty.
func (b *Builder) AppendSeparatorOr(sep, defaultIfEmpty string) *Builder {
	if b.IsEmpty() {
		return b.Append(defaultIfEmpty)
	}
	return b.Append(sep)
}

// AppendSeparatorRune adds sep unless the builder is empty.
func (b *Builder) AppendSeparatorRune(sep rune) *Builder {
	if b.IsEmpty() {
		return b
	}
	return b.AppendRune(sep)
}

// AppendSeparatorAt adds sep for every loopIndex after the first.
func (b *Builder) AppendSeparatorAt(sep string, loopIndex int) *Builder {
	if loopIndex > 0 {
		b.Append(sep)
	}
	return b
}

// AppendPadding adds n copies of pad. Non-positive n adds nothing.
func (b *Builder) AppendPadding(n int, pad rune) *Builder {
	if n <= 0 {
		return b
	}
	b.EnsureCapacity(b.size + n)
	for i := 0; i < n; i++ {
		b.data[b.size] = pad
		b.size++
	}
	return b
}

// AppendFixedWidthPadLeft adds the textual form of v in a field of exactly
// width units, padding on the left with pad. Longer values keep their
// rightmost width units. Absent values use the null text.
func (b *Builder) AppendFixedWidthPadLeft(v any, width int, pad rune) *Builder {
	if width <= 0 {
		return b
	}
	r := []rune(b.valueOrNull(v))
	if len(r) >= width {
		return b.AppendRunes(r[len(r)-width:])
	}
	return b.AppendPadding(width-len(r), pad).AppendRunes(r)
}

// AppendFixedWidthPadRight adds the textual form of v in a field of exactly
// width units, padding on the right with pad. Longer values keep their
// leftmost width units. Absent values use the null text.
func (b *Builder) AppendFixedWidthPadRight(v any, width int, pad rune) *Builder {
	if width <= 0 {
		return b
	}
	r := []rune(b.valueOrNull(v))
	if len(r) >= width {
		return b.AppendRunes(r[:width])
	}
	return b.AppendRunes(r).AppendPadding(width-len(r), pad)
}

func (b *Builder) valueOrNull(v any) string {
	if s, ok := formatValue(v).Get(); ok {
		return s
	}
	return b.null.String()
}
