package textbuf

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

func TestAppend(t *testing.T) {
	b := New()
	b.Append("foo").AppendRune('-').AppendRunes([]rune("bar")).Append("")

	if b.String() != "foo-bar" {
		t.Errorf("expected foo-bar, got %q", b.String())
	}
	if b.Len() != 7 {
		t.Errorf("expected length 7, got %d", b.Len())
	}
}

func TestAppendGrowsFromTinyCapacity(t *testing.T) {
	b := New(WithCapacity(1))
	want := strings.Repeat("xyz", 50)
	b.Append(want)
	if b.String() != want {
		t.Errorf("content mismatch after growth")
	}
}

func TestAppendNumbers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Builder)
		want string
	}{
		{"bool true", func(b *Builder) { b.AppendBool(true) }, "true"},
		{"bool false", func(b *Builder) { b.AppendBool(false) }, "false"},
		{"int", func(b *Builder) { b.AppendInt(-42) }, "-42"},
		{"uint", func(b *Builder) { b.AppendUint(math.MaxUint64) }, "18446744073709551615"},
		{"float integral", func(b *Builder) { b.AppendFloat(10) }, "10.0"},
		{"float fraction", func(b *Builder) { b.AppendFloat(0.25) }, "0.25"},
		{"float negative zero", func(b *Builder) { b.AppendFloat(math.Copysign(0, -1)) }, "-0.0"},
		{"float large", func(b *Builder) { b.AppendFloat(1e7) }, "1.0E7"},
		{"float large fraction", func(b *Builder) { b.AppendFloat(12345678.9) }, "1.23456789E7"},
		{"float small", func(b *Builder) { b.AppendFloat(0.0001) }, "1.0E-4"},
		{"float nan", func(b *Builder) { b.AppendFloat(math.NaN()) }, "NaN"},
		{"float inf", func(b *Builder) { b.AppendFloat(math.Inf(-1)) }, "-Infinity"},
		{"float32", func(b *Builder) { b.AppendFloat32(0.1) }, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.fn(b)
			if b.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, b.String())
			}
		})
	}
}

func TestAppendValue(t *testing.T) {
	var nilBuilder *Builder
	var nilPoint *point

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "<null>"},
		{"string", "s", "s"},
		{"int", 7, "7"},
		{"int32 is a number", int32('A'), "65"},
		{"uint8", uint8(200), "200"},
		{"float64", 2.0, "2.0"},
		{"float32", float32(1.5), "1.5"},
		{"bool", true, "true"},
		{"runes", []rune("rs"), "rs"},
		{"bytes", []byte("bs"), "bs"},
		{"nil bytes", []byte(nil), "<null>"},
		{"builder", NewString("inner"), "inner"},
		{"nil builder", nilBuilder, "<null>"},
		{"stringer", point{1, 2}, "(1,2)"},
		{"nil pointer", nilPoint, "<null>"},
		{"error", errors.New("boom"), "boom"},
		{"some text", Some("t"), "t"},
		{"none text", None(), "<null>"},
		{"fallback", struct{ A int }{3}, "{3}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithNullText("<null>"))
			b.AppendValue(tt.v)
			if b.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, b.String())
			}
		})
	}
}

func TestAppendNullPolicy(t *testing.T) {
	b := New()
	b.AppendText(None()).AppendValue(nil).AppendNull()
	if !b.IsEmpty() {
		t.Errorf("absent values without null text should append nothing, got %q", b.String())
	}

	b.SetNullText(Some("null"))
	b.AppendText(None()).AppendText(Some(""))
	if b.String() != "null" {
		t.Errorf("expected null, got %q", b.String())
	}
}

func TestAppendRanges(t *testing.T) {
	b := New()

	if err := b.AppendStringRange("hello world", 6, 5); err != nil {
		t.Fatal(err)
	}
	if err := b.AppendRunesRange([]rune("--!--"), 2, 1); err != nil {
		t.Fatal(err)
	}
	if err := b.AppendBuilderRange(NewString("abc"), 0, 0); err != nil {
		t.Fatal(err)
	}
	if b.String() != "world!" {
		t.Errorf("expected world!, got %q", b.String())
	}

	tests := []struct {
		name           string
		offset, length int
		want           error
	}{
		{"negative offset", -1, 1, ErrIndexOutOfRange},
		{"offset past end", 4, 0, ErrIndexOutOfRange},
		{"negative length", 0, -1, ErrRangeInvalid},
		{"too long", 1, 3, ErrRangeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.AppendStringRange("abc", tt.offset, tt.length)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if b.String() != "world!" {
				t.Errorf("failed append modified content: %q", b.String())
			}
		})
	}
}

func TestAppendBuilderSelf(t *testing.T) {
	b := New(WithCapacity(3))
	b.Append("abc")
	b.AppendBuilder(b)
	if b.String() != "abcabc" {
		t.Errorf("expected abcabc, got %q", b.String())
	}

	if err := b.AppendBuilderRange(b, 1, 2); err != nil {
		t.Fatal(err)
	}
	if b.String() != "abcabcbc" {
		t.Errorf("expected abcabcbc, got %q", b.String())
	}
}

func TestAppendLines(t *testing.T) {
	b := New(WithNewline("\n"))
	b.AppendLine("one").AppendLineValue(2).AppendNewLine()

	if b.String() != "one\n2\n\n" {
		t.Errorf("got %q", b.String())
	}
}

func TestAppendf(t *testing.T) {
	b := New()
	b.Appendf("%s=%d", "n", 3)
	if b.String() != "n=3" {
		t.Errorf("got %q", b.String())
	}
}

func TestAppendAllAndSeparators(t *testing.T) {
	b := New(WithNullText("?"))
	b.AppendAll("a", 1, nil, true)
	if b.String() != "a1?true" {
		t.Errorf("AppendAll: got %q", b.String())
	}

	b.Clear().AppendWithSeparators([]any{"x", nil, 3}, ", ")
	if b.String() != "x, ?, 3" {
		t.Errorf("AppendWithSeparators: got %q", b.String())
	}

	b.Clear().AppendJoin([]string{"p", "q", "r"}, "/")
	if b.String() != "p/q/r" {
		t.Errorf("AppendJoin: got %q", b.String())
	}

	b.Clear().AppendJoin(nil, "/")
	if !b.IsEmpty() {
		t.Errorf("AppendJoin(nil): got %q", b.String())
	}
}

func TestAppendSeparator(t *testing.T) {
	b := New()
	for _, s := range []string{"a", "b", "c"} {
		b.AppendSeparator(", ").Append(s)
	}
	if b.String() != "a, b, c" {
		t.Errorf("AppendSeparator: got %q", b.String())
	}

	b.Clear().AppendSeparatorOr(",", "WHERE ").Append("x").AppendSeparatorOr(" AND ", "WHERE ").Append("y")
	if b.String() != "WHERE x AND y" {
		t.Errorf("AppendSeparatorOr: got %q", b.String())
	}

	b.Clear().AppendSeparatorRune(',').Append("1").AppendSeparatorRune(',').Append("2")
	if b.String() != "1,2" {
		t.Errorf("AppendSeparatorRune: got %q", b.String())
	}

	b.Clear()
	for i, s := range []string{"x", "y"} {
		b.AppendSeparatorAt("|", i).Append(s)
	}
	if b.String() != "x|y" {
		t.Errorf("AppendSeparatorAt: got %q", b.String())
	}
}

func TestAppendPadding(t *testing.T) {
	b := New()
	b.AppendPadding(3, '.').AppendPadding(0, 'x').AppendPadding(-2, 'x')
	if b.String() != "..." {
		t.Errorf("got %q", b.String())
	}
}

func TestAppendFixedWidth(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *Builder)
		want string
	}{
		{"left pad", func(b *Builder) { b.AppendFixedWidthPadLeft(42, 5, '0') }, "00042"},
		{"left exact", func(b *Builder) { b.AppendFixedWidthPadLeft("abc", 3, '-') }, "abc"},
		{"left truncates keeping right", func(b *Builder) { b.AppendFixedWidthPadLeft("abcdef", 3, '-') }, "def"},
		{"left null", func(b *Builder) { b.AppendFixedWidthPadLeft(nil, 4, '.') }, ".nil"},
		{"right pad", func(b *Builder) { b.AppendFixedWidthPadRight("ab", 4, '.') }, "ab.."},
		{"right truncates keeping left", func(b *Builder) { b.AppendFixedWidthPadRight("abcdef", 2, '.') }, "ab"},
		{"zero width", func(b *Builder) { b.AppendFixedWidthPadRight("abc", 0, '.') }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithNullText("nil"))
			tt.fn(b)
			if b.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, b.String())
			}
		})
	}
}

func TestAppendSuffixProperty(t *testing.T) {
	values := []any{"x", 12, -3.5, true, "多字节", NewString("nested")}
	b := NewString("seed")
	for _, v := range values {
		before := b.Len()
		text, _ := formatValue(v).Get()
		b.AppendValue(v)
		if !strings.HasSuffix(b.String(), text) {
			t.Errorf("after AppendValue(%v), %q does not end with %q", v, b.String(), text)
		}
		if b.Len()-before != len([]rune(text)) {
			t.Errorf("AppendValue(%v) grew by %d, want %d", v, b.Len()-before, len([]rune(text)))
		}
	}
}
