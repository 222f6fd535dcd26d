package textbuf

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new builder should be empty")
	}
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.Cap() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, b.Cap())
	}
}

func TestNewWithCapacity(t *testing.T) {
	tests := []struct {
		name string
		req  int
		want int
	}{
		{"explicit", 100, 100},
		{"zero", 0, DefaultCapacity},
		{"negative", -5, DefaultCapacity},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(WithCapacity(tt.req))
			if b.Cap() != tt.want {
				t.Errorf("Cap() = %d, want %d", b.Cap(), tt.want)
			}
		})
	}
}

func TestNewString(t *testing.T) {
	b := NewString("héllo")

	if b.String() != "héllo" {
		t.Errorf("expected %q, got %q", "héllo", b.String())
	}
	if b.Len() != 5 {
		t.Errorf("expected 5 units, got %d", b.Len())
	}
	if b.Cap() != 5+DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", 5+DefaultCapacity, b.Cap())
	}

	big := NewString("ab", WithCapacity(100))
	if big.Cap() != 100 {
		t.Errorf("WithCapacity larger than seed: Cap() = %d, want 100", big.Cap())
	}
}

func TestEnsureCapacity(t *testing.T) {
	b := New(WithCapacity(10))
	b.Append("abc")

	b.EnsureCapacity(5)
	if b.Cap() != 10 {
		t.Errorf("no-op ensure changed capacity to %d", b.Cap())
	}

	b.EnsureCapacity(11)
	if b.Cap() != 22 {
		t.Errorf("doubling: Cap() = %d, want 22", b.Cap())
	}

	b.EnsureCapacity(100)
	if b.Cap() != 100 {
		t.Errorf("large request: Cap() = %d, want 100", b.Cap())
	}

	if b.String() != "abc" {
		t.Errorf("content lost on growth: %q", b.String())
	}
}

func TestEnsureCapacityOverflow(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrCapacityOverflow) {
			t.Errorf("expected ErrCapacityOverflow, got %v", r)
		}
	}()
	New().EnsureCapacity(MaxCapacity + 1)
}

func TestMinimizeCapacity(t *testing.T) {
	b := NewString("hello")
	b.MinimizeCapacity()

	if b.Cap() != 5 {
		t.Errorf("expected capacity 5, got %d", b.Cap())
	}
	if b.String() != "hello" {
		t.Errorf("content changed: %q", b.String())
	}

	b.Append("!")
	if b.String() != "hello!" {
		t.Errorf("append after minimize: %q", b.String())
	}
}

func TestSetLength(t *testing.T) {
	b := NewString("hello")

	if err := b.SetLength(2); err != nil {
		t.Fatalf("SetLength(2): %v", err)
	}
	if b.String() != "he" {
		t.Errorf("truncate: got %q", b.String())
	}

	if err := b.SetLength(4); err != nil {
		t.Fatalf("SetLength(4): %v", err)
	}
	if got := b.Runes(); len(got) != 4 || got[2] != 0 || got[3] != 0 {
		t.Errorf("extend should zero-fill, got %q", got)
	}

	err := b.SetLength(-1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSetLengthZeroFillsStaleContent(t *testing.T) {
	b := NewString("abcdef")
	b.Clear()
	if err := b.SetLength(3); err != nil {
		t.Fatalf("SetLength: %v", err)
	}
	for i, r := range b.Runes() {
		if r != 0 {
			t.Errorf("unit %d = %q, want zero", i, r)
		}
	}
}

func TestClear(t *testing.T) {
	b := NewString("hello")
	capBefore := b.Cap()
	b.Clear()

	if !b.IsEmpty() {
		t.Error("expected empty after Clear")
	}
	if b.Cap() != capBefore {
		t.Errorf("Clear changed capacity from %d to %d", capBefore, b.Cap())
	}

	b.Append("xy")
	if b.String() != "xy" {
		t.Errorf("expected %q, got %q", "xy", b.String())
	}
}

func TestCharAt(t *testing.T) {
	b := NewString("abc")

	r, err := b.CharAt(1)
	if err != nil || r != 'b' {
		t.Errorf("CharAt(1) = %q, %v", r, err)
	}

	for _, i := range []int{-1, 3, 100} {
		if _, err := b.CharAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("CharAt(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestSetCharAt(t *testing.T) {
	b := NewString("abc")

	if err := b.SetCharAt(0, 'X'); err != nil {
		t.Fatalf("SetCharAt: %v", err)
	}
	if b.String() != "Xbc" {
		t.Errorf("expected Xbc, got %q", b.String())
	}

	if err := b.SetCharAt(3, 'Y'); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if b.String() != "Xbc" {
		t.Errorf("failed SetCharAt modified content: %q", b.String())
	}
}

func TestNewlineText(t *testing.T) {
	b := New()
	if b.NewlineText() != platformNewline() {
		t.Errorf("default newline = %q", b.NewlineText())
	}

	b.SetNewlineText(Some("<br>"))
	b.Append("a").AppendNewLine().Append("b")
	if b.String() != "a<br>b" {
		t.Errorf("expected a<br>b, got %q", b.String())
	}

	b.SetNewlineText(None())
	if b.NewlineText() != platformNewline() {
		t.Errorf("None should restore platform newline, got %q", b.NewlineText())
	}

	c := New(WithNewline("\r\n"))
	if c.NewlineText() != "\r\n" {
		t.Errorf("WithNewline: got %q", c.NewlineText())
	}
}

func TestNullText(t *testing.T) {
	b := New()
	if b.NullText().IsSome() {
		t.Error("default null text should be absent")
	}

	b.SetNullText(Some("NULL"))
	if s, ok := b.NullText().Get(); !ok || s != "NULL" {
		t.Errorf("NullText() = %q, %v", s, ok)
	}

	b.SetNullText(Some(""))
	if b.NullText().IsSome() {
		t.Error("empty null text should normalize to absent")
	}
}

func TestRangeErrorMessage(t *testing.T) {
	b := NewString("abc")

	err := b.Insert(4, "x")
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RangeError, got %T", err)
	}
	if re.Op != "insert" || re.Start != 4 || re.End != -1 || re.Len != 3 {
		t.Errorf("unexpected RangeError fields: %+v", re)
	}
	if re.Error() != "textbuf: insert: index 4: index out of range (length 3)" {
		t.Errorf("unexpected message: %q", re.Error())
	}

	err = b.Delete(2, 1)
	if !errors.As(err, &re) {
		t.Fatalf("expected *RangeError, got %T", err)
	}
	if re.Error() != "textbuf: delete: range [2, 1): invalid range (length 3)" {
		t.Errorf("unexpected message: %q", re.Error())
	}
}

func TestGrowthIsAmortized(t *testing.T) {
	const n = 100_000
	b := New()
	for i := 0; i < n; i++ {
		b.AppendRune('x')
	}

	if b.Len() != n {
		t.Fatalf("expected %d units, got %d", n, b.Len())
	}
	// Doubling copies fewer than 2n units in total.
	if b.copied >= 2*n {
		t.Errorf("reallocation copied %d units for %d appends", b.copied, n)
	}
}

func TestTextOption(t *testing.T) {
	if s, ok := Some("x").Get(); !ok || s != "x" {
		t.Errorf("Some(x).Get() = %q, %v", s, ok)
	}
	if _, ok := None().Get(); ok {
		t.Error("None() should be absent")
	}
	if None().Or("d") != "d" || Some("v").Or("d") != "v" {
		t.Error("Or returned wrong value")
	}
	var zero Text
	if zero.IsSome() {
		t.Error("zero Text should be absent")
	}
}
