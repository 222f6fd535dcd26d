package textbuf

import (
	"math"
	"runtime"
)

// DefaultCapacity is the capacity used when none (or a non-positive one) is
// requested. Builders seeded with text reserve this much beyond the text.
const DefaultCapacity = 32

// MaxCapacity is the largest capacity a Builder can hold.
const MaxCapacity = math.MaxInt32

// Builder is a mutable, growable sequence of runes.
//
// A Builder owns a single backing array whose length is its capacity; only
// the first Len units are content. Growth is doubling-based, so a sequence
// of appends costs amortized O(1) per unit.
//
// Builder is not safe for concurrent use.
type Builder struct {
	data    []rune
	size    int
	newline Text
	null    Text

	// copied counts units moved by reallocation.
	copied int
}

// New creates an empty Builder.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.data == nil {
		b.data = make([]rune, DefaultCapacity)
	}
	return b
}

// NewString creates a Builder holding s, with DefaultCapacity units of room
// beyond it unless WithCapacity asks for more.
func NewString(s string, opts ...Option) *Builder {
	r := []rune(s)
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.data) < len(r)+DefaultCapacity {
		b.data = make([]rune, len(r)+DefaultCapacity)
	}
	b.size = copy(b.data, r)
	return b
}

// Len returns the number of units in the builder.
func (b *Builder) Len() int {
	return b.size
}

// Cap returns the capacity of the backing array.
func (b *Builder) Cap() int {
	return len(b.data)
}

// IsEmpty reports whether the builder holds no units.
func (b *Builder) IsEmpty() bool {
	return b.size == 0
}

// NewlineText returns the text appended by AppendNewLine.
// Unless configured, this is the platform line separator.
func (b *Builder) NewlineText() string {
	return b.newline.Or(platformNewline())
}

// SetNewlineText configures the newline text. None restores the platform
// line separator.
func (b *Builder) SetNewlineText(t Text) *Builder {
	b.newline = t
	return b
}

// NullText returns the text appended in place of absent values.
func (b *Builder) NullText() Text {
	return b.null
}

// SetNullText configures the text appended in place of absent values.
// Some("") is normalized to None.
func (b *Builder) SetNullText(t Text) *Builder {
	if s, ok := t.Get(); ok && s == "" {
		t = None()
	}
	b.null = t
	return b
}

// EnsureCapacity grows the backing array so it holds at least min units.
// The new capacity is the larger of min and twice the old capacity plus two.
// It panics with ErrCapacityOverflow if min exceeds MaxCapacity.
func (b *Builder) EnsureCapacity(min int) *Builder {
	if min > len(b.data) {
		b.grow(min)
	}
	return b
}

func (b *Builder) grow(min int) {
	// A negative min means size+delta wrapped around.
	if min < 0 || min > MaxCapacity {
		panic(ErrCapacityOverflow)
	}
	n := 2*len(b.data) + 2
	if n > MaxCapacity {
		n = MaxCapacity
	}
	if n < min {
		n = min
	}
	data := make([]rune, n)
	b.copied += copy(data, b.data[:b.size])
	b.data = data
}

// MinimizeCapacity shrinks the backing array to exactly Len units.
func (b *Builder) MinimizeCapacity() *Builder {
	if len(b.data) > b.size {
		data := make([]rune, b.size)
		b.copied += copy(data, b.data[:b.size])
		b.data = data
	}
	return b
}

// SetLength truncates or extends the content to n units. Extension fills
// with zero units.
func (b *Builder) SetLength(n int) error {
	if n < 0 {
		return indexError("setLength", n, b.size)
	}
	if n > b.size {
		b.EnsureCapacity(n)
		clear(b.data[b.size:n])
	}
	b.size = n
	return nil
}

// Clear empties the builder. The capacity is kept and old content is left
// in place to be overwritten.
func (b *Builder) Clear() *Builder {
	b.size = 0
	return b
}

// CharAt returns the unit at index i.
func (b *Builder) CharAt(i int) (rune, error) {
	if err := b.validateIndex("charAt", i); err != nil {
		return 0, err
	}
	return b.data[i], nil
}

// SetCharAt overwrites the unit at index i.
func (b *Builder) SetCharAt(i int, r rune) error {
	if err := b.validateIndex("setCharAt", i); err != nil {
		return err
	}
	b.data[i] = r
	return nil
}

// String returns the content as an immutable string.
func (b *Builder) String() string {
	return string(b.data[:b.size])
}

// Build returns the content as an immutable string.
func (b *Builder) Build() string {
	return b.String()
}

func platformNewline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
