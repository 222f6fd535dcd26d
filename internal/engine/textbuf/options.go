package textbuf

// Option is a functional option for configuring a Builder.
type Option func(*Builder)

// WithCapacity sets the initial capacity. Non-positive values fall back to
// DefaultCapacity.
func WithCapacity(n int) Option {
	return func(b *Builder) {
		if n <= 0 {
			n = DefaultCapacity
		}
		if n > MaxCapacity {
			panic(ErrCapacityOverflow)
		}
		b.data = make([]rune, n)
	}
}

// WithNewline sets the text appended by AppendNewLine.
func WithNewline(s string) Option {
	return func(b *Builder) {
		b.newline = Some(s)
	}
}

// WithNullText sets the text appended in place of absent values.
func WithNullText(s string) Option {
	return func(b *Builder) {
		b.null = Some(s)
	}
}
