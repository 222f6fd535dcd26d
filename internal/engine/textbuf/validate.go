package textbuf

// validateIndex accepts 0 <= i < Len.
func (b *Builder) validateIndex(op string, i int) error {
	if i < 0 || i >= b.size {
		return indexError(op, i, b.size)
	}
	return nil
}

// validateInsertIndex accepts 0 <= i <= Len; i == Len appends.
func (b *Builder) validateInsertIndex(op string, i int) error {
	if i < 0 || i > b.size {
		return indexError(op, i, b.size)
	}
	return nil
}

// validateRange checks the half-open span [start, end). An end past Len is
// clamped to Len; a negative start or an inverted span is rejected.
// It returns the clamped end.
func (b *Builder) validateRange(op string, start, end int) (int, error) {
	if start < 0 {
		return 0, rangeError(op, start, end, b.size, ErrIndexOutOfRange)
	}
	if end > b.size {
		end = b.size
	}
	if start > end {
		return 0, rangeError(op, start, end, b.size, ErrRangeInvalid)
	}
	return end, nil
}

// validateSubrange checks that [offset, offset+length) lies inside a
// sequence of n units. Nothing is clamped.
func validateSubrange(op string, offset, length, n int) error {
	if offset < 0 || offset > n {
		return indexError(op, offset, n)
	}
	if length < 0 || offset+length > n {
		return rangeError(op, offset, offset+length, n, ErrRangeInvalid)
	}
	return nil
}
