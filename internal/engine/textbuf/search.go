package textbuf

import (
	"github.com/dshills/textbuf/internal/engine/matcher"
)

// Searches report -1 when nothing is found. Absent needles (a nil matcher)
// are never an error: they simply match nothing.

// IndexRune returns the index of the first r, or -1.
func (b *Builder) IndexRune(r rune) int {
	return b.IndexRuneFrom(r, 0)
}

// IndexRuneFrom returns the index of the first r at or after start, or -1.
// A negative start is treated as 0.
func (b *Builder) IndexRuneFrom(r rune, start int) int {
	start = max(start, 0)
	for i := start; i < b.size; i++ {
		if b.data[i] == r {
			return i
		}
	}
	return -1
}

// Index returns the index of the first occurrence of s, or -1.
func (b *Builder) Index(s string) int {
	return b.IndexFrom(s, 0)
}

// IndexFrom returns the index of the first occurrence of s at or after
// start, or -1. start is clamped into [0, Len]; an empty s returns the
// clamped start.
func (b *Builder) IndexFrom(s string, start int) int {
	start = min(max(start, 0), b.size)
	needle := []rune(s)
	switch n := len(needle); {
	case n == 0:
		return start
	case n == 1:
		return b.IndexRuneFrom(needle[0], start)
	case n > b.size:
		return -1
	}
	last := b.size - len(needle)
	for i := start; i <= last; i++ {
		if b.matchAt(i, needle) {
			return i
		}
	}
	return -1
}

// IndexMatch returns the first position where m matches, or -1.
func (b *Builder) IndexMatch(m matcher.Matcher) int {
	return b.IndexMatchFrom(m, 0)
}

// IndexMatchFrom returns the first position at or after start where m
// matches, or -1. A nil matcher matches nothing.
func (b *Builder) IndexMatchFrom(m matcher.Matcher, start int) int {
	start = max(start, 0)
	if m == nil || start >= b.size {
		return -1
	}
	for i := start; i < b.size; i++ {
		if m.Match(b.data, i, start, b.size) > 0 {
			return i
		}
	}
	return -1
}

// LastIndexRune returns the index of the last r, or -1.
func (b *Builder) LastIndexRune(r rune) int {
	return b.LastIndexRuneFrom(r, b.size-1)
}

// LastIndexRuneFrom returns the index of the last r at or before start,
// or -1. A start past the end is treated as Len-1.
func (b *Builder) LastIndexRuneFrom(r rune, start int) int {
	start = min(start, b.size-1)
	for i := start; i >= 0; i-- {
		if b.data[i] == r {
			return i
		}
	}
	return -1
}

// LastIndex returns the index of the last occurrence of s, or -1.
func (b *Builder) LastIndex(s string) int {
	return b.LastIndexFrom(s, b.size-1)
}

// LastIndexFrom returns the index of the last occurrence of s that begins
// at or before start, or -1. start is clamped into [-1, Len-1]; an empty s
// returns the clamped start.
func (b *Builder) LastIndexFrom(s string, start int) int {
	start = min(start, b.size-1)
	if start < 0 {
		return -1
	}
	needle := []rune(s)
	switch n := len(needle); {
	case n == 0:
		return start
	case n == 1:
		return b.LastIndexRuneFrom(needle[0], start)
	case n > b.size:
		return -1
	}
	for i := min(start, b.size-len(needle)); i >= 0; i-- {
		if b.matchAt(i, needle) {
			return i
		}
	}
	return -1
}

// LastIndexMatch returns the last position where m matches, or -1.
func (b *Builder) LastIndexMatch(m matcher.Matcher) int {
	return b.LastIndexMatchFrom(m, b.size)
}

// LastIndexMatchFrom returns the last position at or before start where m
// matches, or -1. The matcher only sees units up to and including start.
func (b *Builder) LastIndexMatchFrom(m matcher.Matcher, start int) int {
	start = min(start, b.size-1)
	if m == nil || start < 0 {
		return -1
	}
	for i := start; i >= 0; i-- {
		if m.Match(b.data, i, 0, start+1) > 0 {
			return i
		}
	}
	return -1
}

// Contains reports whether r occurs in the builder.
func (b *Builder) Contains(r rune) bool {
	return b.IndexRune(r) >= 0
}

// ContainsString reports whether s occurs in the builder.
func (b *Builder) ContainsString(s string) bool {
	return b.Index(s) >= 0
}

// ContainsMatch reports whether m matches anywhere in the builder.
func (b *Builder) ContainsMatch(m matcher.Matcher) bool {
	return b.IndexMatch(m) >= 0
}

// StartsWith reports whether the content begins with s.
func (b *Builder) StartsWith(s string) bool {
	prefix := []rune(s)
	if len(prefix) > b.size {
		return false
	}
	return b.matchAt(0, prefix)
}

// EndsWith reports whether the content ends with s.
func (b *Builder) EndsWith(s string) bool {
	suffix := []rune(s)
	if len(suffix) > b.size {
		return false
	}
	return b.matchAt(b.size-len(suffix), suffix)
}

// matchAt reports whether needle occurs at pos. The caller guarantees
// pos+len(needle) <= Len.
func (b *Builder) matchAt(pos int, needle []rune) bool {
	for j, r := range needle {
		if b.data[pos+j] != r {
			return false
		}
	}
	return true
}
