// Package matcher provides pluggable predicates that report how many code
// units of a rune slice match at a given position.
//
// Matchers generalize search, delete, replace and tokenization beyond literal
// runes and strings. A matcher never owns or mutates the slice it inspects.
//
// Basic usage:
//
//	m := matcher.CharSet(",;")
//	n := m.Match([]rune("a;b"), 1, 0, 3) // 1
//
// A return value of 0 means "no match starting here"; it is never an error.
package matcher

import (
	"slices"
)

// Matcher reports the number of units matched at pos.
//
// buf is the full backing slice, [start, end) is the valid region of buf and
// pos lies inside that region. Implementations must not read outside
// [start, end).
type Matcher interface {
	Match(buf []rune, pos, start, end int) int
}

// Func adapts an ordinary function to the Matcher interface.
type Func func(buf []rune, pos, start, end int) int

// Match calls f.
func (f Func) Match(buf []rune, pos, start, end int) int {
	return f(buf, pos, start, end)
}

// Predefined matchers.
var (
	comma       = Char(',')
	tab         = Char('\t')
	space       = Char(' ')
	split       = CharSet(" \t\n\r\f")
	singleQuote = Char('\'')
	doubleQuote = Char('"')
	quote       = CharSet("'\"")
	none        = noneMatcher{}
	trim        = trimMatcher{}
)

// Comma matches the comma character.
func Comma() Matcher { return comma }

// Tab matches the tab character.
func Tab() Matcher { return tab }

// Space matches the space character.
func Space() Matcher { return space }

// Split matches the common whitespace separators: space, tab, newline,
// carriage return and form feed.
func Split() Matcher { return split }

// Trim matches any unit less than or equal to the space character.
func Trim() Matcher { return trim }

// SingleQuote matches the single quote character.
func SingleQuote() Matcher { return singleQuote }

// DoubleQuote matches the double quote character.
func DoubleQuote() Matcher { return doubleQuote }

// Quote matches either quote character.
func Quote() Matcher { return quote }

// None matches nothing.
func None() Matcher { return none }

// CharMatcher matches a single rune.
type CharMatcher struct {
	ch rune
}

// Char returns a matcher for a single rune.
func Char(ch rune) *CharMatcher {
	return &CharMatcher{ch: ch}
}

// Match implements Matcher.
func (m *CharMatcher) Match(buf []rune, pos, _, _ int) int {
	if buf[pos] == m.ch {
		return 1
	}
	return 0
}

// Rune returns the matched rune.
func (m *CharMatcher) Rune() rune {
	return m.ch
}

// CharSetMatcher matches any rune from a set.
type CharSetMatcher struct {
	chars []rune // sorted
}

// CharSet returns a matcher for any rune in chars.
// An empty set yields None.
func CharSet(chars string) Matcher {
	return CharSetRunes([]rune(chars))
}

// CharSetRunes returns a matcher for any rune in chars.
// An empty set yields None; a one-rune set yields Char.
func CharSetRunes(chars []rune) Matcher {
	switch len(chars) {
	case 0:
		return none
	case 1:
		return Char(chars[0])
	}
	sorted := slices.Clone(chars)
	slices.Sort(sorted)
	return &CharSetMatcher{chars: slices.Compact(sorted)}
}

// Match implements Matcher.
func (m *CharSetMatcher) Match(buf []rune, pos, _, _ int) int {
	if _, found := slices.BinarySearch(m.chars, buf[pos]); found {
		return 1
	}
	return 0
}

// StringMatcher matches a literal sequence of runes.
type StringMatcher struct {
	seq []rune
}

// String returns a matcher for the literal text s.
// An empty string yields None.
func String(s string) Matcher {
	if s == "" {
		return none
	}
	return &StringMatcher{seq: []rune(s)}
}

// Match implements Matcher.
func (m *StringMatcher) Match(buf []rune, pos, _, end int) int {
	n := len(m.seq)
	if pos+n > end {
		return 0
	}
	for i, r := range m.seq {
		if buf[pos+i] != r {
			return 0
		}
	}
	return n
}

// String returns the literal text being matched.
func (m *StringMatcher) String() string {
	return string(m.seq)
}

type noneMatcher struct{}

func (noneMatcher) Match([]rune, int, int, int) int { return 0 }

type trimMatcher struct{}

func (trimMatcher) Match(buf []rune, pos, _, _ int) int {
	if buf[pos] <= ' ' {
		return 1
	}
	return 0
}
