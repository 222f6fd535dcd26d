// Package report computes statistics about a buffer and renders them as
// JSON.
package report

import (
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/textbuf/internal/engine/matcher"
	"github.com/dshills/textbuf/internal/engine/textbuf"
)

// Stats describes the content of a buffer. Counts are in characters.
type Stats struct {
	Length        int
	Capacity      int
	Lines         int
	Words         int
	Blank         int
	TrimmedLength int
}

// Compute collects statistics for b without modifying it.
//
// A trailing newline does not start another line. Blank lines contain only
// whitespace. Words are separated by whitespace.
func Compute(b *textbuf.Builder) Stats {
	stats := Stats{
		Length:   b.Len(),
		Capacity: b.Cap(),
	}
	if b.IsEmpty() {
		return stats
	}

	lines := b.AsTokenizer(
		textbuf.WithDelimiter(matcher.Char('\n')),
		textbuf.WithTrimmer(matcher.Trim()),
		textbuf.WithIgnoreEmptyTokens(false),
	).Tokens()
	if b.EndsWith("\n") {
		lines = lines[:len(lines)-1]
	}
	stats.Lines = len(lines)
	for _, line := range lines {
		if line == "" {
			stats.Blank++
		}
	}

	stats.Words = b.AsTokenizer().Size()
	stats.TrimmedLength = b.Clone().Trim().Len()
	return stats
}

// JSON renders s as a JSON object. Keys appear in a fixed order.
func (s Stats) JSON(indent bool) ([]byte, error) {
	fields := []struct {
		key   string
		value int
	}{
		{"length", s.Length},
		{"capacity", s.Capacity},
		{"lines", s.Lines},
		{"words", s.Words},
		{"blank", s.Blank},
		{"trimmed_length", s.TrimmedLength},
	}

	doc := []byte("{}")
	for _, f := range fields {
		var err error
		if doc, err = sjson.SetBytes(doc, f.key, f.value); err != nil {
			return nil, fmt.Errorf("report: set %s: %w", f.key, err)
		}
	}

	if indent {
		return pretty.Pretty(doc), nil
	}
	return append(doc, '\n'), nil
}
