package textbuf

import (
	"iter"

	"github.com/dshills/textbuf/internal/engine/matcher"
)

// Tokenizer splits text into tokens.
//
// Tokens are separated by the delimiter matcher (whitespace by default).
// A token that begins with a quote may contain delimiters; inside quotes a
// doubled quote stands for one quote. The ignored matcher drops units
// outside quotes and the trimmer strips units from both ends of unquoted
// token text. Empty tokens are dropped unless IgnoreEmptyTokens is off.
//
// Tokens are computed on first access and cached until Reset.
type Tokenizer struct {
	chars  []rune
	source func() []rune

	tokens []string
	pos    int

	delim       matcher.Matcher
	quote       matcher.Matcher
	ignored     matcher.Matcher
	trimmer     matcher.Matcher
	ignoreEmpty bool
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithDelimiter sets the delimiter matcher. nil is ignored.
func WithDelimiter(m matcher.Matcher) TokenizerOption {
	return func(t *Tokenizer) {
		if m != nil {
			t.delim = m
		}
	}
}

// WithDelimiterString splits on the literal text s.
func WithDelimiterString(s string) TokenizerOption {
	return WithDelimiter(matcher.String(s))
}

// WithQuote sets the quote matcher. nil disables quoting.
func WithQuote(m matcher.Matcher) TokenizerOption {
	return func(t *Tokenizer) {
		t.quote = orNone(m)
	}
}

// WithQuoteRune quotes with the single rune q.
func WithQuoteRune(q rune) TokenizerOption {
	return WithQuote(matcher.Char(q))
}

// WithIgnored sets the matcher for units dropped outside quotes.
func WithIgnored(m matcher.Matcher) TokenizerOption {
	return func(t *Tokenizer) {
		t.ignored = orNone(m)
	}
}

// WithTrimmer sets the matcher for units stripped from token ends.
func WithTrimmer(m matcher.Matcher) TokenizerOption {
	return func(t *Tokenizer) {
		t.trimmer = orNone(m)
	}
}

// WithIgnoreEmptyTokens controls whether empty tokens are dropped.
func WithIgnoreEmptyTokens(ignore bool) TokenizerOption {
	return func(t *Tokenizer) {
		t.ignoreEmpty = ignore
	}
}

// NewTokenizer creates a Tokenizer over s.
func NewTokenizer(s string, opts ...TokenizerOption) *Tokenizer {
	t := newTokenizer(opts)
	t.chars = []rune(s)
	return t
}

// AsTokenizer returns a Tokenizer over b.
//
// Content is pulled from b when tokens are first needed, not when the
// Tokenizer is created. Once computed, tokens do not follow later changes
// to b; call Reset to tokenize b's current content again.
func (b *Builder) AsTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := newTokenizer(opts)
	t.source = func() []rune { return b.data[:b.size] }
	return t
}

func newTokenizer(opts []TokenizerOption) *Tokenizer {
	t := &Tokenizer{
		delim:       matcher.Split(),
		quote:       matcher.None(),
		ignored:     matcher.None(),
		trimmer:     matcher.None(),
		ignoreEmpty: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func orNone(m matcher.Matcher) matcher.Matcher {
	if m == nil {
		return matcher.None()
	}
	return m
}

// SetDelimiter replaces the delimiter matcher. Tokens already computed are
// kept until Reset.
func (t *Tokenizer) SetDelimiter(m matcher.Matcher) error {
	if m == nil {
		return ErrNilMatcher
	}
	t.delim = m
	return nil
}

// SetQuote replaces the quote matcher. nil disables quoting.
func (t *Tokenizer) SetQuote(m matcher.Matcher) {
	t.quote = orNone(m)
}

// SetIgnored replaces the ignored matcher. nil ignores nothing.
func (t *Tokenizer) SetIgnored(m matcher.Matcher) {
	t.ignored = orNone(m)
}

// SetTrimmer replaces the trimmer. nil trims nothing.
func (t *Tokenizer) SetTrimmer(m matcher.Matcher) {
	t.trimmer = orNone(m)
}

// SetIgnoreEmptyTokens controls whether empty tokens are dropped.
func (t *Tokenizer) SetIgnoreEmptyTokens(ignore bool) {
	t.ignoreEmpty = ignore
}

// Reset discards computed tokens and rewinds. A Builder-backed Tokenizer
// rereads the Builder on next access.
func (t *Tokenizer) Reset() *Tokenizer {
	t.tokens = nil
	t.pos = 0
	return t
}

// ResetString replaces the content with s and rewinds.
func (t *Tokenizer) ResetString(s string) *Tokenizer {
	t.Reset()
	t.chars = []rune(s)
	return t
}

// Content returns the text being tokenized.
func (t *Tokenizer) Content() string {
	if t.chars == nil && t.source != nil {
		return string(t.source())
	}
	return string(t.chars)
}

// Size returns the number of tokens.
func (t *Tokenizer) Size() int {
	t.ensureTokenized()
	return len(t.tokens)
}

// HasNext reports whether Next would return a token.
func (t *Tokenizer) HasNext() bool {
	t.ensureTokenized()
	return t.pos < len(t.tokens)
}

// Next returns the next token and advances.
func (t *Tokenizer) Next() (string, bool) {
	if !t.HasNext() {
		return "", false
	}
	tok := t.tokens[t.pos]
	t.pos++
	return tok, true
}

// HasPrevious reports whether Previous would return a token.
func (t *Tokenizer) HasPrevious() bool {
	t.ensureTokenized()
	return t.pos > 0
}

// Previous steps back and returns that token.
func (t *Tokenizer) Previous() (string, bool) {
	if !t.HasPrevious() {
		return "", false
	}
	t.pos--
	return t.tokens[t.pos], true
}

// NextIndex returns the index of the token Next would return.
func (t *Tokenizer) NextIndex() int {
	return t.pos
}

// PreviousIndex returns the index of the token Previous would return, or
// -1.
func (t *Tokenizer) PreviousIndex() int {
	return t.pos - 1
}

// Tokens returns a copy of all tokens, regardless of position.
func (t *Tokenizer) Tokens() []string {
	t.ensureTokenized()
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// All iterates over all tokens, regardless of position.
func (t *Tokenizer) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		t.ensureTokenized()
		for i, tok := range t.tokens {
			if !yield(i, tok) {
				return
			}
		}
	}
}

func (t *Tokenizer) ensureTokenized() {
	if t.tokens != nil {
		return
	}
	chars := t.chars
	if chars == nil && t.source != nil {
		chars = t.source()
	}
	t.tokens = t.tokenize(chars)
}

// tokenize splits src. The result is never nil so that an empty result is
// still cached.
func (t *Tokenizer) tokenize(src []rune) []string {
	tokens := []string{}
	if len(src) == 0 {
		return tokens
	}
	work := New()
	n := len(src)
	for pos := 0; pos >= 0 && pos < n; {
		pos = t.readNextToken(src, pos, n, work, &tokens)
		// A trailing delimiter ends with an empty token.
		if pos >= n {
			t.addToken(&tokens, "")
		}
	}
	return tokens
}

func (t *Tokenizer) addToken(tokens *[]string, tok string) {
	if tok == "" && t.ignoreEmpty {
		return
	}
	*tokens = append(*tokens, tok)
}

// readNextToken reads one token starting at start and returns the position
// after it, or -1 at the end of input.
func (t *Tokenizer) readNextToken(src []rune, start, n int, work *Builder, tokens *[]string) int {
	// Skip leading ignored and trimmed units, but never a delimiter or quote.
	for start < n {
		skip := max(t.ignored.Match(src, start, start, n), t.trimmer.Match(src, start, start, n))
		if skip == 0 || t.delim.Match(src, start, start, n) > 0 || t.quote.Match(src, start, start, n) > 0 {
			break
		}
		start += skip
	}

	if start >= n {
		t.addToken(tokens, "")
		return -1
	}

	if d := t.delim.Match(src, start, start, n); d > 0 {
		t.addToken(tokens, "")
		return start + d
	}

	if q := t.quote.Match(src, start, start, n); q > 0 {
		return t.readWithQuotes(src, start+q, n, work, tokens, start, q)
	}
	return t.readWithQuotes(src, start, n, work, tokens, 0, 0)
}

// readWithQuotes reads a token that may contain quoted sections. quoteLen
// is the length of the opening quote at quoteStart, or 0 when the token is
// unquoted.
func (t *Tokenizer) readWithQuotes(src []rune, start, n int, work *Builder, tokens *[]string, quoteStart, quoteLen int) int {
	work.Clear()
	pos := start
	quoting := quoteLen > 0
	// trimStart is the length of work up to its last untrimmable unit.
	trimStart := 0

	for pos < n {
		if quoting {
			if isQuote(src, pos, n, quoteStart, quoteLen) {
				if isQuote(src, pos+quoteLen, n, quoteStart, quoteLen) {
					// Doubled quote.
					work.AppendRunes(src[pos : pos+quoteLen])
					pos += 2 * quoteLen
					trimStart = work.Len()
					continue
				}
				quoting = false
				pos += quoteLen
				continue
			}
			work.AppendRune(src[pos])
			pos++
			trimStart = work.Len()
			continue
		}

		if d := t.delim.Match(src, pos, start, n); d > 0 {
			t.addToken(tokens, work.LeftString(trimStart))
			return pos + d
		}
		if quoteLen > 0 && isQuote(src, pos, n, quoteStart, quoteLen) {
			quoting = true
			pos += quoteLen
			continue
		}
		if ig := t.ignored.Match(src, pos, start, n); ig > 0 {
			pos += ig
			continue
		}
		// Trimmed units might be interior; keep them until the end is known.
		if tr := t.trimmer.Match(src, pos, start, n); tr > 0 {
			work.AppendRunes(src[pos : pos+tr])
			pos += tr
			continue
		}
		work.AppendRune(src[pos])
		pos++
		trimStart = work.Len()
	}

	t.addToken(tokens, work.LeftString(trimStart))
	return -1
}

func isQuote(src []rune, pos, n, quoteStart, quoteLen int) bool {
	for i := 0; i < quoteLen; i++ {
		if pos+i >= n || src[pos+i] != src[quoteStart+i] {
			return false
		}
	}
	return true
}
