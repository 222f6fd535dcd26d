package textbuf

// Text is an optional piece of text.
//
// The zero value is absent. Builders use Text wherever "no value" and
// "empty value" must be told apart: appending an absent Text appends the
// builder's null text, appending Some("") appends nothing.
type Text struct {
	s  string
	ok bool
}

// Some returns a present Text holding s.
func Some(s string) Text {
	return Text{s: s, ok: true}
}

// None returns an absent Text.
func None() Text {
	return Text{}
}

// Get returns the text and whether it is present.
func (t Text) Get() (string, bool) {
	return t.s, t.ok
}

// IsSome reports whether the text is present.
func (t Text) IsSome() bool {
	return t.ok
}

// Or returns the text if present, otherwise def.
func (t Text) Or(def string) string {
	if t.ok {
		return t.s
	}
	return def
}

// String returns the text, or the empty string when absent.
func (t Text) String() string {
	return t.s
}
