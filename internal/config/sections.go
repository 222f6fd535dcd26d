package config

import (
	"fmt"
	"time"
)

// BufferConfig configures new text buffers.
type BufferConfig struct {
	// Capacity is the initial capacity in units. 0 uses the builder default.
	Capacity int `toml:"capacity"`

	// Newline is the text appended for a line break. Empty uses the
	// platform newline.
	Newline string `toml:"newline"`

	// NullText is appended for absent values. Empty appends nothing.
	NullText string `toml:"null_text"`
}

// TokenizerConfig configures the tokens command.
type TokenizerConfig struct {
	// Delimiter separates tokens. Empty splits on whitespace.
	Delimiter string `toml:"delimiter"`

	// Quote is a single quote character, or empty for no quoting.
	Quote string `toml:"quote"`

	// Trim strips whitespace and control characters from token ends.
	Trim bool `toml:"trim"`

	// IgnoreEmpty drops empty tokens.
	IgnoreEmpty bool `toml:"ignore_empty"`
}

// ScriptConfig configures Lua script execution.
type ScriptConfig struct {
	// Timeout bounds a single script run. 0 disables the limit.
	Timeout Duration `toml:"timeout"`

	// WatchDebounce is the quiet period before a changed script reruns.
	WatchDebounce Duration `toml:"watch_debounce"`

	// MaxCapacity is the largest capacity a script may pass to
	// textbuf.new. 0 allows up to textbuf.MaxCapacity.
	MaxCapacity int `toml:"max_capacity"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `toml:"level"`

	// NoColor disables colored level tags.
	NoColor bool `toml:"no_color"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
