package config

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textbuf/internal/config/loader"
	"github.com/dshills/textbuf/internal/engine/matcher"
	"github.com/dshills/textbuf/internal/engine/textbuf"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "TEXTBUF_"

// Config holds all textbuf settings.
type Config struct {
	Buffer    BufferConfig    `toml:"buffer"`
	Tokenizer TokenizerConfig `toml:"tokenizer"`
	Script    ScriptConfig    `toml:"script"`
	Logging   LoggingConfig   `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Buffer: BufferConfig{
			Capacity: textbuf.DefaultCapacity,
		},
		Tokenizer: TokenizerConfig{
			IgnoreEmpty: true,
		},
		Script: ScriptConfig{
			Timeout:       Duration{5 * time.Second},
			WatchDebounce: Duration{100 * time.Millisecond},
			MaxCapacity:   1 << 24,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs  loader.FileSystem
	env *loader.EnvLoader
}

// WithFS reads config files from fsys instead of the OS file system.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnv reads overrides from env instead of the process environment.
// A nil env disables environment overrides.
func WithEnv(env *loader.EnvLoader) LoadOption {
	return func(o *loadOptions) {
		o.env = env
	}
}

// Load builds a Config from the defaults, then each file in paths in order,
// then TEXTBUF_* environment variables, and validates the result.
// Missing files are skipped. Unknown settings in files are errors.
func Load(paths []string, opts ...LoadOption) (*Config, error) {
	o := &loadOptions{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(EnvPrefix),
	}
	for _, opt := range opts {
		opt(o)
	}

	cfg := Default()

	var (
		merged map[string]any
		source string
	)
	for _, path := range paths {
		l, err := loader.ForFile(o.fs, path)
		if err != nil {
			return nil, err
		}
		m, err := l.Load()
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		merged = loader.DeepMerge(merged, m)
		source = path
	}
	if merged != nil {
		if err := cfg.decode(source, merged, true); err != nil {
			return nil, err
		}
	}

	if o.env != nil {
		registerKinds(o.env)
		m, err := o.env.Load()
		if err != nil {
			return nil, err
		}
		if len(m) > 0 {
			if err := cfg.decode("environment", m, false); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// registerKinds tells env the value kind of every setting so environment
// text converts by the field it targets.
func registerKinds(env *loader.EnvLoader) {
	walkSettings(reflect.TypeFor[Config](), "", env.SetKind)
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

func walkSettings(t reflect.Type, prefix string, fn func(path string, kind loader.Kind)) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		switch ft := f.Type; {
		case reflect.PointerTo(ft).Implements(textUnmarshalerType):
			fn(path, loader.KindString)
		case ft.Kind() == reflect.Struct:
			walkSettings(ft, path, fn)
		default:
			fn(path, kindOf(ft.Kind()))
		}
	}
}

func kindOf(k reflect.Kind) loader.Kind {
	switch k {
	case reflect.Bool:
		return loader.KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return loader.KindInt
	case reflect.Float32, reflect.Float64:
		return loader.KindFloat
	default:
		return loader.KindString
	}
}

// decode applies the settings in m on top of c. In strict mode a key that
// names no setting is an error.
func (c *Config) decode(source string, m map[string]any, strict bool) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return &loader.ParseError{Path: source, Message: err.Error(), Err: err}
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(c); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return &loader.ParseError{Path: source, Message: missing.String(), Err: ErrUnknownSetting}
		}
		return &loader.ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks every setting and joins all failures.
func (c *Config) Validate() error {
	var errs []error

	if c.Buffer.Capacity < 0 || c.Buffer.Capacity > textbuf.MaxCapacity {
		errs = append(errs, &ValidationError{
			Path:    "buffer.capacity",
			Message: fmt.Sprintf("must be between 0 and %d", textbuf.MaxCapacity),
			Value:   c.Buffer.Capacity,
		})
	}
	if utf8.RuneCountInString(c.Tokenizer.Quote) > 1 {
		errs = append(errs, &ValidationError{
			Path:    "tokenizer.quote",
			Message: "must be a single character",
			Value:   c.Tokenizer.Quote,
		})
	}
	if c.Script.Timeout.Duration < 0 {
		errs = append(errs, &ValidationError{Path: "script.timeout", Message: "must not be negative", Value: c.Script.Timeout})
	}
	if c.Script.WatchDebounce.Duration < 0 {
		errs = append(errs, &ValidationError{Path: "script.watch_debounce", Message: "must not be negative", Value: c.Script.WatchDebounce})
	}
	if c.Script.MaxCapacity < 0 || c.Script.MaxCapacity > textbuf.MaxCapacity {
		errs = append(errs, &ValidationError{
			Path:    "script.max_capacity",
			Message: fmt.Sprintf("must be between 0 and %d", textbuf.MaxCapacity),
			Value:   c.Script.MaxCapacity,
		})
	}
	if !logLevels[c.Logging.Level] {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: "must be debug, info, warn or error",
			Value:   c.Logging.Level,
		})
	}

	return errors.Join(errs...)
}

// BufferOptions returns the builder options for the buffer settings.
func (c *Config) BufferOptions() []textbuf.Option {
	opts := []textbuf.Option{textbuf.WithCapacity(c.Buffer.Capacity)}
	if c.Buffer.Newline != "" {
		opts = append(opts, textbuf.WithNewline(c.Buffer.Newline))
	}
	if c.Buffer.NullText != "" {
		opts = append(opts, textbuf.WithNullText(c.Buffer.NullText))
	}
	return opts
}

// TokenizerOptions returns the tokenizer options for the tokenizer settings.
func (c *Config) TokenizerOptions() []textbuf.TokenizerOption {
	opts := []textbuf.TokenizerOption{textbuf.WithIgnoreEmptyTokens(c.Tokenizer.IgnoreEmpty)}
	if c.Tokenizer.Delimiter != "" {
		opts = append(opts, textbuf.WithDelimiterString(c.Tokenizer.Delimiter))
	}
	if q, _ := utf8.DecodeRuneInString(c.Tokenizer.Quote); c.Tokenizer.Quote != "" {
		opts = append(opts, textbuf.WithQuoteRune(q))
	}
	if c.Tokenizer.Trim {
		opts = append(opts, textbuf.WithTrimmer(matcher.Trim()))
	}
	return opts
}

// DefaultPath returns the user config file location,
// $XDG_CONFIG_HOME/textbuf/config.toml or ~/.config/textbuf/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "textbuf", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "textbuf", "config.toml")
}
