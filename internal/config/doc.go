// Package config provides the configuration for the textbuf tool.
//
// Settings are layered with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by the CLI)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← TEXTBUF_SECTION_KEY
//	├─────────────────────────────┤
//	│  2. Config Files            │  ← .toml, .yaml or .yml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load([]string{config.DefaultPath()})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b := textbuf.New(cfg.BufferOptions()...)
//
// # Configuration Files
//
//	[buffer]
//	capacity = 64
//	newline = "\n"
//	null_text = "null"
//
//	[tokenizer]
//	delimiter = ","
//	quote = "\""
//	trim = true
//
//	[script]
//	timeout = "2s"
//	watch_debounce = "200ms"
//
//	[logging]
//	level = "debug"
//
// # Error Handling
//
// Unreadable files return *loader.ParseError; settings that don't exist
// unwrap to ErrUnknownSetting. Out-of-range values return *ValidationError,
// which matches ErrInvalidValue.
package config
