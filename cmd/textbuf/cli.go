package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	"github.com/dshills/textbuf/internal/app"
	"github.com/dshills/textbuf/internal/config"
	"github.com/dshills/textbuf/internal/engine/matcher"
	"github.com/dshills/textbuf/internal/engine/textbuf"
)

// newCommand builds the command tree. Streams are parameters so tests can
// capture them.
func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	newApp := func(cmd *cli.Command) (*app.Application, error) {
		paths := cmd.StringSlice("config")
		if len(paths) == 0 {
			paths = []string{config.DefaultPath()}
		}
		return app.New(app.Options{
			ConfigPaths: paths,
			LogLevel:    cmd.String("log-level"),
			NoColor:     cmd.Bool("no-color"),
			Stdout:      stdout,
			Stderr:      stderr,
		})
	}

	return &cli.Command{
		Name:      "textbuf",
		Usage:     "Edit, inspect and split text with a growable text buffer",
		Version:   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file (.toml, .yaml); may be repeated",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "Disable colored log output",
				Sources: cli.EnvVars("NO_COLOR"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run a Lua script with the textbuf module",
				ArgsUsage: "<script.lua>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "watch",
						Aliases: []string{"w"},
						Usage:   "Run again whenever the script changes",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return fmt.Errorf("usage: textbuf run [--watch] <script.lua>")
					}
					a, err := newApp(cmd)
					if err != nil {
						return err
					}
					if cmd.Bool("watch") {
						return a.Watch(ctx, cmd.Args().First())
					}
					return a.RunScript(ctx, cmd.Args().First())
				},
			},
			{
				Name:      "stats",
				Usage:     "Print a JSON report about a file or standard input",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "indent",
						Aliases: []string{"i"},
						Usage:   "Indent the JSON output",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a, err := newApp(cmd)
					if err != nil {
						return err
					}
					return withInput(cmd, stdin, func(r io.Reader) error {
						return a.Stats(r, stdout, cmd.Bool("indent"))
					})
				},
			},
			{
				Name:      "tokens",
				Usage:     "Split a file or standard input into tokens, one per line",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "delim",
						Aliases: []string{"d"},
						Usage:   "Delimiter string (default: whitespace)",
					},
					&cli.StringFlag{
						Name:    "quote",
						Aliases: []string{"q"},
						Usage:   "Quote character",
					},
					&cli.BoolFlag{
						Name:    "trim",
						Aliases: []string{"t"},
						Usage:   "Trim whitespace around tokens",
					},
					&cli.BoolFlag{
						Name:  "keep-empty",
						Usage: "Keep empty tokens",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					opts, err := tokenizerFlags(cmd)
					if err != nil {
						return err
					}
					a, err := newApp(cmd)
					if err != nil {
						return err
					}
					return withInput(cmd, stdin, func(r io.Reader) error {
						return a.Tokens(r, stdout, opts...)
					})
				},
			},
		},
	}
}

// tokenizerFlags converts the tokens flags that were set into options.
func tokenizerFlags(cmd *cli.Command) ([]textbuf.TokenizerOption, error) {
	var opts []textbuf.TokenizerOption
	if cmd.IsSet("delim") {
		delim := cmd.String("delim")
		if delim == "" {
			return nil, fmt.Errorf("--delim must not be empty")
		}
		opts = append(opts, textbuf.WithDelimiterString(delim))
	}
	if cmd.IsSet("quote") {
		quote := cmd.String("quote")
		if utf8.RuneCountInString(quote) != 1 {
			return nil, fmt.Errorf("--quote must be a single character, got %q", quote)
		}
		r, _ := utf8.DecodeRuneInString(quote)
		opts = append(opts, textbuf.WithQuoteRune(r))
	}
	if cmd.Bool("trim") {
		opts = append(opts, textbuf.WithTrimmer(matcher.Trim()))
	}
	if cmd.Bool("keep-empty") {
		opts = append(opts, textbuf.WithIgnoreEmptyTokens(false))
	}
	return opts, nil
}

// withInput calls fn with the file named by the first argument, or stdin
// when there is none or it is "-".
func withInput(cmd *cli.Command, stdin io.Reader, fn func(io.Reader) error) error {
	if cmd.NArg() > 1 {
		return fmt.Errorf("expected at most one file, got %d", cmd.NArg())
	}
	name := cmd.Args().First()
	if name == "" || name == "-" {
		return fn(stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
