package app

import (
	"bufio"
	"io"

	"github.com/dshills/textbuf/internal/engine/textbuf"
	"github.com/dshills/textbuf/internal/report"
)

// readBuffer reads r into a builder configured from the buffer settings.
func (a *Application) readBuffer(op string, r io.Reader) (*textbuf.Builder, error) {
	b := textbuf.New(a.cfg.BufferOptions()...)
	if _, err := b.ReadFrom(r); err != nil {
		return nil, NewOperationError(op, "", err)
	}
	return b, nil
}

// Stats writes a JSON report about the text read from r.
func (a *Application) Stats(r io.Reader, w io.Writer, indent bool) error {
	b, err := a.readBuffer("stats", r)
	if err != nil {
		return err
	}

	stats := report.Compute(b)
	a.logger.WithComponent("stats").Debug("computed stats for %d characters", stats.Length)

	data, err := stats.JSON(indent)
	if err != nil {
		return NewOperationError("stats", "", err)
	}
	if _, err := w.Write(data); err != nil {
		return NewOperationError("stats", "", err)
	}
	return nil
}

// Tokens splits the text read from r and writes one token per line.
// opts are applied after the configured tokenizer settings.
func (a *Application) Tokens(r io.Reader, w io.Writer, opts ...textbuf.TokenizerOption) error {
	b, err := a.readBuffer("tokens", r)
	if err != nil {
		return err
	}

	all := append(a.cfg.TokenizerOptions(), opts...)
	tok := b.AsTokenizer(all...)

	bw := bufio.NewWriter(w)
	for _, token := range tok.All() {
		_, _ = bw.WriteString(token)
		_ = bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return NewOperationError("tokens", "", err)
	}

	a.logger.WithComponent("tokens").Debug("wrote %d tokens", tok.Size())
	return nil
}
