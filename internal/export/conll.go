package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/example/go-reftag/internal/tagging"
)

// CoNLLWriter writes token TAB tag lines with a blank line between
// sentences, the column layout sequence-tagging toolkits ingest directly.
type CoNLLWriter struct {
	buf   *bufio.Writer
	first bool
}

func NewCoNLLWriter(w io.Writer) *CoNLLWriter {
	return &CoNLLWriter{buf: bufio.NewWriter(w), first: true}
}

func (w *CoNLLWriter) Write(inst tagging.Instance) error {
	if !w.first {
		if _, err := w.buf.WriteString("\n"); err != nil {
			return fmt.Errorf("write sentence separator: %w", err)
		}
	}
	w.first = false

	for i, tok := range inst.Tokens {
		if _, err := fmt.Fprintf(w.buf, "%s\t%s\n", tok.Text, inst.Tags[i]); err != nil {
			return fmt.Errorf("write token line: %w", err)
		}
	}
	return nil
}

func (w *CoNLLWriter) Flush() error {
	return w.buf.Flush()
}
