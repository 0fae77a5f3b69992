package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/go-reftag/internal/tagging"
)

// JSONLWriter writes one JSON object per instance, newline-delimited.
type JSONLWriter struct {
	buf *bufio.Writer
	enc *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{buf: buf, enc: enc}
}

func (w *JSONLWriter) Write(inst tagging.Instance) error {
	if err := w.enc.Encode(inst); err != nil {
		return fmt.Errorf("encode instance: %w", err)
	}
	return nil
}

func (w *JSONLWriter) Flush() error {
	return w.buf.Flush()
}
