// Package export serializes tagged instances into the interchange formats
// training pipelines consume: JSON Lines and CoNLL-style columns.
package export

import (
	"fmt"
	"io"

	"github.com/example/go-reftag/internal/tagging"
)

// Recognized output formats for NewWriter.
const (
	FormatJSONL = "jsonl"
	FormatCoNLL = "conll"
)

// InstanceWriter streams instances to an output. Flush must be called once
// after the last Write.
type InstanceWriter interface {
	Write(inst tagging.Instance) error
	Flush() error
}

// NewWriter builds an InstanceWriter for the named format, writing to w.
// An empty format selects JSONL; unknown formats are a configuration error.
func NewWriter(format string, w io.Writer) (InstanceWriter, error) {
	switch format {
	case "", FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatCoNLL:
		return NewCoNLLWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s|%s)", format, FormatJSONL, FormatCoNLL)
	}
}
