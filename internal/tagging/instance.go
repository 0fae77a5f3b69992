package tagging

import (
	"fmt"

	"github.com/example/go-reftag/internal/tokenizer"
)

// DefaultLabelNamespace groups tag vocabularies for downstream pipelines.
const DefaultLabelNamespace = "labels"

// Metadata carries pass-through fields consumed by training pipelines.
type Metadata struct {
	// Words holds the raw token texts in order.
	Words []string `json:"words"`
}

// Instance is one tagged sentence: an ordered token sequence with an
// equal-length tag sequence. Instances are immutable once built.
type Instance struct {
	Tokens    []tokenizer.Token `json:"tokens"`
	Tags      []string          `json:"tags"`
	Meta      Metadata          `json:"metadata"`
	Namespace string            `json:"namespace"`
}

// NewInstance bundles tokens and tags. The only validation is the label
// sequence consistency check: len(tags) must equal len(tokens).
func NewInstance(tokens []tokenizer.Token, tags []string, namespace string) (Instance, error) {
	if len(tags) != len(tokens) {
		return Instance{}, fmt.Errorf("tag sequence length %d does not match token sequence length %d",
			len(tags), len(tokens))
	}
	if namespace == "" {
		namespace = DefaultLabelNamespace
	}

	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}

	return Instance{
		Tokens:    tokens,
		Tags:      tags,
		Meta:      Metadata{Words: words},
		Namespace: namespace,
	}, nil
}
