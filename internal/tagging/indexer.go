package tagging

import "github.com/example/go-reftag/internal/tokenizer"

// DefaultTokenNamespace is the vocabulary namespace of the default indexer.
const DefaultTokenNamespace = "tokens"

// Indexer maps token texts to integer ids within a vocabulary namespace.
type Indexer interface {
	Namespace() string
	Index(tokens []tokenizer.Token) []int
}

// SingleIDIndexer assigns one id per distinct token text, growing its
// vocabulary on demand in first-seen order. It is the identity-style
// default indexer; callers needing subword or feature indexing supply
// their own Indexer.
type SingleIDIndexer struct {
	namespace string
	ids       map[string]int
	order     []string
}

// NewSingleIDIndexer returns an empty indexer for the given namespace.
// An empty namespace selects DefaultTokenNamespace.
func NewSingleIDIndexer(namespace string) *SingleIDIndexer {
	if namespace == "" {
		namespace = DefaultTokenNamespace
	}
	return &SingleIDIndexer{
		namespace: namespace,
		ids:       make(map[string]int),
	}
}

func (x *SingleIDIndexer) Namespace() string {
	return x.namespace
}

// Index returns one id per token, allocating ids for unseen texts.
func (x *SingleIDIndexer) Index(tokens []tokenizer.Token) []int {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		id, ok := x.ids[tok.Text]
		if !ok {
			id = len(x.order)
			x.ids[tok.Text] = id
			x.order = append(x.order, tok.Text)
		}
		out[i] = id
	}
	return out
}

// Size reports the number of distinct token texts seen so far.
func (x *SingleIDIndexer) Size() int {
	return len(x.order)
}

// Vocabulary returns the seen token texts in id order.
func (x *SingleIDIndexer) Vocabulary() []string {
	return append([]string(nil), x.order...)
}
