package tagging

import "fmt"

// Reader kinds recognized by New.
const (
	// KindReferences is the legal-citation reader over case annotation
	// tables.
	KindReferences = "references"
)

// New builds a reader from a kind tag. The kind is an explicit dispatch,
// not a registry: adding a reader means adding a case here. An empty kind
// selects KindReferences; unknown kinds are a configuration error.
func New(kind string, opts ReaderOptions) (*Reader, error) {
	switch kind {
	case "", KindReferences:
		return NewReader(opts)
	default:
		return nil, fmt.Errorf("unknown reader kind %q (want %s)", kind, KindReferences)
	}
}
