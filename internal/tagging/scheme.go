package tagging

import "fmt"

// Scheme selects the tag encoding an instance carries.
type Scheme string

const (
	// SchemeIOB1 is the base encoding emitted by the span labeler.
	SchemeIOB1 Scheme = "IOB1"
	// SchemeBIOUL additionally distinguishes single-token (U) and
	// span-final (L) positions.
	SchemeBIOUL Scheme = "BIOUL"
)

// ParseScheme validates a coding-scheme string. An empty value selects
// IOB1. Anything else outside the two recognized schemes is a
// configuration error, raised before any data is read.
func ParseScheme(raw string) (Scheme, error) {
	switch raw {
	case "", string(SchemeIOB1):
		return SchemeIOB1, nil
	case string(SchemeBIOUL):
		return SchemeBIOUL, nil
	default:
		return "", fmt.Errorf("unknown coding scheme %q (want %s|%s)", raw, SchemeIOB1, SchemeBIOUL)
	}
}
