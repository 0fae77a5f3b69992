package tagging

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default kind", func(t *testing.T) {
		r, err := New("", ReaderOptions{})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if r.Scheme() != SchemeIOB1 {
			t.Fatalf("scheme = %q, want %q", r.Scheme(), SchemeIOB1)
		}
	})

	t.Run("references kind", func(t *testing.T) {
		if _, err := New(KindReferences, ReaderOptions{Scheme: "BIOUL"}); err != nil {
			t.Fatalf("New: %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := New("conll2003", ReaderOptions{})
		if err == nil || !strings.Contains(err.Error(), "unknown reader kind") {
			t.Fatalf("expected unknown-kind error, got %v", err)
		}
	})

	t.Run("invalid scheme fails at construction", func(t *testing.T) {
		_, err := New(KindReferences, ReaderOptions{Scheme: "IOB2"})
		if err == nil || !strings.Contains(err.Error(), "unknown coding scheme") {
			t.Fatalf("expected scheme error, got %v", err)
		}
	})
}
