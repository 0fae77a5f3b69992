package tagging

import (
	"reflect"
	"testing"
)

func TestNewInstance(t *testing.T) {
	tokens := toks("《", "民法典", "》")

	inst, err := NewInstance(tokens, []string{"B", "I", "I"}, "")
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	if inst.Namespace != DefaultLabelNamespace {
		t.Fatalf("namespace = %q, want %q", inst.Namespace, DefaultLabelNamespace)
	}
	if want := []string{"《", "民法典", "》"}; !reflect.DeepEqual(inst.Meta.Words, want) {
		t.Fatalf("words = %v, want %v", inst.Meta.Words, want)
	}
}

func TestNewInstanceLengthMismatch(t *testing.T) {
	_, err := NewInstance(toks("a", "b"), []string{"O"}, "labels")
	if err == nil {
		t.Fatal("expected error for mismatched tag length")
	}
}

func TestNewInstanceCustomNamespace(t *testing.T) {
	inst, err := NewInstance(toks("a"), []string{"O"}, "ref_labels")
	if err != nil {
		t.Fatalf("NewInstance: %v", err)
	}
	if inst.Namespace != "ref_labels" {
		t.Fatalf("namespace = %q, want ref_labels", inst.Namespace)
	}
}
