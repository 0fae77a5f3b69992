package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/go-reftag/internal/testutil"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := runCmd(t, "--help")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, sub := range []string{"convert", "inspect", "serve"} {
		if !strings.Contains(out, sub) {
			t.Fatalf("help output missing %q:\n%s", sub, out)
		}
	}
}

func TestConvertRequiresInput(t *testing.T) {
	if _, err := runCmd(t, "convert"); err == nil {
		t.Fatal("expected error when --input is missing")
	}
}

func TestConvertRejectsBadScheme(t *testing.T) {
	path := testutil.WriteCorpus(t, testutil.SampleCorpusCSV)
	_, err := runCmd(t, "convert", "--input", path, "--reader-coding-scheme", "IOB2")
	if err == nil || !strings.Contains(err.Error(), "unknown coding scheme") {
		t.Fatalf("expected coding-scheme error, got %v", err)
	}
}

func TestConvertRejectsBadTokenizer(t *testing.T) {
	path := testutil.WriteCorpus(t, testutil.SampleCorpusCSV)
	_, err := runCmd(t, "convert", "--input", path, "--reader-tokenizer", "jieba")
	if err == nil || !strings.Contains(err.Error(), "unknown tokenizer kind") {
		t.Fatalf("expected tokenizer error, got %v", err)
	}
}
