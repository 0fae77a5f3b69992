package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/go-reftag/internal/tagging"
	"github.com/example/go-reftag/internal/testutil"
)

func TestConvertJSONL(t *testing.T) {
	input := testutil.WriteCorpus(t, testutil.SampleCorpusCSV)

	out, err := runCmd(t, "convert", "--input", input)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	var inst tagging.Instance
	if err := json.Unmarshal([]byte(lines[0]), &inst); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	testutil.AssertTags(t, inst.Tags, []string{"O", "B", "I", "I", "O", "O"})
	testutil.AssertBIO(t, inst.Tags)
}

func TestConvertCoNLLToFile(t *testing.T) {
	input := testutil.WriteCorpus(t, testutil.SampleCorpusCSV)
	output := filepath.Join(t.TempDir(), "out.conll")

	if _, err := runCmd(t, "convert", "--input", input, "--output", output, "--format", "conll"); err != nil {
		t.Fatalf("convert: %v", err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(content), "民法典\tI\n") {
		t.Fatalf("conll output missing tagged citation token:\n%s", content)
	}
	// Sentences are blank-line separated.
	if !strings.Contains(string(content), "\n\n") {
		t.Fatalf("conll output missing sentence separator:\n%s", content)
	}
}

func TestConvertBIOUL(t *testing.T) {
	input := testutil.WriteCorpus(t, testutil.SampleCorpusCSV)

	out, err := runCmd(t, "convert", "--input", input, "--reader-coding-scheme", "BIOUL")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	var inst tagging.Instance
	first := strings.SplitN(out, "\n", 2)[0]
	if err := json.Unmarshal([]byte(first), &inst); err != nil {
		t.Fatalf("unmarshal first line: %v", err)
	}
	testutil.AssertTags(t, inst.Tags, []string{"O", "B", "I", "L", "O", "O"})
}

func TestInspect(t *testing.T) {
	input := testutil.WriteCorpus(t, testutil.SampleCorpusCSV)

	out, err := runCmd(t, "inspect", "--input", input)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"instances:     3", "spans:         1", "coding scheme: IOB1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("inspect output missing %q:\n%s", want, out)
		}
	}
}
