package tagging

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const testCorpus = `case_number,court_name,full_text,references_all
（2021）京01民终1号,北京市第一中级人民法院,本案依据《民法典》第一条判决。经审理查明事实。,《民法典》
（2021）京02民终2号,北京市第二中级人民法院,被告未到庭。,
`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func collect(t *testing.T, r *Reader, source string) []Instance {
	t.Helper()
	var out []Instance
	for inst, err := range r.Read(context.Background(), source) {
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		out = append(out, inst)
	}
	return out
}

func TestReaderRead(t *testing.T) {
	r, err := NewReader(ReaderOptions{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	instances := collect(t, r, writeCorpus(t, testCorpus))
	if len(instances) != 3 {
		t.Fatalf("got %d instances, want 3", len(instances))
	}

	// First sentence of the first record carries the citation span.
	if want := []string{"O", "B", "I", "I", "O", "O"}; !reflect.DeepEqual(instances[0].Tags, want) {
		t.Fatalf("tags = %v, want %v", instances[0].Tags, want)
	}
	if want := []string{"本案依据", "《", "民法典", "》", "第一条判决", "。"}; !reflect.DeepEqual(instances[0].Meta.Words, want) {
		t.Fatalf("words = %v, want %v", instances[0].Meta.Words, want)
	}

	// Remaining sentences have no matching span.
	for _, inst := range instances[1:] {
		for i, tag := range inst.Tags {
			if tag != TagOutside {
				t.Fatalf("instance %v tag[%d] = %q, want O", inst.Meta.Words, i, tag)
			}
		}
	}

	// Every instance keeps tags aligned with tokens.
	for _, inst := range instances {
		if len(inst.Tags) != len(inst.Tokens) {
			t.Fatalf("instance %v: %d tags for %d tokens", inst.Meta.Words, len(inst.Tags), len(inst.Tokens))
		}
	}
}

func TestReaderReadBIOUL(t *testing.T) {
	r, err := NewReader(ReaderOptions{Scheme: "BIOUL"})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	instances := collect(t, r, writeCorpus(t, testCorpus))
	if len(instances) == 0 {
		t.Fatal("no instances")
	}
	if want := []string{"O", "B", "I", "L", "O", "O"}; !reflect.DeepEqual(instances[0].Tags, want) {
		t.Fatalf("tags = %v, want %v", instances[0].Tags, want)
	}
}

func TestReaderIndexersGrow(t *testing.T) {
	ix := NewSingleIDIndexer("tokens")
	r, err := NewReader(ReaderOptions{Indexers: []Indexer{ix}})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	collect(t, r, writeCorpus(t, testCorpus))
	if ix.Size() == 0 {
		t.Fatal("indexer vocabulary did not grow")
	}
}

func TestReaderMissingColumn(t *testing.T) {
	r, err := NewReader(ReaderOptions{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	path := writeCorpus(t, "case_number,full_text\nx,正文。\n")
	var readErr error
	for _, err := range r.Read(context.Background(), path) {
		if err != nil {
			readErr = err
			break
		}
	}
	if readErr == nil {
		t.Fatal("expected missing-column error")
	}
}

func TestReaderContextCancelled(t *testing.T) {
	r, err := NewReader(ReaderOptions{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var readErr error
	for _, err := range r.Read(ctx, writeCorpus(t, testCorpus)) {
		if err != nil {
			readErr = err
			break
		}
	}
	if readErr == nil {
		t.Fatal("expected context error")
	}
}

func TestReaderTag(t *testing.T) {
	r, err := NewReader(ReaderOptions{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	instances, err := r.Tag(context.Background(), "本案依据《民法典》第一条判决。经审理查明事实。", []string{"《民法典》"}, "")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(instances) != 2 {
		t.Fatalf("got %d instances, want 2", len(instances))
	}
	if want := []string{"O", "B", "I", "I", "O", "O"}; !reflect.DeepEqual(instances[0].Tags, want) {
		t.Fatalf("tags = %v, want %v", instances[0].Tags, want)
	}
}

func TestReaderTagSchemeOverride(t *testing.T) {
	r, err := NewReader(ReaderOptions{})
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}

	instances, err := r.Tag(context.Background(), "本案依据《民法典》第一条判决。", []string{"《民法典》"}, "BIOUL")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if want := []string{"O", "B", "I", "L", "O", "O"}; !reflect.DeepEqual(instances[0].Tags, want) {
		t.Fatalf("tags = %v, want %v", instances[0].Tags, want)
	}

	if _, err := r.Tag(context.Background(), "正文。", nil, "IOB2"); err == nil {
		t.Fatal("expected error for unknown scheme override")
	}
}
