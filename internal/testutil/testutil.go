// Package testutil provides shared fixtures for corpus-driven tests.
//
// The helpers write small annotation tables into temp directories so tests
// can exercise the full read path without checked-in fixture files.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleCorpusCSV is a minimal two-record annotation table: the first
// record cites 《民法典》, the second has no references cell.
const SampleCorpusCSV = `case_number,court_name,full_text,references_all
（2021）京01民终1号,北京市第一中级人民法院,本案依据《民法典》第一条判决。经审理查明事实。,《民法典》
（2021）京02民终2号,北京市第二中级人民法院,被告未到庭。,
`

// WriteCorpus writes content into a temp CSV file and returns its path.
// The file is removed with the test's temp dir.
func WriteCorpus(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "cases.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write corpus fixture: %v", err)
	}
	return path
}

// AssertTags fails the test unless got matches want element-wise.
func AssertTags(tb testing.TB, got, want []string) {
	tb.Helper()

	if len(got) != len(want) {
		tb.Fatalf("tag sequence = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			tb.Fatalf("tag[%d] = %q, want %q (full sequence %v, want %v)",
				i, got[i], want[i], got, want)
		}
	}
}

// AssertBIO fails the test if tags is not a well-formed bare B/I/O
// sequence: every tag drawn from the alphabet, with no typed suffixes.
func AssertBIO(tb testing.TB, tags []string) {
	tb.Helper()

	for i, tag := range tags {
		switch tag {
		case "B", "I", "O":
		default:
			if strings.Contains(tag, "-") {
				tb.Fatalf("tag[%d] = %q carries an unexpected type suffix", i, tag)
			}
			tb.Fatalf("tag[%d] = %q is outside the B/I/O alphabet", i, tag)
		}
	}
}
