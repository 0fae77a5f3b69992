package tagging

import (
	"strings"

	"github.com/example/go-reftag/internal/tokenizer"
)

// Base tags produced by LabelSpans.
const (
	TagOutside = "O"
	TagBegin   = "B"
	TagInside  = "I"
)

// LabelSpans returns one tag per token, marking every token span whose
// concatenated text equals an entry of refs with B at the span start and I
// for the interior.
//
// The scan is exhaustive over all (i, j) spans with no early termination
// and no longest-match preference: when spans overlap, whichever matching
// span is evaluated last wins, and iteration order is all end positions for
// a start index before the next start index. A start position can therefore
// still be overwritten to I by a later span that covers it. This mirrors
// the annotation pipeline the training data was produced with and must not
// be "fixed" without retraining.
func LabelSpans(tokens []tokenizer.Token, refs []string) []string {
	tags := make([]string, len(tokens))
	for i := range tags {
		tags[i] = TagOutside
	}

	refSet := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		refSet[r] = struct{}{}
	}

	for i := 0; i < len(tokens); i++ {
		var span strings.Builder
		for j := i + 1; j <= len(tokens); j++ {
			span.WriteString(tokens[j-1].Text)
			if _, ok := refSet[span.String()]; !ok {
				continue
			}
			tags[i] = TagBegin
			for k := i + 1; k < j; k++ {
				tags[k] = TagInside
			}
		}
	}

	return tags
}
