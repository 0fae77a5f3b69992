package text

import "strings"

// Segmenter splits normalized text into sentences.
// Implementations are explicitly constructed values, never package-level
// singletons, so tests can substitute lightweight stand-ins.
type Segmenter interface {
	Segment(text string) []string
}

// RuleSegmenter splits text on sentence-ending punctuation, covering both
// the CJK full-width terminators used in court judgments and their ASCII
// counterparts. Closing quotes and brackets that directly follow a
// terminator stay attached to their sentence.
type RuleSegmenter struct{}

func NewRuleSegmenter() *RuleSegmenter {
	return &RuleSegmenter{}
}

// Segment returns the sentences of text in order.
// Whitespace-only segments are dropped; text without any terminator is
// returned as a single sentence.
func (s *RuleSegmenter) Segment(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		// Absorb a run of terminators (！？, ……) plus any closing quotes
		// or brackets that belong to this sentence.
		j := i + 1
		for j < len(runes) && (isTerminator(runes[j]) || isCloser(runes[j])) {
			j++
		}
		if seg := strings.TrimSpace(string(runes[start:j])); seg != "" {
			sentences = append(sentences, seg)
		}
		start = j
		i = j - 1
	}

	// Trailing text after the last terminator (if any).
	if start < len(runes) {
		if seg := strings.TrimSpace(string(runes[start:])); seg != "" {
			sentences = append(sentences, seg)
		}
	}

	return sentences
}

func isTerminator(r rune) bool {
	switch r {
	case '。', '！', '？', '…', '.', '!', '?':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '”', '’', '」', '』', '》', '）', ')', ']', '"', '\'':
		return true
	}
	return false
}
