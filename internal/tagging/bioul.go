package tagging

import (
	"fmt"
	"strings"
)

// ToBIOUL recodes an IOB1 tag sequence into BIOUL: single-token spans
// become U, multi-token spans B I... L, and O passes through. Tags may
// carry a "-TYPE" suffix, which is preserved; a span is extended only while
// the type matches. A tag outside the recognized alphabet returns an error.
func ToBIOUL(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	var span []string

	flush := func() {
		if len(span) == 0 {
			return
		}
		if len(span) == 1 {
			out = append(out, replaceTag(span[0], "U"))
		} else {
			out = append(out, replaceTag(span[0], "B"))
			for _, t := range span[1 : len(span)-1] {
				out = append(out, replaceTag(t, "I"))
			}
			out = append(out, replaceTag(span[len(span)-1], "L"))
		}
		span = span[:0]
	}

	for _, tag := range tags {
		switch {
		case tag == TagOutside:
			flush()
			out = append(out, tag)
		case strings.HasPrefix(tag, TagInside):
			// In IOB1, I may open a span. A type change also opens a
			// new span.
			if len(span) > 0 && tagType(span[len(span)-1]) != tagType(tag) {
				flush()
			}
			span = append(span, tag)
		case strings.HasPrefix(tag, TagBegin):
			flush()
			span = append(span, tag)
		default:
			return nil, fmt.Errorf("invalid IOB1 tag %q", tag)
		}
	}
	flush()

	return out, nil
}

// FromBIOUL recodes a BIOUL sequence back into the base scheme emitted by
// LabelSpans, where every span opens with B: U and B map to B, I and L to
// I, O to O. For sequences free of overlapping-span artifacts this inverts
// ToBIOUL's span boundaries exactly.
func FromBIOUL(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		switch {
		case tag == TagOutside:
			out = append(out, tag)
		case strings.HasPrefix(tag, "U"), strings.HasPrefix(tag, TagBegin):
			out = append(out, replaceTag(tag, TagBegin))
		case strings.HasPrefix(tag, "L"), strings.HasPrefix(tag, TagInside):
			out = append(out, replaceTag(tag, TagInside))
		default:
			return nil, fmt.Errorf("invalid BIOUL tag %q", tag)
		}
	}
	return out, nil
}

// tagType returns the "-TYPE" suffix of a tag, or "" for a bare tag.
func tagType(tag string) string {
	_, typ, _ := strings.Cut(tag, "-")
	return typ
}

// replaceTag swaps the leading letter of tag for letter, keeping any
// "-TYPE" suffix.
func replaceTag(tag, letter string) string {
	if _, typ, ok := strings.Cut(tag, "-"); ok {
		return letter + "-" + typ
	}
	return letter
}
