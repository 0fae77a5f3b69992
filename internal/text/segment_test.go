package text

import (
	"reflect"
	"testing"
)

func TestRuleSegmenter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "single sentence without terminator",
			text: "本案受理费由被告承担",
			want: []string{"本案受理费由被告承担"},
		},
		{
			name: "two CJK sentences",
			text: "本院受理了本案。判决如下。",
			want: []string{"本院受理了本案。", "判决如下。"},
		},
		{
			name: "terminator run stays together",
			text: "怎么会这样！？证据确凿。",
			want: []string{"怎么会这样！？", "证据确凿。"},
		},
		{
			name: "closing quote attaches to sentence",
			text: "法院认为“证据不足。”驳回起诉。",
			want: []string{"法院认为“证据不足。”", "驳回起诉。"},
		},
		{
			name: "ascii terminators",
			text: "First sentence. Second one! Third?",
			want: []string{"First sentence.", "Second one!", "Third?"},
		},
		{
			name: "trailing text without terminator",
			text: "一审判决。二审维持原判",
			want: []string{"一审判决。", "二审维持原判"},
		},
		{
			name: "whitespace-only segments dropped",
			text: "。 。第一条。",
			want: []string{"。", "。", "第一条。"},
		},
		{
			name: "mid-sentence book brackets untouched",
			text: "本案依据《民法典》第一条判决。",
			want: []string{"本案依据《民法典》第一条判决。"},
		},
	}

	seg := NewRuleSegmenter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seg.Segment(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q; want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRuleSegmenterConcatenationCoversText(t *testing.T) {
	// Joining the segments must reproduce the input minus surrounding
	// whitespace, so no characters are lost between sentences.
	in := "本院认为，证据充分。依据《民法典》第一条！判决如下？驳回上诉"
	var joined string
	for _, s := range NewRuleSegmenter().Segment(in) {
		joined += s
	}
	if joined != in {
		t.Errorf("joined segments = %q; want %q", joined, in)
	}
}
