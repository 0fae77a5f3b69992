// Package tokenizer provides sentence tokenization for the RefTag reader.
// The default implementation is a dictionary-less lexical tokenizer tuned
// for Chinese court judgments; WordPiece and SentencePiece subword
// tokenizers are available behind the same interface.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// Token is a lexical unit with its byte span in the source sentence.
// Subword tokenizers report -1 spans for pieces that cannot be located
// verbatim in the source (e.g. after model-side normalization).
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Tokenizer splits one sentence into tokens.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// Recognized tokenizer kinds for New.
const (
	KindLexical       = "lexical"
	KindChar          = "char"
	KindWordPiece     = "wordpiece"
	KindSentencePiece = "sentencepiece"
)

// ErrEmptyVocabPath is returned when a subword tokenizer is built without a
// model or vocabulary file.
var ErrEmptyVocabPath = errors.New("tokenizer vocab path must not be empty")

// Options carries the inputs a tokenizer constructor may need.
type Options struct {
	// VocabPath points at a WordPiece vocab.txt or a SentencePiece .model
	// file. Ignored by the lexical kinds.
	VocabPath string
}

// New builds a tokenizer from a kind tag. An empty kind selects the lexical
// tokenizer. Unknown kinds are a configuration error.
func New(kind string, opts Options) (Tokenizer, error) {
	switch kind {
	case "", KindLexical:
		return NewLexical(), nil
	case KindChar:
		return NewCharLexical(), nil
	case KindWordPiece:
		return NewWordPiece(opts.VocabPath)
	case KindSentencePiece:
		return NewSentencePiece(opts.VocabPath)
	default:
		return nil, fmt.Errorf("unknown tokenizer kind %q (want %s|%s|%s|%s)",
			kind, KindLexical, KindChar, KindWordPiece, KindSentencePiece)
	}
}

// alignPieces maps subword piece strings back onto byte spans of the source
// sentence with a forward scan. The continuation marker (## for WordPiece,
// ▁ for SentencePiece) is stripped before matching. Pieces that cannot be
// located verbatim get span -1,-1 and keep the piece text as-is.
func alignPieces(text string, pieces []string, marker string) []Token {
	tokens := make([]Token, 0, len(pieces))
	cursor := 0

	for _, p := range pieces {
		p = strings.TrimPrefix(p, marker)
		if p == "" {
			continue
		}

		start := -1
		if cursor <= len(text) {
			if idx := strings.Index(text[cursor:], p); idx >= 0 {
				start = cursor + idx
			}
		}
		if start < 0 {
			tokens = append(tokens, Token{Text: p, Start: -1, End: -1})
			continue
		}

		end := start + len(p)
		tokens = append(tokens, Token{Text: text[start:end], Start: start, End: end})
		cursor = end
	}

	return tokens
}
