package tokenizer

import (
	"fmt"

	gosp "github.com/vikesh-raj/go-sentencepiece-encoder/sentencepiece"
)

// SentencePiece implements Tokenizer using a pure-Go UNIGRAM SentencePiece model.
type SentencePiece struct {
	proc gosp.Sentencepiece
}

// NewSentencePiece loads a SentencePiece model from the given path.
func NewSentencePiece(modelPath string) (*SentencePiece, error) {
	if modelPath == "" {
		return nil, ErrEmptyVocabPath
	}

	proc, err := gosp.NewSentencepieceFromFile(modelPath, false)
	if err != nil {
		return nil, fmt.Errorf("load sentencepiece model %q: %w", modelPath, err)
	}

	return &SentencePiece{proc: proc}, nil
}

// Tokenize returns the SentencePiece pieces of text aligned to byte spans
// via alignPieces, with the ▁ word-boundary marker stripped.
func (t *SentencePiece) Tokenize(text string) ([]Token, error) {
	if text == "" {
		return []Token{}, nil
	}

	pieces := t.proc.Tokenize(text)
	raw := make([]string, len(pieces))
	for i, p := range pieces {
		raw[i] = p.Text
	}

	return alignPieces(text, raw, "▁"), nil
}
