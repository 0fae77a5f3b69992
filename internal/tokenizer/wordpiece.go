package tokenizer

import (
	"fmt"

	sugarme "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/model/wordpiece"
	"github.com/sugarme/tokenizer/normalizer"
	"github.com/sugarme/tokenizer/pretokenizer"
)

// WordPiece implements Tokenizer using a BERT-style WordPiece vocabulary.
type WordPiece struct {
	tk *sugarme.Tokenizer
}

// NewWordPiece loads a WordPiece vocab.txt from the given path.
func NewWordPiece(vocabPath string) (*WordPiece, error) {
	if vocabPath == "" {
		return nil, ErrEmptyVocabPath
	}

	model, err := wordpiece.NewWordPieceFromFile(vocabPath, "[UNK]")
	if err != nil {
		return nil, fmt.Errorf("load wordpiece vocab %q: %w", vocabPath, err)
	}

	tk := sugarme.NewTokenizer(model)
	tk.WithNormalizer(normalizer.NewBertNormalizer(true, false, true, false))
	tk.WithPreTokenizer(pretokenizer.NewBertPreTokenizer())

	return &WordPiece{tk: tk}, nil
}

// Tokenize returns the WordPiece pieces of text aligned to byte spans via
// alignPieces, with the ## continuation marker stripped.
func (w *WordPiece) Tokenize(text string) ([]Token, error) {
	if text == "" {
		return []Token{}, nil
	}

	en, err := w.tk.EncodeSingle(text)
	if err != nil {
		return nil, fmt.Errorf("wordpiece encode: %w", err)
	}

	return alignPieces(text, en.GetTokens(), "##"), nil
}
