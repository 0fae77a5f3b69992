package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

type runClass int

const (
	classNone runClass = iota
	classHan
	classWord
)

// Lexical splits a sentence by rune class: runs of Han characters, runs of
// other letters and digits, and single-rune punctuation tokens. Whitespace
// separates tokens and is never emitted. Brackets such as 《 and 》 come out
// as their own tokens, so a bracketed citation like 《民法典》 tokenizes to
// 《, 民法典, 》.
type Lexical struct {
	splitHan bool
}

// NewLexical returns the default run-based lexical tokenizer.
func NewLexical() *Lexical {
	return &Lexical{}
}

// NewCharLexical behaves like NewLexical but emits every Han character as
// its own token, for matching at character granularity.
func NewCharLexical() *Lexical {
	return &Lexical{splitHan: true}
}

func (l *Lexical) Tokenize(text string) ([]Token, error) {
	tokens := []Token{}
	runStart := -1
	class := classNone

	flush := func(end int) {
		if runStart >= 0 {
			tokens = append(tokens, Token{Text: text[runStart:end], Start: runStart, End: end})
			runStart = -1
			class = classNone
		}
	}

	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case unicode.Is(unicode.Han, r):
			if l.splitHan {
				flush(i)
				end := i + utf8.RuneLen(r)
				tokens = append(tokens, Token{Text: text[i:end], Start: i, End: end})
			} else if class != classHan {
				flush(i)
				runStart, class = i, classHan
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if class != classWord {
				flush(i)
				runStart, class = i, classWord
			}
		default:
			flush(i)
			end := i + utf8.RuneLen(r)
			tokens = append(tokens, Token{Text: text[i:end], Start: i, End: end})
		}
	}
	flush(len(text))

	return tokens, nil
}
