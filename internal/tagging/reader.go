package tagging

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/example/go-reftag/internal/corpus"
	"github.com/example/go-reftag/internal/fetch"
	"github.com/example/go-reftag/internal/text"
	"github.com/example/go-reftag/internal/tokenizer"
)

// ReaderOptions configure a Reader. Zero values select the defaults noted
// on each field.
type ReaderOptions struct {
	// Scheme is the tag encoding of emitted instances ("" selects IOB1).
	Scheme string
	// LabelNamespace is the vocabulary namespace tags are filed under
	// ("" selects DefaultLabelNamespace).
	LabelNamespace string
	// TextColumn and ReferencesColumn name the driving corpus columns
	// ("" selects full_text / references_all).
	TextColumn       string
	ReferencesColumn string

	// Segmenter splits record text into sentences (nil selects the rule
	// segmenter).
	Segmenter text.Segmenter
	// Tokenizer splits sentences into tokens (nil selects the lexical
	// tokenizer).
	Tokenizer tokenizer.Tokenizer
	// Indexers build token-id views of emitted instances (nil selects a
	// single SingleIDIndexer on the "tokens" namespace).
	Indexers []Indexer

	// CacheDir holds downloaded remote corpora ("" selects the user cache
	// dir).
	CacheDir string
	Logger   *slog.Logger
}

// Reader streams tagged sentence instances out of an annotation corpus.
// Construct it with NewReader so the coding scheme is validated before any
// data is touched.
type Reader struct {
	scheme    Scheme
	namespace string
	textCol   string
	refsCol   string
	segmenter text.Segmenter
	tokenizer tokenizer.Tokenizer
	indexers  []Indexer
	cacheDir  string
	log       *slog.Logger
}

// NewReader builds a Reader. An unrecognized coding scheme is a
// configuration error raised here, not during reading.
func NewReader(opts ReaderOptions) (*Reader, error) {
	scheme, err := ParseScheme(opts.Scheme)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		scheme:    scheme,
		namespace: opts.LabelNamespace,
		textCol:   opts.TextColumn,
		refsCol:   opts.ReferencesColumn,
		segmenter: opts.Segmenter,
		tokenizer: opts.Tokenizer,
		indexers:  opts.Indexers,
		cacheDir:  opts.CacheDir,
		log:       opts.Logger,
	}
	if r.namespace == "" {
		r.namespace = DefaultLabelNamespace
	}
	if r.segmenter == nil {
		r.segmenter = text.NewRuleSegmenter()
	}
	if r.tokenizer == nil {
		r.tokenizer = tokenizer.NewLexical()
	}
	if r.indexers == nil {
		r.indexers = []Indexer{NewSingleIDIndexer(DefaultTokenNamespace)}
	}
	if r.log == nil {
		r.log = slog.Default()
	}

	return r, nil
}

// Scheme reports the tag encoding of emitted instances.
func (r *Reader) Scheme() Scheme {
	return r.scheme
}

// Indexers exposes the reader's token indexers, whose vocabularies grow as
// instances are read.
func (r *Reader) Indexers() []Indexer {
	return r.indexers
}

// Read streams one instance per sentence of the corpus at source, which may
// be a local path or an http(s) URL (downloaded through the fetch cache).
// Iteration stops at the first error or when ctx is cancelled; the error is
// yielded as the final pair.
func (r *Reader) Read(ctx context.Context, source string) iter.Seq2[Instance, error] {
	return func(yield func(Instance, error) bool) {
		path, err := fetch.CachedPath(ctx, source, r.cacheDir)
		if err != nil {
			yield(Instance{}, err)
			return
		}

		r.log.Info("reading instances", slog.String("path", path))

		tbl, err := corpus.Load(path)
		if err != nil {
			yield(Instance{}, err)
			return
		}
		records, err := tbl.Records(r.textCol, r.refsCol)
		if err != nil {
			yield(Instance{}, err)
			return
		}

		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				yield(Instance{}, err)
				return
			}

			refs := ParseReferences(rec.ReferencesAll)

			body, err := text.Normalize(rec.FullText)
			if errors.Is(err, text.ErrEmptyText) {
				continue
			}
			if err != nil {
				yield(Instance{}, fmt.Errorf("normalize record text: %w", err))
				return
			}

			for _, sentence := range r.segmenter.Segment(body) {
				inst, err := r.TextToInstance(sentence, refs)
				if err != nil {
					yield(Instance{}, err)
					return
				}
				for _, ix := range r.indexers {
					ix.Index(inst.Tokens)
				}
				if !yield(inst, nil) {
					return
				}
			}
		}
	}
}

// TextToInstance tags one sentence against the given reference strings and
// wraps the result in an Instance, recoding to BIOUL when the reader is
// configured for it.
func (r *Reader) TextToInstance(sentence string, refs []string) (Instance, error) {
	return r.textToInstance(sentence, refs, r.scheme)
}

func (r *Reader) textToInstance(sentence string, refs []string, scheme Scheme) (Instance, error) {
	tokens, err := r.tokenizer.Tokenize(sentence)
	if err != nil {
		return Instance{}, fmt.Errorf("tokenize sentence: %w", err)
	}

	tags := LabelSpans(tokens, refs)
	if scheme == SchemeBIOUL {
		tags, err = ToBIOUL(tags)
		if err != nil {
			return Instance{}, fmt.Errorf("recode tags: %w", err)
		}
	}

	return NewInstance(tokens, tags, r.namespace)
}

// Tag labels a single free-standing text against reference strings, one
// instance per sentence. A non-empty scheme overrides the reader's
// configured coding scheme for this call. It backs the HTTP tagging
// endpoint and never touches the corpus loader.
func (r *Reader) Tag(ctx context.Context, body string, refs []string, scheme string) ([]Instance, error) {
	coded := r.scheme
	if scheme != "" {
		parsed, err := ParseScheme(scheme)
		if err != nil {
			return nil, err
		}
		coded = parsed
	}

	normalized, err := text.Normalize(body)
	if err != nil {
		return nil, err
	}

	var out []Instance
	for _, sentence := range r.segmenter.Segment(normalized) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		inst, err := r.textToInstance(sentence, refs, coded)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}
