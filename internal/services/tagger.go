package services

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// TaggedText is the part-of-speech view of one input text: the sentences it
// splits into, its noun and proper-noun tokens, and its noun phrases.
type TaggedText struct {
	Sentences   []string
	Nouns       []string
	NounPhrases []string
}

// Tagger produces a TaggedText from raw text. The production implementation
// wraps an NLP model loaded once at startup; tests inject a fake.
type Tagger interface {
	Tag(text string) (*TaggedText, error)
}

type proseTagger struct{}

// NewProseTagger returns a Tagger backed by the prose NLP library. The model
// data ships with the library, so construction cannot fail, but tagging is
// CPU-bound and should be concurrency-limited by the caller.
func NewProseTagger() Tagger {
	return &proseTagger{}
}

func (t *proseTagger) Tag(text string) (*TaggedText, error) {
	if strings.TrimSpace(text) == "" {
		return &TaggedText{}, nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	tagged := &TaggedText{}
	for _, sent := range doc.Sentences() {
		tagged.Sentences = append(tagged.Sentences, sent.Text)
	}

	// Group runs of adjective/noun tokens into noun phrases while collecting
	// the individual noun tokens.
	var phrase []string
	flush := func() {
		if len(phrase) > 1 {
			tagged.NounPhrases = append(tagged.NounPhrases, strings.Join(phrase, " "))
		}
		phrase = phrase[:0]
	}

	for _, tok := range doc.Tokens() {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			tagged.Nouns = append(tagged.Nouns, tok.Text)
			phrase = append(phrase, tok.Text)
		case tok.Tag == "JJ":
			phrase = append(phrase, tok.Text)
		default:
			flush()
		}
	}
	flush()

	return tagged, nil
}
