// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"regexp"
	"strings"

	"github.com/meshintel/litscope/pkg/types"
)

// Classifier scores papers against a vocabulary. Keyword patterns are
// compiled once at construction; classification itself has no state, so a
// Classifier is safe to reuse across runs.
type Classifier struct {
	vocab    Vocabulary
	cfg      types.ClassifierConfig
	patterns map[string][]*regexp.Regexp
}

// NewClassifier compiles whole-word matchers for every keyword in the
// vocabulary.
func NewClassifier(vocab Vocabulary, cfg types.ClassifierConfig) *Classifier {
	if cfg.MinScore == 0 {
		cfg.MinScore = 0.1
	}
	if cfg.ConnectionOverlap == 0 {
		cfg.ConnectionOverlap = 0.1
	}
	if cfg.RecentWindow == 0 {
		cfg.RecentWindow = 3
	}

	patterns := make(map[string][]*regexp.Regexp, len(vocab))
	for _, topic := range vocab {
		compiled := make([]*regexp.Regexp, 0, len(topic.Keywords))
		for _, kw := range topic.Keywords {
			compiled = append(compiled,
				regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(kw))+`\b`))
		}
		patterns[topic.ID] = compiled
	}

	return &Classifier{vocab: vocab, cfg: cfg, patterns: patterns}
}

// Classify scores one paper against every topic. The score is the count
// of whole-word keyword occurrences in title+abstract+tags, normalized by
// text length in hundreds of characters so long abstracts gain no
// advantage. Topics scoring zero are omitted.
func (c *Classifier) Classify(p types.PaperRecord) map[string]float64 {
	text := strings.ToLower(p.SearchText())
	if len(text) == 0 {
		return nil
	}

	scores := make(map[string]float64)
	norm := float64(len(text)) / 100

	for _, topic := range c.vocab {
		count := 0
		for _, pat := range c.patterns[topic.ID] {
			count += len(pat.FindAllStringIndex(text, -1))
		}
		if count > 0 {
			scores[topic.ID] = float64(count) / norm
		}
	}
	return scores
}

// Score returns ranked topic ids for an arbitrary text blob. Used to
// derive an author's primary topics from their combined paper text.
func (c *Classifier) Score(text string) map[string]float64 {
	return c.Classify(types.PaperRecord{Title: text})
}
