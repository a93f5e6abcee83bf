package summarize

import (
	"context"
	"strings"

	"github.com/hyperjump/clausewise/internal/clauses"
	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/pkg/utils"
)

const (
	highImportance   = 0.7
	mediumImportance = 0.5
	insightChars     = 15000
	insightSentences = 100
)

// Classification is a sentence label with a confidence or importance score in [0, 1].
type Classification struct {
	Label string
	Score float64
}

// SentenceClassifier rates how legally important a sentence is.
type SentenceClassifier interface {
	Classify(ctx context.Context, sentence string) (Classification, error)
}

// LegalScore is the fraction of legal keywords found in sentence, relative
// to the smaller of the keyword count and the sentence's word count. A
// sentence with no words scores 0.5.
func LegalScore(keywords []string, sentence string) float64 {
	possible := len(strings.Fields(sentence))
	if len(keywords) < possible {
		possible = len(keywords)
	}
	if possible == 0 {
		return 0.5
	}
	lower := strings.ToLower(sentence)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	score := float64(matches) / float64(possible)
	if score > 1 {
		return 1
	}
	return score
}

// KeywordClassifier labels a sentence with its clause type and scores it
// with LegalScore over the library's legal-importance keywords.
type KeywordClassifier struct {
	lib *patterns.Library
}

// NewKeywordClassifier returns a classifier over lib.
func NewKeywordClassifier(lib *patterns.Library) *KeywordClassifier {
	return &KeywordClassifier{lib: lib}
}

// Classify implements SentenceClassifier.
func (k *KeywordClassifier) Classify(_ context.Context, sentence string) (Classification, error) {
	return Classification{
		Label: clauses.ClassifyType(k.lib, sentence),
		Score: LegalScore(k.lib.LegalImportance, sentence),
	}, nil
}

// Insights buckets the first sentences of text by importance: above 0.7 is
// high, above 0.5 medium, the rest low. Sentences are also grouped by
// non-general label. Sentences the classifier rejects are skipped.
func Insights(ctx context.Context, classifier SentenceClassifier, text string) models.LegalInsights {
	out := models.LegalInsights{
		HighImportance:   []string{},
		MediumImportance: []string{},
		LowImportance:    []string{},
		ClauseTypes:      map[string][]string{},
	}
	sentences := SplitSentences(utils.TruncateRunes(text, insightChars))
	if len(sentences) > insightSentences {
		sentences = sentences[:insightSentences]
	}
	for _, s := range sentences {
		if utils.RuneLen(s) < 10 {
			continue
		}
		c, err := classifier.Classify(ctx, s)
		if err != nil {
			continue
		}
		switch {
		case c.Score > highImportance:
			out.HighImportance = append(out.HighImportance, s)
		case c.Score > mediumImportance:
			out.MediumImportance = append(out.MediumImportance, s)
		default:
			out.LowImportance = append(out.LowImportance, s)
		}
		if c.Label != "" && c.Label != models.ClauseTypeGeneral {
			out.ClauseTypes[c.Label] = append(out.ClauseTypes[c.Label], s)
		}
	}
	return out
}
