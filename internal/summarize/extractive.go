package summarize

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/clauses"
	"github.com/hyperjump/clausewise/internal/embedding"
	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/pkg/utils"
)

const (
	extractiveChars     = 20000
	extractiveSentences = 50
	minSentenceRunes    = 10
	similarityWeight    = 0.6
	legalWeight         = 0.4
	highRiskBoost       = 0.2
	mediumRiskBoost     = 0.1
	// DefaultSentences is used when a caller asks for zero sentences.
	DefaultSentences = 3
)

// Extractive selects the most representative sentences of a document.
type Extractive struct {
	lib        *patterns.Library
	embedder   embedding.Embedder
	classifier SentenceClassifier
	logger     *zap.Logger
}

// ExtractiveOption configures an Extractive summarizer.
type ExtractiveOption func(*Extractive)

// WithEmbedder enables the similarity term of the score.
func WithEmbedder(e embedding.Embedder) ExtractiveOption {
	return func(x *Extractive) { x.embedder = e }
}

// WithClassifier replaces the keyword heuristic for legal importance.
func WithClassifier(c SentenceClassifier) ExtractiveOption {
	return func(x *Extractive) { x.classifier = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ExtractiveOption {
	return func(x *Extractive) { x.logger = utils.OrNop(l) }
}

// NewExtractive returns an extractive summarizer over lib (Default when nil).
func NewExtractive(lib *patterns.Library, opts ...ExtractiveOption) *Extractive {
	if lib == nil {
		lib = patterns.Default()
	}
	x := &Extractive{lib: lib, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(x)
	}
	if x.classifier == nil {
		x.classifier = NewKeywordClassifier(lib)
	}
	return x
}

// Classifier returns the sentence classifier in use.
func (x *Extractive) Classifier() SentenceClassifier { return x.classifier }

type scored struct {
	index int
	score float64
}

// Select returns up to n sentences of text in document order. Each sentence
// is scored 0.6 x similarity to the document centroid + 0.4 x legal
// importance, plus a boost when it lies inside a high or medium risk clause.
// Without an embedder the similarity term is zero.
func (x *Extractive) Select(ctx context.Context, text string, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultSentences
	}
	text = utils.TruncateRunes(text, extractiveChars)
	sentences := substantive(SplitSentences(text), minSentenceRunes)
	if len(sentences) > extractiveSentences {
		sentences = sentences[:extractiveSentences]
	}
	if len(sentences) <= n {
		return sentences, nil
	}

	similarity, err := x.similarities(ctx, sentences)
	if err != nil {
		return nil, err
	}
	boosts := x.riskBoosts(text, sentences)

	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		ranked[i] = scored{
			index: i,
			score: similarityWeight*similarity[i] + legalWeight*x.legalScore(ctx, s) + boosts[i],
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	picked := make([]int, 0, n)
	for _, r := range ranked[:n] {
		picked = append(picked, r.index)
	}
	sort.Ints(picked)
	out := make([]string, len(picked))
	for i, idx := range picked {
		out[i] = sentences[idx]
	}
	return out, nil
}

// Summarize joins the selected sentences with spaces.
func (x *Extractive) Summarize(ctx context.Context, text string, n int) (string, error) {
	sentences, err := x.Select(ctx, text, n)
	if err != nil {
		return "", err
	}
	return strings.Join(sentences, " "), nil
}

func (x *Extractive) similarities(ctx context.Context, sentences []string) ([]float64, error) {
	out := make([]float64, len(sentences))
	if x.embedder == nil {
		return out, nil
	}
	vectors, err := x.embedder.EmbedBatch(ctx, sentences)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		x.logger.Warn("sentence embedding failed, ranking without similarity", zap.Error(err))
		return out, nil
	}
	centroid := utils.Centroid(vectors)
	for i, v := range vectors {
		out[i] = utils.Cosine(v, centroid)
	}
	return out, nil
}

func (x *Extractive) legalScore(ctx context.Context, sentence string) float64 {
	c, err := x.classifier.Classify(ctx, utils.TruncateRunes(sentence, 512))
	if err != nil {
		return 0.5
	}
	return c.Score
}

func (x *Extractive) riskBoosts(text string, sentences []string) []float64 {
	boosts := make([]float64, len(sentences))
	for _, c := range clauses.Analyze(x.lib, text) {
		var boost float64
		switch c.RiskLevel {
		case models.RiskHigh:
			boost = highRiskBoost
		case models.RiskMedium:
			boost = mediumRiskBoost
		default:
			continue
		}
		for i, s := range sentences {
			if boost > boosts[i] && strings.Contains(c.Text, s) {
				boosts[i] = boost
			}
		}
	}
	return boosts
}
