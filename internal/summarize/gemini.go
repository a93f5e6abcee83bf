package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/hyperjump/clausewise/pkg/utils"
)

// GeminiSummarizer generates summaries with the Gemini API.
type GeminiSummarizer struct {
	client *genai.Client
	model  *genai.GenerativeModel
	legal  bool
	logger *zap.Logger
}

// GeminiOption configures a GeminiSummarizer.
type GeminiOption func(*GeminiSummarizer)

// WithLegalPrompts asks the model to preserve obligations, parties, dates,
// and risk language.
func WithLegalPrompts() GeminiOption {
	return func(g *GeminiSummarizer) { g.legal = true }
}

// WithGeminiLogger sets the logger.
func WithGeminiLogger(l *zap.Logger) GeminiOption {
	return func(g *GeminiSummarizer) { g.logger = utils.OrNop(l) }
}

// NewGeminiSummarizer connects to Gemini with apiKey. An empty key yields
// ErrUnavailable so callers can run extractive-only.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string, maxOutputTokens int, opts ...GeminiOption) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: no Gemini API key", ErrUnavailable)
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrUnavailable, err)
	}
	m := client.GenerativeModel(model)
	if maxOutputTokens > 0 {
		m.SetMaxOutputTokens(int32(maxOutputTokens))
	}
	m.SetTemperature(0.2)

	g := &GeminiSummarizer{client: client, model: m, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Summarize implements Summarizer.
func (g *GeminiSummarizer) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	return g.generate(ctx, buildPrompt(text, maxLength, minLength, g.legal))
}

// SummarizeFocus implements FocusSummarizer.
func (g *GeminiSummarizer) SummarizeFocus(ctx context.Context, area, text string, maxLength, minLength int) (string, error) {
	return g.generate(ctx, buildFocusPrompt(area, text, maxLength, minLength))
}

// Close releases the client.
func (g *GeminiSummarizer) Close() error {
	return g.client.Close()
}

func (g *GeminiSummarizer) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Warn("Gemini request failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: empty Gemini response", ErrUnavailable)
	}
	return text, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

func buildPrompt(text string, maxLength, minLength int, legal bool) string {
	var b strings.Builder
	if legal {
		b.WriteString("You are summarizing a legal document for a reviewing attorney.\n")
		b.WriteString("Keep the parties, their obligations, deadlines and dates, payment terms, and any liability, indemnity, or termination provisions.\n")
	} else {
		b.WriteString("Summarize the following document.\n")
	}
	fmt.Fprintf(&b, "Write between %d and %d words of plain text with no markdown.\n\n", minLength, maxLength)
	b.WriteString("DOCUMENT:\n")
	b.WriteString(text)
	return b.String()
}

func buildFocusPrompt(area, text string, maxLength, minLength int) string {
	return fmt.Sprintf("Summarize the %s mentioned in this legal document in %d to %d words of plain text with no markdown.\n\nDOCUMENT:\n%s",
		area, minLength, maxLength, text)
}
