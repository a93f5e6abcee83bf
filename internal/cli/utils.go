// Package cli renders analysis results and summaries for the terminal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/risk"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

const rule = "─────────────────────────────────────────────────────────"

// ParseFormat returns the format named by s, or an error for anything but
// "text" and "json".
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case OutputText, "":
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", s)
}

// WriteAnalysis writes a processed document to w in the given format.
func WriteAnalysis(w io.Writer, doc *models.ProcessedDocument, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, doc)
	}
	writeAnalysisText(w, doc)
	return nil
}

// WriteSummary writes a summary to w in the given format.
func WriteSummary(w io.Writer, s *models.Summary, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, s)
	}
	kind := string(s.Kind)
	if s.Fallback {
		kind += " (extractive fallback)"
	}
	fmt.Fprintf(w, "Summary [%s]\n%s\n", kind, rule)
	if len(s.Focus) > 0 {
		areas := make([]string, 0, len(s.Focus))
		for area := range s.Focus {
			areas = append(areas, area)
		}
		sort.Strings(areas)
		for _, area := range areas {
			text := s.Focus[area]
			if text == "" {
				text = "(nothing found)"
			}
			fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(area), text)
		}
		return nil
	}
	fmt.Fprintln(w, s.Text)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeAnalysisText(w io.Writer, doc *models.ProcessedDocument) {
	d := doc.Document
	report := doc.Analysis.RiskReport
	fmt.Fprintf(w, "\n%s (%d words, %d characters)\n", d.Filename, d.WordCount, d.CharCount)
	fmt.Fprintln(w, rule)

	if tag, score := topJurisdiction(doc.Analysis.Jurisdiction); tag != "" {
		fmt.Fprintf(w, "Jurisdiction: %s (%.2f)\n", tag, score)
	}
	if len(doc.Parties) > 0 {
		fmt.Fprintf(w, "Parties: %s\n", strings.Join(doc.Parties, "; "))
	}
	fmt.Fprintf(w, "Overall risk: %s | Clauses: %d (high %d, medium %d, low %d)\n",
		risk.Overall(report), report.TotalClauses,
		report.RiskDistribution.High, report.RiskDistribution.Medium, report.RiskDistribution.Low)

	if len(doc.Analysis.Compliance) > 0 {
		regimes := make([]string, 0, len(doc.Analysis.Compliance))
		for regime := range doc.Analysis.Compliance {
			regimes = append(regimes, regime)
		}
		sort.Strings(regimes)
		fmt.Fprintf(w, "Compliance: %s\n", strings.Join(regimes, ", "))
	}

	if len(report.RiskDetails.High) > 0 {
		fmt.Fprintln(w, "\n--- High risk clauses ---")
		for _, e := range report.RiskDetails.High {
			fmt.Fprintf(w, "[%s] %s\n", e.Type, TruncateWords(e.Clause, 30))
		}
	}
	if len(doc.Dates) > 0 {
		fmt.Fprintln(w, "\n--- Dates and deadlines ---")
		for _, m := range doc.Dates {
			fmt.Fprintf(w, "%s: %s\n", m.Date, utils.Truncate(m.Context, 100))
		}
	}
	if len(doc.Citations) > 0 {
		fmt.Fprintln(w, "\n--- Citations ---")
		for _, c := range doc.Citations {
			fmt.Fprintf(w, "%s (%s)\n", c.Text, c.Kind)
		}
	}
	if len(report.Recommendations) > 0 {
		fmt.Fprintln(w, "\n--- Recommendations ---")
		for _, r := range report.Recommendations {
			fmt.Fprintf(w, "- %s\n", r)
		}
	}
	fmt.Fprintln(w)
}

func topJurisdiction(scores models.JurisdictionScores) (string, float64) {
	best, bestScore := "", 0.0
	for tag, score := range scores {
		if score > bestScore || (score == bestScore && score > 0 && tag < best) {
			best, bestScore = tag, score
		}
	}
	return best, bestScore
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
