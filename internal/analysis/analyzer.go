// Package analysis composes the extractors and classifiers into a
// comprehensive document analysis.
package analysis

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/clauses"
	"github.com/hyperjump/clausewise/internal/compliance"
	"github.com/hyperjump/clausewise/internal/entities"
	"github.com/hyperjump/clausewise/internal/jurisdiction"
	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/internal/risk"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// Analyzer runs the analysis pipeline over normalized text. It holds no
// per-request state and is safe for concurrent use.
type Analyzer struct {
	lib    *patterns.Library
	tagger entities.EntityTagger
	logger *zap.Logger
}

// NewAnalyzer returns an analyzer over lib. A nil lib uses patterns.Default;
// a nil tagger uses the regex tagger.
func NewAnalyzer(lib *patterns.Library, tagger entities.EntityTagger, logger *zap.Logger) *Analyzer {
	if lib == nil {
		lib = patterns.Default()
	}
	if tagger == nil {
		tagger = entities.NewRegexTagger(lib)
	}
	return &Analyzer{lib: lib, tagger: tagger, logger: utils.OrNop(logger)}
}

// Library returns the vocabulary the analyzer matches against.
func (a *Analyzer) Library() *patterns.Library {
	return a.lib
}

// Analyze returns jurisdiction scores, clauses, compliance findings, and the
// risk report for text. Clauses are segmented once and shared with the risk
// report. A part that panics is logged and left at its empty value.
func (a *Analyzer) Analyze(ctx context.Context, text string) models.AnalysisResult {
	var result models.AnalysisResult

	result.Jurisdiction = guard(a, "jurisdiction", func() models.JurisdictionScores {
		return jurisdiction.Detect(a.lib, text)
	}, a.emptyJurisdiction)

	result.Clauses = guard(a, "clauses", func() models.ClauseSet {
		return clauses.Analyze(a.lib, text)
	}, func() models.ClauseSet { return models.ClauseSet{} })

	result.Compliance = guard(a, "compliance", func() models.ComplianceFindings {
		return compliance.Check(a.lib, text)
	}, func() models.ComplianceFindings { return models.ComplianceFindings{} })

	result.RiskReport = guard(a, "risk_report", func() models.RiskReport {
		return risk.Report(result.Clauses)
	}, func() models.RiskReport { return risk.Report(nil) })

	a.logger.Debug("analysis complete",
		zap.Int("clauses", len(result.Clauses)),
		zap.Int("high_risk", result.RiskReport.RiskDistribution.High),
		zap.Int("compliance_regimes", len(result.Compliance)))
	return result
}

// ExtractEntities tags entities with the analyzer's tagger. Tagging never
// fails; an error from a custom tagger yields an empty result.
func (a *Analyzer) ExtractEntities(ctx context.Context, text string) models.EntityResult {
	return guard(a, "entities", func() models.EntityResult {
		res, err := a.tagger.Tag(ctx, text)
		if err != nil {
			a.logger.Warn("entity tagging failed", zap.Error(err))
			return models.NewEntityResult(nil)
		}
		return res
	}, func() models.EntityResult { return models.NewEntityResult(nil) })
}

// ExtractDates returns date and duration mentions in pattern-major order.
func (a *Analyzer) ExtractDates(text string) []models.DateMention {
	return entities.ExtractDates(a.lib, text)
}

// ExtractParties returns the distinct party names in text.
func (a *Analyzer) ExtractParties(text string) []string {
	return entities.ExtractParties(a.lib, text)
}

// ExtractCitations returns statute, regulation, and case references in text.
func (a *Analyzer) ExtractCitations(text string) []models.Citation {
	return entities.ExtractCitations(a.lib, text)
}

// IdentifySections groups the lines of text by legal section.
func (a *Analyzer) IdentifySections(text string) models.LegalSections {
	return clauses.IdentifySections(a.lib, text)
}

func (a *Analyzer) emptyJurisdiction() models.JurisdictionScores {
	scores := make(models.JurisdictionScores, len(a.lib.Jurisdictions))
	for _, j := range a.lib.Jurisdictions {
		scores[j.Tag] = 0
	}
	return scores
}

// guard runs fn and returns its result, or empty() if fn panics.
func guard[T any](a *Analyzer, part string, fn func() T, empty func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("analysis part failed",
				zap.String("part", part),
				zap.String("panic", fmt.Sprint(r)),
				zap.ByteString("stack", debug.Stack()))
			out = empty()
		}
	}()
	return fn()
}
