package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/fileid"
	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/risk"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// FileProcessor analyzes one document file.
type FileProcessor interface {
	ProcessFile(ctx context.Context, path string) (*models.ProcessedDocument, error)
}

// Reporter is a Handler that analyzes changed files, logs a one-line
// summary, and optionally writes a JSON report per file.
type Reporter struct {
	processor FileProcessor
	outputDir string
	logger    *zap.Logger
}

// NewReporter returns a reporter. With an empty outputDir nothing is written.
func NewReporter(processor FileProcessor, outputDir string, logger *zap.Logger) *Reporter {
	return &Reporter{processor: processor, outputDir: outputDir, logger: utils.OrNop(logger)}
}

// ReportPath returns where the report for path is written, or "" when
// reports are disabled.
func (r *Reporter) ReportPath(path string) string {
	if r.outputDir == "" {
		return ""
	}
	return filepath.Join(r.outputDir, fileid.ReportName(path))
}

// Process implements Handler. Failures are logged and do not stop the watcher.
func (r *Reporter) Process(ctx context.Context, path string) {
	doc, err := r.processor.ProcessFile(ctx, path)
	if err != nil {
		r.logger.Warn("failed to analyze file", zap.String("path", path), zap.Error(err))
		return
	}
	doc.Document.ID = fileid.DocID(path)
	report := doc.Analysis.RiskReport
	r.logger.Info("analyzed file",
		zap.String("path", path),
		zap.Int("words", doc.Document.WordCount),
		zap.Int("clauses", report.TotalClauses),
		zap.Int("high_risk", report.RiskDistribution.High),
		zap.String("risk", string(risk.Overall(report))),
		zap.Int("parties", len(doc.Parties)),
		zap.Int("dates", len(doc.Dates)))

	if r.outputDir == "" {
		return
	}
	if err := r.write(path, doc); err != nil {
		r.logger.Error("failed to write report", zap.String("path", path), zap.Error(err))
	}
}

// Remove implements Handler by deleting the file's report.
func (r *Reporter) Remove(_ context.Context, path string) {
	target := r.ReportPath(path)
	if target == "" {
		return
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.logger.Warn("failed to remove report", zap.String("report", target), zap.Error(err))
		return
	}
	r.logger.Debug("report removed", zap.String("path", path))
}

// write replaces the report atomically via a temporary file.
func (r *Reporter) write(path string, doc *models.ProcessedDocument) error {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	target := r.ReportPath(path)
	tmp, err := os.CreateTemp(r.outputDir, ".report-*")
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to publish report: %w", err)
	}
	r.logger.Debug("report written", zap.String("report", target))
	return nil
}
