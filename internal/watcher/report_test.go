package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperjump/clausewise/internal/analysis"
	"github.com/hyperjump/clausewise/internal/fileid"
	"github.com/hyperjump/clausewise/internal/models"
)

type failingProcessor struct{}

func (failingProcessor) ProcessFile(context.Context, string) (*models.ProcessedDocument, error) {
	return nil, errors.New("unreadable")
}

func newProcessor() *analysis.Processor {
	return analysis.NewProcessor(analysis.NewAnalyzer(nil, nil, nil), nil, nil)
}

func TestReporter_WritesReport(t *testing.T) {
	src := filepath.Join(t.TempDir(), "nda.txt")
	text := "1. The Receiving Party shall keep all Confidential Information strictly confidential for 2 years.\n" +
		"2. The Receiving Party shall indemnify the Disclosing Party against any breach and is liable for damages.\n"
	if err := os.WriteFile(src, []byte(text), 0600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "reports")
	r := NewReporter(newProcessor(), out, nil)

	r.Process(context.Background(), src)

	want := filepath.Join(out, fileid.ReportName(src))
	if r.ReportPath(src) != want {
		t.Errorf("ReportPath = %s, want %s", r.ReportPath(src), want)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var doc models.ProcessedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if doc.Document.ID != fileid.DocID(src) {
		t.Errorf("document ID = %q, want %q", doc.Document.ID, fileid.DocID(src))
	}
	if doc.Document.Filename != "nda.txt" || len(doc.Analysis.Clauses) != 2 {
		t.Errorf("unexpected report: filename %q, %d clauses", doc.Document.Filename, len(doc.Analysis.Clauses))
	}
	entries, _ := os.ReadDir(out)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".report-") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}

	r.Remove(context.Background(), src)
	if _, err := os.Stat(want); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("report should be removed, stat err = %v", err)
	}
	r.Remove(context.Background(), src)
}

func TestReporter_NoOutputDir(t *testing.T) {
	r := NewReporter(newProcessor(), "", nil)
	if r.ReportPath("/docs/a.txt") != "" {
		t.Error("ReportPath should be empty without an output dir")
	}
	r.Process(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	r.Remove(context.Background(), "/docs/a.txt")
}

func TestReporter_ProcessFailureWritesNothing(t *testing.T) {
	out := t.TempDir()
	r := NewReporter(failingProcessor{}, out, nil)
	r.Process(context.Background(), "/docs/a.txt")
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("expected no reports, found %d", len(entries))
	}
}

func TestReporter_AsWatcherHandler(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lease.txt")
	if err := os.WriteFile(src, []byte("The Tenant shall pay rent of $1,500 monthly to the Landlord under this lease agreement."), 0600); err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()
	r := NewReporter(newProcessor(), out, nil)
	w := New([]string{dir}, []string{".txt"}, true, r)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	w.SyncExistingFiles()

	if _, err := os.Stat(r.ReportPath(src)); err != nil {
		t.Errorf("expected report after sync: %v", err)
	}
}
