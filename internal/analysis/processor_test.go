package analysis

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperjump/clausewise/internal/extract"
)

type failingExtractor struct{ err error }

func (f failingExtractor) Extract(string) (string, error)              { return "", f.err }
func (f failingExtractor) ExtractBytes([]byte, string) (string, error) { return "", f.err }

func TestProcessBytes(t *testing.T) {
	p := NewProcessor(NewAnalyzer(nil, nil, nil), nil, nil)
	raw := "EMPLOYMENT AGREEMENT\n\n\n" + scenario + "\nPage 1 of 1\n"
	doc, err := p.ProcessBytes(context.Background(), "contract.TXT", []byte(raw))
	if err != nil {
		t.Fatalf("ProcessBytes: %v", err)
	}
	if doc.Document.ID == "" || doc.Document.Filename != "contract.TXT" {
		t.Errorf("document: %+v", doc.Document)
	}
	if doc.Document.CleanText == raw {
		t.Error("text was not normalized")
	}
	if doc.Document.WordCount == 0 || doc.Document.CharCount != len([]rune(doc.Document.CleanText)) {
		t.Errorf("counts: %+v", doc.Document)
	}
	if len(doc.Analysis.Clauses) != 2 {
		t.Errorf("clauses: %d", len(doc.Analysis.Clauses))
	}
	if len(doc.Dates) != 1 {
		t.Errorf("dates: %+v", doc.Dates)
	}
	if len(doc.Sections) != 12 {
		t.Errorf("sections: %d", len(doc.Sections))
	}

	again, _ := p.ProcessBytes(context.Background(), "contract.txt", []byte(raw))
	if again.Document.ID == doc.Document.ID {
		t.Error("each document should get its own ID")
	}
}

func TestProcessBytes_Errors(t *testing.T) {
	p := NewProcessor(NewAnalyzer(nil, nil, nil), nil, nil)
	ctx := context.Background()

	if _, err := p.ProcessBytes(ctx, "deck.pptx", []byte("x")); !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Errorf("unsupported: got %v", err)
	}
	if _, err := p.ProcessBytes(ctx, "blank.txt", []byte(" \n\n ")); !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("blank: got %v", err)
	}
	if _, err := p.ProcessBytes(ctx, "pages.txt", []byte("Page 1 of 2\n3\n")); !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("only page furniture: got %v", err)
	}

	_, err := p.ProcessBytes(ctx, "broken.docx", []byte("not a zip"))
	if !errors.Is(err, ErrExtractionFailed) || !errors.Is(err, extract.ErrExtractionFailed) {
		t.Errorf("broken docx: got %v", err)
	}

	cause := errors.New("disk on fire")
	fp := NewProcessor(NewAnalyzer(nil, nil, nil), failingExtractor{err: cause}, nil)
	_, err = fp.ProcessFile(ctx, "/tmp/x.pdf")
	if !errors.Is(err, ErrExtractionFailed) || !errors.Is(err, cause) {
		t.Errorf("failing extractor: got %v", err)
	}
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nda.md")
	if err := os.WriteFile(path, []byte(scenario), 0600); err != nil {
		t.Fatal(err)
	}
	p := NewProcessor(NewAnalyzer(nil, nil, nil), extract.NewExtractor(), nil)
	doc, err := p.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if doc.Document.Filename != "nda.md" {
		t.Errorf("filename: %q", doc.Document.Filename)
	}
	if doc.Analysis.RiskReport.TotalClauses != 2 {
		t.Errorf("risk report: %+v", doc.Analysis.RiskReport)
	}
}
