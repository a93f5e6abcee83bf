// Package extract provides text extraction from legal document formats.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for extensions the extractor does not handle.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtractionFailed wraps parser failures.
	ErrExtractionFailed = errors.New("text extraction failed")
)

type extractFunc func(content []byte) (string, error)

var extractors = map[string]extractFunc{
	".pdf":  extractPDF,
	".docx": extractDOCX,
	".odt":  extractOpenDocument,
	".rtf":  extractOpenDocument,
	".xlsx": extractExcel,
	".txt":  extractPlain,
	".md":   extractPlain,
}

// SupportedExtensions lists the extensions Extract accepts, with leading dots, sorted.
func SupportedExtensions() []string {
	return []string{".docx", ".md", ".odt", ".pdf", ".rtf", ".txt", ".xlsx"}
}

// Supported reports whether ext (with leading dot, any case) can be extracted.
func Supported(ext string) bool {
	_, ok := extractors[strings.ToLower(ext)]
	return ok
}

// Extractor extracts plain text from document files.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its text content.
// The format is chosen by extension; see SupportedExtensions.
func (e *Extractor) Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return e.ExtractBytes(content, ext)
}

// ExtractBytes extracts text from content based on the given extension.
// ext should include the leading dot (e.g. ".pdf").
func (e *Extractor) ExtractBytes(content []byte, ext string) (string, error) {
	ext = strings.ToLower(ext)
	fn, ok := extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	text, err := fn(content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, ext, err)
	}
	return text, nil
}
