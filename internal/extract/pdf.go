package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the text of every non-empty page, pages joined by a newline.
// The parser panics on some malformed streams; those surface as errors.
func extractPDF(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	total := r.NumPage()
	pages := make([]string, 0, total)
	for n := 1; n <= total; n++ {
		p := r.Page(n)
		if p.V.IsNull() {
			continue
		}
		s, perr := p.GetPlainText(nil)
		if perr != nil {
			return "", fmt.Errorf("PDF page %d of %d: %w", n, total, perr)
		}
		if s = strings.TrimRight(s, " \t\r\n"); s != "" {
			pages = append(pages, s)
		}
	}
	return strings.Join(pages, "\n"), nil
}
