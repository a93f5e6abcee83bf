package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractBytes_plain(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractBytes([]byte("1. Parties\n2. Term"), ".txt")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if got != "1. Parties\n2. Term" {
		t.Errorf("got %q", got)
	}
}

func TestExtractBytes_plainBOMAndInvalidUTF8(t *testing.T) {
	e := NewExtractor()
	got, err := e.ExtractBytes([]byte("\xef\xbb\xbfhello\x80world"), ".md")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if got != "hello\uFFFDworld" {
		t.Errorf("got %q", got)
	}
}

func TestExtractBytes_unsupported(t *testing.T) {
	e := NewExtractor()
	for _, ext := range []string{".xyz", ".pptx", ""} {
		_, err := e.ExtractBytes([]byte("raw"), ext)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%q: got %v, want ErrUnsupportedFormat", ext, err)
		}
	}
	if _, err := e.Extract("/nonexistent/contract.exe"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Extract: got %v, want ErrUnsupportedFormat", err)
	}
}

func TestSupported(t *testing.T) {
	for _, ext := range SupportedExtensions() {
		if !Supported(ext) {
			t.Errorf("%s listed but not supported", ext)
		}
		if !Supported(strings.ToUpper(ext)) {
			t.Errorf("%s should be case-insensitive", ext)
		}
	}
	if len(SupportedExtensions()) != len(extractors) {
		t.Error("SupportedExtensions out of sync with extractors")
	}
}

func TestExtractBytes_excel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "Fee")
	f.SetCellValue("Sheet1", "B1", "Amount")
	f.SetCellValue("Sheet1", "A2", "Retainer")
	f.SetCellValue("Sheet1", "B2", "$5,000")
	if _, err := f.NewSheet("Exhibit B"); err != nil {
		t.Fatal(err)
	}
	f.SetCellValue("Exhibit B", "A1", "Milestones")
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := NewExtractor().ExtractBytes(buf.Bytes(), ".xlsx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	want := "Fee\tAmount\nRetainer\t$5,000\nExhibit B\nMilestones"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtract_excelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Payment schedule")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	got, err := NewExtractor().Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "Payment schedule" {
		t.Errorf("got %q", got)
	}
}

func TestExtract_plainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nda.txt")
	if err := os.WriteFile(path, []byte("Mutual NDA"), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := NewExtractor().Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "Mutual NDA" {
		t.Errorf("got %q", got)
	}
}

func TestExtract_nonexistent(t *testing.T) {
	_, err := NewExtractor().Extract("/nonexistent/path/file.txt")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("missing file is not an unsupported format")
	}
}

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func docxWith(body string, files map[string]string) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	if files == nil {
		files = map[string]string{}
	}
	if _, ok := files["word/document.xml"]; !ok && body != "" {
		files["word/document.xml"] = `<w:document ` + wordNS + `><w:body>` + body + `</w:body></w:document>`
	}
	for name, content := range files {
		fw, _ := w.Create(name)
		_, _ = fw.Write([]byte(content))
	}
	_ = w.Close()
	return buf.Bytes()
}

func TestExtractBytes_docxParagraphs(t *testing.T) {
	body := `<w:p w:rsidR="00A1"><w:pPr><w:numPr/></w:pPr><w:r><w:t>1. CONFIDEN</w:t></w:r><w:r><w:t xml:space="preserve">TIALITY: keep secrets</w:t></w:r></w:p>` +
		`<w:p/>` +
		`<w:p><w:r><w:t>2. Fees &amp; costs</w:t></w:r></w:p>`
	got, err := NewExtractor().ExtractBytes(docxWith(body, nil), ".docx")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	want := "1. CONFIDENTIALITY: keep secrets\n2. Fees & costs"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractBytes_docxMainPartFromContentTypes(t *testing.T) {
	doc := `<w:document ` + wordNS + `><w:body><w:p><w:r><w:t>From document2</w:t></w:r></w:p></w:body></w:document>`
	orders := map[string]string{
		"PartName first":    `<Override PartName="/word/document2.xml" ContentType="` + docxMainContentType + `"/>`,
		"ContentType first": `<Override ContentType="` + docxMainContentType + `" PartName="/word/document2.xml"/>`,
	}
	for name, override := range orders {
		t.Run(name, func(t *testing.T) {
			content := docxWith("", map[string]string{
				"[Content_Types].xml": `<?xml version="1.0"?><Types>` + override + `</Types>`,
				"word/document2.xml":  doc,
			})
			got, err := NewExtractor().ExtractBytes(content, ".docx")
			if err != nil {
				t.Fatalf("ExtractBytes: %v", err)
			}
			if got != "From document2" {
				t.Errorf("got %q", got)
			}
		})
	}
}

func TestExtractBytes_failures(t *testing.T) {
	e := NewExtractor()
	cases := map[string][]byte{
		".docx": []byte("not a zip"),
		".pdf":  []byte("not a pdf"),
		".xlsx": []byte("not a workbook"),
	}
	for ext, content := range cases {
		if _, err := e.ExtractBytes(content, ext); !errors.Is(err, ErrExtractionFailed) {
			t.Errorf("%s: got %v, want ErrExtractionFailed", ext, err)
		}
	}

	missing := docxWith("", map[string]string{"other.xml": "<x/>"})
	if _, err := e.ExtractBytes(missing, ".docx"); !errors.Is(err, ErrExtractionFailed) {
		t.Errorf("docx without document.xml: got %v", err)
	}
}

func TestExtractBytes_rtf(t *testing.T) {
	got, err := NewExtractor().ExtractBytes([]byte(`{\rtf1\ansi Hello legal world\par}`), ".rtf")
	if err != nil {
		t.Fatalf("ExtractBytes: %v", err)
	}
	if !strings.Contains(got, "Hello legal world") {
		t.Errorf("got %q", got)
	}
}

func TestExtractBytes_pdfTruncated(t *testing.T) {
	e := NewExtractor()
	for _, content := range [][]byte{
		nil,
		[]byte("%PDF-1.7\n"),
		[]byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nstartxref\n9\n%%EOF"),
	} {
		text, err := e.ExtractBytes(content, ".pdf")
		if !errors.Is(err, ErrExtractionFailed) {
			t.Errorf("%q: got %v, want ErrExtractionFailed", content, err)
		}
		if text != "" {
			t.Errorf("%q: got text %q on failure", content, text)
		}
	}
}
