package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	docxDocumentXMLPath = "word/document.xml"
	contentTypesPath    = "[Content_Types].xml"
	docxMainContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

var (
	// <w:p> or <w:p w:rsidR="..."> through </w:p>; self-closing empty paragraphs are skipped.
	wpBlock = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	wtTag   = regexp.MustCompile(`<w:t(?:\s[^>]*)?>([^<]*)</w:t>`)
	wTab    = regexp.MustCompile(`<w:tab/>`)

	partNameRe  = regexp.MustCompile(`<Override[^>]+PartName="([^"]+)"[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"`)
	partNameRe2 = regexp.MustCompile(`<Override[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"[^>]+PartName="([^"]+)"`)

	xmlEntities = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
)

// extractDOCX returns one line per non-empty paragraph. Runs inside a
// paragraph are concatenated as-is because Word splits runs mid-word.
// Keeping paragraph breaks matters: numbered clauses start on their own line.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("not a zip: %w", err)
	}

	docPath := mainDocumentPath(zr)
	if docPath == "" {
		docPath = docxDocumentXMLPath
	}
	docXML, err := readZipFile(zr, docPath)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, para := range wpBlock.FindAllString(docXML, -1) {
		para = wTab.ReplaceAllString(para, "<w:t>\t</w:t>")
		var b strings.Builder
		for _, run := range wtTag.FindAllStringSubmatch(para, -1) {
			b.WriteString(run[1])
		}
		if line := strings.TrimSpace(xmlEntities.Replace(b.String())); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// mainDocumentPath reads [Content_Types].xml for the main document part.
// Returns "" when it cannot be determined.
func mainDocumentPath(zr *zip.Reader) string {
	ct, err := readZipFile(zr, contentTypesPath)
	if err != nil {
		return ""
	}
	if m := partNameRe.FindStringSubmatch(ct); len(m) > 1 {
		return strings.TrimPrefix(m[1], "/")
	}
	if m := partNameRe2.FindStringSubmatch(ct); len(m) > 1 {
		return strings.TrimPrefix(m[1], "/")
	}
	return ""
}

func readZipFile(zr *zip.Reader, name string) (string, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%s not found", name)
}
