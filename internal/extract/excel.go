package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// extractExcel renders workbooks such as fee schedules and exhibits. Each
// sheet after the first is introduced by its name on its own line; cells are
// tab-separated and empty rows are skipped.
func extractExcel(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var buf strings.Builder
	for i, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("rows of sheet %q: %w", sheet, err)
		}
		if i > 0 && len(rows) > 0 {
			buf.WriteString(sheet)
			buf.WriteByte('\n')
		}
		for _, row := range rows {
			line := strings.TrimRight(strings.Join(row, "\t"), "\t")
			if strings.TrimSpace(line) == "" {
				continue
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
