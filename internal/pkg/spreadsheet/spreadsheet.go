package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is a single data row keyed by the header row's column names.
type Row map[string]string

// Get returns the trimmed cell value for a header name, empty when the
// column is absent.
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// ReadRows parses the first sheet of a workbook into header-keyed rows.
// The first row is treated as the header; trailing empty cells are
// tolerated, fully empty rows are skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var out []Row
	for _, raw := range rows[1:] {
		empty := true
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			var value string
			if i < len(raw) {
				value = strings.TrimSpace(raw[i])
			}
			if value != "" {
				empty = false
			}
			row[header] = value
		}
		if !empty {
			out = append(out, row)
		}
	}

	return out, nil
}
