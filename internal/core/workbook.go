package core

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// zipMagic prefixes every .xlsx file (it is a zip container).
var zipMagic = []byte("PK\x03\x04")

// isWorkbook reports whether the source is an Excel workbook rather than text.
func isWorkbook(name string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return true
	}
	return bytes.HasPrefix(data, zipMagic)
}

// TableFromWorkbook builds a table from the first sheet that has a non-empty
// row. The first non-empty row is the header.
//
// Excel drops trailing blank cells, so data rows shorter than the header are
// padded with empty values; longer rows are still dropped by BuildTable.
func TableFromWorkbook(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		var records [][]string
		for _, row := range rows {
			if isEmptyRow(row) {
				continue
			}
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = strings.TrimSpace(v)
			}
			records = append(records, cells)
		}

		if len(records) == 0 {
			continue
		}

		header := records[0]
		for i, row := range records[1:] {
			if len(row) < len(header) {
				padded := make([]string, len(header))
				copy(padded, row)
				records[i+1] = padded
			}
		}

		return BuildTable(header, records[1:]), nil
	}

	return nil, ErrEmptyInput
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
