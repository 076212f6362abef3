// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/meshintel/litscope/pkg/types"
)

// ParseXLSX reads the first sheet of a spreadsheet export and parses its
// rows. The first row is treated as the header.
func ParseXLSX(path string, cfg types.ParserConfig) ([]types.PaperRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset too short: need a header row and at least one data row, got %d row(s)", len(rows))
	}

	return ParseRows(rows[0], rows[1:], cfg)
}
