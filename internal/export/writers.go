// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/meshintel/litscope/pkg/types"
)

// WriteCSV writes a flat papers table for spreadsheet consumers.
func WriteCSV(w io.Writer, papers []types.PaperRecord) error {
	cw := csv.NewWriter(w)
	header := []string{"Key", "Item Type", "Publication Year", "Author", "Title", "Abstract Note", "Venue", "DOI", "Url", "Manual Tags"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, p := range papers {
		year := ""
		if p.HasYear() {
			year = strconv.Itoa(p.PublicationYear)
		}
		venue := p.Venue
		if venue == "" {
			venue = p.PublicationTitle
		}
		row := []string{
			p.Key, p.ItemType, year,
			strings.Join(p.Authors, "; "),
			p.Title, p.Abstract, venue, p.DOI, p.URL,
			strings.Join(p.Tags, "; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %s: %w", p.Key, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteYAML writes the full aggregate as a YAML report.
func WriteYAML(w io.Writer, data *types.ProcessedData) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(data)
}
