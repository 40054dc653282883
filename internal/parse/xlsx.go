package parse

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sunnerberg/heattally/internal/domain"
)

// XLSXParser parses spreadsheet ballot exports. The first sheet is used; its
// rows go through the same header mapping as the TSV path.
type XLSXParser struct {
	schema Schema
}

// NewXLSXParser creates an XLSX parser with the given schema.
func NewXLSXParser(schema Schema) *XLSXParser {
	return &XLSXParser{schema: schema}
}

// Parse opens the workbook from memory and returns the heat's songs and ballots.
func (p *XLSXParser) Parse(data []byte) (*ParsedHeat, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return buildHeat(rows, p.schema)
}
