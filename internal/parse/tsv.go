package parse

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// TSVParser parses tab-separated ballot exports.
type TSVParser struct {
	schema Schema
}

// NewTSVParser creates a TSV parser with the given schema.
func NewTSVParser(schema Schema) *TSVParser {
	return &TSVParser{schema: schema}
}

// Parse reads the whole TSV input and returns the heat's songs and ballots.
func (p *TSVParser) Parse(data []byte) (*ParsedHeat, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = '\t'
	reader.LazyQuotes = true
	// Forms exports can have ragged trailing columns.
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tsv: %w", err)
		}
		rows = append(rows, record)
	}
	return buildHeat(rows, p.schema)
}
