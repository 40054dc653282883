package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sunnerberg/heattally/internal/domain"
)

// Schema describes how header columns map to ballot fields. Forms exports put
// the song name in brackets inside a shared question column, next to metadata
// columns (timestamp, free text) the tally ignores.
type Schema struct {
	// SongColumnPrefix marks song columns: a header cell starting with this
	// prefix is a song column. The song name is the bracketed part of the
	// cell, or the whole cell when there are no brackets.
	SongColumnPrefix string

	// NameColumnMatch identifies the voter-name column by case-insensitive
	// substring match.
	NameColumnMatch string

	// PointSuffix is the token after the integer in vote cells ("6 p").
	// The space is optional.
	PointSuffix string
}

// DefaultSchema matches a standard forms export for the competition.
func DefaultSchema() Schema {
	return Schema{
		SongColumnPrefix: "Lyssna",
		NameColumnMatch:  "namn",
		PointSuffix:      "p",
	}
}

// ParsedHeat is the parser output: the heat's songs in header-column order and
// one ballot per data row, in input order.
type ParsedHeat struct {
	Songs   []string
	Ballots []domain.Ballot
}

// Parser converts raw tabular file contents into a ParsedHeat.
type Parser interface {
	Parse(data []byte) (*ParsedHeat, error)
}

// ForFile returns the appropriate parser for the given filename.
func ForFile(filename string, schema Schema) (Parser, error) {
	ext := strings.ToLower(fileExtension(filename))
	switch ext {
	case ".tsv", ".txt":
		return NewTSVParser(schema), nil
	case ".xlsx", ".xls":
		return NewXLSXParser(schema), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
}

func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return ""
	}
	return filename[idx:]
}

// headerLayout is the column mapping extracted from the header row.
type headerLayout struct {
	songs    []string
	songCols []int
	nameCol  int // -1 when absent
}

// mapHeader locates song columns and the voter-name column. Every column that
// is neither is metadata and gets ignored.
func mapHeader(header []string, schema Schema) (headerLayout, error) {
	layout := headerLayout{nameCol: -1}
	for i, col := range header {
		col = strings.TrimSpace(col)
		if strings.HasPrefix(col, schema.SongColumnPrefix) {
			layout.songs = append(layout.songs, songName(col))
			layout.songCols = append(layout.songCols, i)
			continue
		}
		if layout.nameCol == -1 && schema.NameColumnMatch != "" &&
			strings.Contains(strings.ToLower(col), strings.ToLower(schema.NameColumnMatch)) {
			layout.nameCol = i
		}
	}
	if len(layout.songs) == 0 {
		return layout, domain.ErrNoSongColumns
	}
	return layout, nil
}

// songName extracts the bracketed song name from a header cell, e.g.
// "Lyssna och rösta!  [Song / Band]" yields "Song / Band".
func songName(col string) string {
	if open := strings.Index(col, "["); open != -1 {
		name := col[open+1:]
		return strings.TrimSpace(strings.TrimSuffix(name, "]"))
	}
	return col
}

// parsePointCell parses a vote cell like "6 p" into its integer value.
// Accepts "6p" and a bare "6" as well. The boolean is false for anything that
// does not reduce to an integer, including empty cells.
func parsePointCell(raw string, schema Schema) (int, bool) {
	s := strings.TrimSpace(raw)
	if schema.PointSuffix != "" {
		trimmed := strings.TrimSuffix(strings.ToLower(s), strings.ToLower(schema.PointSuffix))
		if len(trimmed) != len(s) {
			s = strings.TrimSpace(trimmed)
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// buildHeat turns raw rows (header first) into a ParsedHeat. Rows with a blank
// first cell are skipped; rows with unparseable vote cells are kept as ballots
// with Malformed entries so the failure shows up in the report.
func buildHeat(rows [][]string, schema Schema) (*ParsedHeat, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNoHeader
	}
	layout, err := mapHeader(rows[0], schema)
	if err != nil {
		return nil, err
	}

	heat := &ParsedHeat{Songs: layout.songs}
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		voter := "Unknown"
		if layout.nameCol >= 0 && layout.nameCol < len(row) {
			if name := strings.TrimSpace(row[layout.nameCol]); name != "" {
				voter = name
			}
		}

		ballot := domain.Ballot{
			Voter:     voter,
			Songs:     layout.songs,
			Points:    make(map[string]int, len(layout.songs)),
			Malformed: map[string]string{},
		}
		for j, colIdx := range layout.songCols {
			song := layout.songs[j]
			var raw string
			if colIdx < len(row) {
				raw = row[colIdx]
			}
			if v, ok := parsePointCell(raw, schema); ok {
				ballot.Points[song] = v
			} else {
				ballot.Malformed[song] = strings.TrimSpace(raw)
			}
		}
		heat.Ballots = append(heat.Ballots, ballot)
	}
	return heat, nil
}
