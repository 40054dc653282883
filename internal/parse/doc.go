// Package parse converts ballot exports (TSV or XLSX) into domain ballots.
//
// Parsing is schema-driven: the header row declares which columns are songs
// and which hold metadata, so column positions are never hard-coded. Cells
// that do not parse become Malformed entries on the ballot rather than
// dropped rows; the validator turns them into reported failures.
package parse
