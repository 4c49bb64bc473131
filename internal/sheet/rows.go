package sheet

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Row is one header-keyed record from a sheet tab.
type Row map[string]string

// HeaderRows parses CSV data whose first record is the header and returns
// one Row per remaining record, zipping values against the header. Short
// records leave their trailing columns absent, matching what a dict reader
// would produce for a ragged export.
func HeaderRows(data []byte) ([]Row, error) {
	records, err := readAll(data)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			if i < len(rec) {
				row[key] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// PositionalRows parses CSV data into raw records, dropping skip leading
// rows (the item sheet carries two header rows that are not data).
func PositionalRows(data []byte, skip int) ([][]string, error) {
	records, err := readAll(data)
	if err != nil {
		return nil, err
	}
	if skip >= len(records) {
		return nil, nil
	}
	return records[skip:], nil
}

func readAll(data []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1 // sheet exports are ragged
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

// Col returns the idx-th field of a positional record, or "" when the
// record is too short.
func Col(rec []string, idx int) string {
	if idx < len(rec) {
		return rec[idx]
	}
	return ""
}
