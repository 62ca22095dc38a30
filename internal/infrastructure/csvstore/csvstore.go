// Package csvstore provides the file-backed catalog and discount card
// directory. Sources are semicolon-delimited files with a header row; values
// are trimmed of surrounding whitespace. Stores are loaded once and read-only
// afterwards.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// readRecords opens path and returns the header-keyed rows of a
// semicolon-delimited file.
func readRecords(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%s: row has %d fields, header has %d", path, len(row), len(header))
		}
		record := make(map[string]string, len(header))
		for i, field := range row {
			record[header[i]] = strings.TrimSpace(field)
		}
		records = append(records, record)
	}
	return records, nil
}

// get returns the named field or an error naming the missing column.
func get(record map[string]string, name string) (string, error) {
	v, ok := record[name]
	if !ok {
		return "", fmt.Errorf("missing column %q", name)
	}
	return v, nil
}
