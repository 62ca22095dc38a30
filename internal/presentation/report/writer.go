package report

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes the rendered rows to path as a semicolon-delimited file.
// The file is flushed and closed on every exit path so a failed write never
// leaves an unflushed handle behind.
func WriteCSV(path string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create receipt file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = ';'
	for _, row := range rows {
		if len(row) == 0 {
			// blank separator row
			if _, werr := f.WriteString("\n"); werr != nil {
				return werr
			}
			continue
		}
		if werr := w.Write(row); werr != nil {
			return werr
		}
		w.Flush()
	}
	return w.Error()
}

// WriteError replaces the receipt file content with the single error line
// required on any fatal processing failure.
func WriteError(path string, failure error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create error file %s: %w", path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "Error: %s", failure.Error())
	return err
}
