package output

import (
	"encoding/csv"
	"io"
)

// PrintCSV writes t as CSV with a header line.
func PrintCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}
