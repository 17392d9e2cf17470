// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// TSVHeader is the column header for text output.
const TSVHeader = "sequence_id\tframe\tlength\tprotein"

// WriteText prints one tab-delimited line per row.
func WriteText(w io.Writer, rows []Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.SequenceID, r.Frame, r.Length, r.Protein); err != nil {
			return err
		}
	}
	return nil
}
