// internal/output/fasta.go
package output

import (
	"fmt"
	"io"
)

// WriteFASTA writes each row as a FASTA record. The record ID is the
// input sequence ID with the frame appended after '|'.
func WriteFASTA(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, ">%s|%s length=%d\n%s\n", r.SequenceID, r.Frame, r.Length, r.Protein); err != nil {
			return err
		}
	}
	return nil
}
