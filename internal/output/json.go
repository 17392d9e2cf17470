// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// WriteJSONL streams each row as one JSON object per line, using the v1
// schema.
func WriteJSONL(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(ToAPITranslation(r)); err != nil {
			return err
		}
	}
	return nil
}
