// internal/output/rows.go
package output

import (
	"sixframe-core/translate"

	"sixframe/pkg/api"
)

// Row is one rendered (sequence, frame) translation.
type Row struct {
	SequenceID string
	Frame      string
	Length     int
	Protein    string
}

// BuildRows materializes one Row per element of the view, in flat index
// order. ids[i] names sequence i of the backing set; the sequence index
// of element n is n divided by the frame count.
func BuildRows(ids []string, v translate.Join) []Row {
	s := v.FrameCount()
	rows := make([]Row, 0, v.Len())
	for n, tr := range v.All() {
		rows = append(rows, Row{
			SequenceID: ids[n/s],
			Frame:      tr.Frame().String(),
			Length:     tr.Len(),
			Protein:    tr.String(),
		})
	}
	return rows
}

// ToAPITranslation converts a row to the stable v1 schema.
func ToAPITranslation(r Row) api.TranslationV1 {
	return api.TranslationV1{
		SequenceID: r.SequenceID,
		Frame:      r.Frame,
		Length:     r.Length,
		Protein:    r.Protein,
	}
}
