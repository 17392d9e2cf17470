// pkg/api/translations_v1.go
package api

// TranslationV1 is the stable JSON/JSONL schema for translated frames.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TranslationV1 struct {
	SequenceID string `json:"sequence_id"`
	Frame      string `json:"frame"` // "F0".."F2", "R0".."R2"
	Length     int    `json:"length"`
	Protein    string `json:"protein"`
}
