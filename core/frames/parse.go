// core/frames/parse.go
package frames

import (
	"fmt"
	"strings"
)

// Parse converts a comma-separated spec into a mask. Accepted tokens are
// the frame names F0 F1 F2 R0 R1 R2 (case-insensitive) and the shorthands
// "all", "fwd", "rev" and "none".
func Parse(spec string) (Frames, error) {
	var m Frames
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch strings.ToUpper(tok) {
		case "ALL", "SIX":
			m |= SixFrame
		case "FWD", "FORWARD":
			m |= Forward
		case "REV", "REVERSE":
			m |= Reverse
		case "NONE":
			// explicit empty selection
		case "F0":
			m |= Fwd0
		case "F1":
			m |= Fwd1
		case "F2":
			m |= Fwd2
		case "R0":
			m |= Rev0
		case "R1":
			m |= Rev1
		case "R2":
			m |= Rev2
		default:
			return 0, fmt.Errorf("unknown frame %q; allowed: F0 F1 F2 R0 R1 R2 all fwd rev none", tok)
		}
	}
	return m, nil
}

// String renders the mask as a comma-separated frame list ("none" when
// empty, "all" when complete).
func (m Frames) String() string {
	switch m {
	case 0:
		return "none"
	case SixFrame:
		return "all"
	}
	parts := make([]string, 0, int(frameCount))
	for _, f := range m.Selected() {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ",")
}
