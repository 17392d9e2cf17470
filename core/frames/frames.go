// core/frames/frames.go
package frames

// Frames is a bitmask selecting any subset of the six reading frames.
// The zero value selects nothing and is legal everywhere.
type Frames uint8

const (
	Fwd0 Frames = 1 << iota // forward strand, offset 0
	Fwd1                    // forward strand, offset 1
	Fwd2                    // forward strand, offset 2
	Rev0                    // reverse strand, offset 0
	Rev1                    // reverse strand, offset 1
	Rev2                    // reverse strand, offset 2
)

const (
	Forward  = Fwd0 | Fwd1 | Fwd2
	Reverse  = Rev0 | Rev1 | Rev2
	SixFrame = Forward | Reverse
)

// Frame identifies a single reading frame. Values follow the canonical
// order F0, F1, F2, R0, R1, R2.
type Frame uint8

const (
	FrameF0 Frame = iota
	FrameF1
	FrameF2
	FrameR0
	FrameR1
	FrameR2
	frameCount
)

var frameNames = [frameCount]string{"F0", "F1", "F2", "R0", "R1", "R2"}

// Offset returns how many leading symbols the frame skips (0..2).
func (f Frame) Offset() int { return int(f) % 3 }

// IsReverse reports whether the frame reads the reverse-complement strand.
func (f Frame) IsReverse() bool { return f >= FrameR0 }

// Bit returns the mask with only this frame selected.
func (f Frame) Bit() Frames { return 1 << f }

func (f Frame) String() string {
	if f < frameCount {
		return frameNames[f]
	}
	return "F?"
}

// Selected resolves the mask into the frames it selects, always in
// canonical order F0, F1, F2, R0, R1, R2 no matter how the mask was
// composed. The result has length 0..6 and no duplicates. Pure; callers
// may cache it for as long as they like.
func (m Frames) Selected() []Frame {
	sel := make([]Frame, 0, int(frameCount))
	for f := FrameF0; f < frameCount; f++ {
		if m&f.Bit() != 0 {
			sel = append(sel, f)
		}
	}
	return sel
}

// Count returns the number of selected frames without building the list.
func (m Frames) Count() int {
	n := 0
	for f := FrameF0; f < frameCount; f++ {
		if m&f.Bit() != 0 {
			n++
		}
	}
	return n
}

// Has reports whether frame f is selected.
func (m Frames) Has(f Frame) bool { return m&f.Bit() != 0 }
