// internal/pretty/pretty.go

// Package pretty renders sequence views for humans: every element of a
// collection on one line, comma-separated and bracketed. It works on any
// collection of seqs.Seq values, so translated views render without
// special-casing.
package pretty

import (
	"iter"
	"strings"

	"sixframe-core/seqs"
	"sixframe-core/translate"
)

// Options control the rendering glyphs.
type Options struct {
	Open  string // default "["
	Sep   string // default ","
	Close string // default "]"
}

// DefaultOptions matches the debug rendering used throughout the tests:
// "[a,b,c]", "[]" when empty.
var DefaultOptions = Options{Open: "[", Sep: ",", Close: "]"}

// Render draws every sequence of views between opt.Open and opt.Close,
// elements separated by opt.Sep.
func Render[S seqs.Seq](views iter.Seq[S], opt Options) string {
	var b strings.Builder
	b.WriteString(opt.Open)
	first := true
	for v := range views {
		if !first {
			b.WriteString(opt.Sep)
		}
		first = false
		b.Write(seqs.Collect(v))
	}
	b.WriteString(opt.Close)
	return b.String()
}

// RenderJoin renders a joined translation view with the default glyphs.
func RenderJoin(v translate.Join) string {
	return Render(v.Values(), DefaultOptions)
}

// RenderSeq renders one sequence bare, without brackets.
func RenderSeq(s seqs.Seq) string { return seqs.String(s) }
