// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"strings"

	"sixframe-core/frames"

	"sixframe/internal/version"
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputFASTA = "fasta"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Frame selection
	FrameSpec string
	Frames    frames.Frames

	// Output
	Output string
	Pretty bool
	Header bool // true unless --no-header

	Version bool
}

// Usage prints the tool banner and flag defaults to fs.Output().
func Usage(fs *flag.FlagSet, name string) {
	fmt.Fprintf(fs.Output(),
		`%s: lazy six-frame translation of nucleotide sequences

Translates every input sequence in any subset of the six reading frames
and emits one row per (sequence, frame) pair.

Version: %s

Usage of %s:
`, name, version.Version, name)
	fs.PrintDefaults()
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable, comma-separable, or '-' for stdin) [*]")

	fs.StringVar(&opt.FrameSpec, "frames", "all", "reading frames: comma list of F0 F1 F2 R0 R1 R2, or all | fwd | rev | none [all]")

	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json | fasta [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "bracketed one-line rendering of all translations [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	opt.SeqFiles = append([]string(seq), fs.Args()...)

	if opt.Version {
		return opt, nil
	}

	m, err := frames.Parse(opt.FrameSpec)
	if err != nil {
		return opt, fmt.Errorf("--frames: %w", err)
	}
	opt.Frames = m

	switch opt.Output {
	case OutputText, OutputJSON, OutputFASTA:
	default:
		return opt, fmt.Errorf("--output: unknown format %q (text | json | fasta)", opt.Output)
	}

	if len(opt.SeqFiles) == 0 {
		return opt, fmt.Errorf("at least one FASTA input is required (--sequences or positional)")
	}
	return opt, nil
}

// stringSlice collects repeated flag values, splitting each on commas.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }

func (s *stringSlice) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}
