// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"sixframe-core/alphabet"
	"sixframe-core/fasta"
	"sixframe-core/seqs"
	"sixframe-core/translate"

	"sixframe/internal/cli"
	"sixframe/internal/output"
	"sixframe/internal/pretty"
	"sixframe/internal/version"
	"sixframe/internal/writers"
)

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, translates every input sequence under the
// selected frames and renders the result. Exit codes: 0 ok (help and
// broken pipe included), 2 usage or input error, 3 write error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flushOr := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	fs := cli.NewFlagSet("sixframe")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		cli.Usage(fs, "sixframe")
		return flushOr(0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			cli.Usage(fs, "sixframe")
			return flushOr(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "sixframe version %s\n", version.Version)
		return flushOr(0)
	}

	set := seqs.NewSliceSet(alphabet.DNA)
	var ids []string
	for _, path := range opts.SeqFiles {
		recs, err := fasta.ReadAllCtx(ctx, path)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "read %s: %v\n", path, err)
			return 2
		}
		for _, r := range recs {
			seq := bytes.ToUpper(r.Seq)
			if i, ok := alphabet.DNA.Validate(seq); !ok {
				_, _ = fmt.Fprintf(stderr, "%s: sequence %s: invalid base %q at %d\n", path, r.ID, seq[i], i+1)
				return 2
			}
			set.Append(seq)
			ids = append(ids, r.ID)
		}
	}

	view := translate.NewJoinFrames(set, opts.Frames)

	if opts.Pretty {
		_, _ = fmt.Fprintln(outw, pretty.RenderJoin(view))
		return flushOr(0)
	}

	rows := output.BuildRows(ids, view)
	switch opts.Output {
	case cli.OutputJSON:
		err = output.WriteJSONL(outw, rows)
	case cli.OutputFASTA:
		err = output.WriteFASTA(outw, rows)
	default:
		err = output.WriteText(outw, rows, opts.Header)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushOr(0)
}
