// internal/app/app_test.go
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunTextOutput(t *testing.T) {
	path := writeFasta(t, ">s1\nACGTAC\n")
	code, out, errOut := run(t, "--sequences", path, "--frames", "f0,r0")
	require.Equal(t, 0, code, "stderr: %s", errOut)
	want := "sequence_id\tframe\tlength\tprotein\n" +
		"s1\tF0\t2\tTY\n" +
		"s1\tR0\t2\tVR\n"
	require.Equal(t, want, out)
}

func TestRunSixFrameDefault(t *testing.T) {
	path := writeFasta(t, ">a\nACGTACGTACGTA\n>b\nTCGAGAGCTTTAGC\n")
	code, out, _ := run(t, "--sequences", path, "--no-header")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12, "two sequences times six frames")
	require.Equal(t, "a\tF0\t4\tTYVR", lines[0])
	require.Equal(t, "b\tF2\t4\tESFS", lines[8])
}

func TestRunPretty(t *testing.T) {
	path := writeFasta(t, ">a\nACGTACGTACGTA\n>b\nTCGAGAGCTTTAGC\n")
	code, out, _ := run(t, "--sequences", path, "--pretty")
	require.Equal(t, 0, code)
	require.Equal(t, "[TYVR,RTYV,VRT,YVRT,TYVR,RTY,SRAL,REL*,ESFS,AKAL,LKLS,*SSR]\n", out)
}

func TestRunFastaOutput(t *testing.T) {
	path := writeFasta(t, ">s1\nACGTAC\n")
	code, out, _ := run(t, "--sequences", path, "--frames", "F0", "--output", "fasta")
	require.Equal(t, 0, code)
	require.Equal(t, ">s1|F0 length=2\nTY\n", out)
}

func TestRunJSONOutput(t *testing.T) {
	path := writeFasta(t, ">s1\nACGTAC\n")
	code, out, _ := run(t, "--sequences", path, "--frames", "F0", "--output", "json")
	require.Equal(t, 0, code)
	require.JSONEq(t, `{"sequence_id":"s1","frame":"F0","length":2,"protein":"TY"}`, out)
}

func TestRunEmptyFrameMask(t *testing.T) {
	path := writeFasta(t, ">s1\nACGTAC\n")
	code, out, _ := run(t, "--sequences", path, "--frames", "none", "--no-header")
	require.Equal(t, 0, code)
	require.Empty(t, out)
}

func TestRunLowercaseInput(t *testing.T) {
	path := writeFasta(t, ">s1\nacgtac\n")
	code, out, _ := run(t, "--sequences", path, "--frames", "F0", "--no-header")
	require.Equal(t, 0, code)
	require.Equal(t, "s1\tF0\t2\tTY\n", out)
}

func TestRunInvalidBase(t *testing.T) {
	path := writeFasta(t, ">s1\nACGEAC\n")
	code, _, errOut := run(t, "--sequences", path)
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "invalid base")
}

func TestRunMissingFile(t *testing.T) {
	code, _, errOut := run(t, "--sequences", filepath.Join(t.TempDir(), "nope.fasta"))
	require.Equal(t, 2, code)
	require.NotEmpty(t, errOut)
}

func TestRunUsageError(t *testing.T) {
	code, _, errOut := run(t, "--frames", "bogus", "--sequences", "-")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "unknown frame")
}

func TestRunHelp(t *testing.T) {
	code, out, _ := run(t, "-h")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage of sixframe")
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	require.Equal(t, 0, code)
	require.Contains(t, out, "sixframe version")
}

func TestRunMultipleFiles(t *testing.T) {
	p1 := writeFasta(t, ">a\nACGTAC\n")
	p2 := writeFasta(t, ">b\nGGGCCC\n")
	code, out, _ := run(t, "--sequences", p1, "--sequences", p2, "--frames", "F0", "--no-header")
	require.Equal(t, 0, code)
	require.Equal(t, "a\tF0\t2\tTY\nb\tF0\t2\tGP\n", out)
}
