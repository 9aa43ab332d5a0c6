package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook"

	"github.com/amecca/rootcmp/internal/core/domain"
)

// resetFlags restores the root command to a pristine state and points
// the config store at a throwaway directory.
func resetFlags(t *testing.T) {
	t.Helper()

	flagPlot = ""
	flagPlotExclude = ""
	flagDiff = false
	flagSet = false
	flagVerbose = 0
	flagVerbosity = 1
	flagQuiet = false
	flagLog = "WARNING"
	flagColor = ""

	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	configDir = t.TempDir()
	t.Cleanup(func() {
		configDir = ""
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
}

// execRoot runs the root command with args and returns its output.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// status extracts the exit status encoded in err.
func status(err error) domain.ExitStatus {
	if err == nil {
		return domain.StatusIdentical
	}
	var serr *domain.StatusError
	if errors.As(err, &serr) {
		return serr.Status
	}
	return domain.StatusUsageError
}

// histogram builds a 1D histogram with the given per-bin contents.
func histogram(contents ...float64) *rhist.H1D {
	hb := hbook.NewH1D(len(contents), 0, float64(len(contents)))
	for i, c := range contents {
		hb.Fill(float64(i)+0.5, c)
	}
	return rhist.NewH1DFrom(hb)
}

// writeRootFile creates a ROOT file populated by build.
func writeRootFile(t *testing.T, dir, name string, build func(t *testing.T, w *riofs.File)) string {
	t.Helper()
	path := filepath.Join(dir, name)

	w, err := riofs.Create(path)
	require.NoError(t, err)
	build(t, w)
	require.NoError(t, w.Close())

	return path
}

// twoFiles writes a pair of files sharing hSame, disagreeing on hDiff,
// and each holding one private key.
func twoFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	path1 := writeRootFile(t, dir, "file1.root", func(t *testing.T, w *riofs.File) {
		require.NoError(t, w.Put("hSame", histogram(1, 2, 3)))
		require.NoError(t, w.Put("hDiff", histogram(1, 2, 3)))
		require.NoError(t, w.Put("hOnly1", histogram(1)))
	})
	path2 := writeRootFile(t, dir, "file2.root", func(t *testing.T, w *riofs.File) {
		require.NoError(t, w.Put("hSame", histogram(1, 2, 3)))
		require.NoError(t, w.Put("hDiff", histogram(1, 2, 4)))
		require.NoError(t, w.Put("hOnly2", histogram(1)))
	})
	return path1, path2
}

// identicalFiles writes a pair of files with identical keys and content.
func identicalFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	build := func(t *testing.T, w *riofs.File) {
		require.NoError(t, w.Put("hA", histogram(5, 0, 5)))
		sub, err := w.Mkdir("dir")
		require.NoError(t, err)
		require.NoError(t, sub.Put("hB", histogram(1, 1)))
	}
	return writeRootFile(t, dir, "a.root", build), writeRootFile(t, dir, "b.root", build)
}
