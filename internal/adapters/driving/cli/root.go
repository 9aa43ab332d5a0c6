// Package cli implements the cobra commands driving the comparison.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amecca/rootcmp/internal/core/domain"
)

// version is set at build time via -ldflags.
var version = "dev"

// configDir overrides the config directory, empty means ~/.rootcmp.
// Settable for tests.
var configDir = ""

var (
	flagPlot        string
	flagPlotExclude string
	flagDiff        bool
	flagSet         bool
	flagVerbose     int
	flagVerbosity   int
	flagQuiet       bool
	flagLog         string
	flagColor       string
)

var rootCmd = &cobra.Command{
	Use:   "rootcmp FILE1 FILE2",
	Short: "Compare the content of two ROOT files, key by key",
	Long: `Compares two ROOT files believed to represent the same dataset.
Reports which keys exist in one file but not the other and, for keys
present in both, whether the histogram contents are bin-for-bin
identical. The exit status encodes the outcome, so the tool can gate
validation pipelines.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE:          runCompare,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagPlot, "plot", "p", "", "compare a specific plot; accepts a regexp")
	f.StringVar(&flagPlotExclude, "plot-exclude", "", "second regexp to exclude some of the selected plots")
	f.BoolVar(&flagDiff, "diff", false, "diff the sorted lists of keys")
	f.BoolVar(&flagSet, "set", false, "only check whether both files have the same keys")
	f.CountVarP(&flagVerbose, "verbose", "v", "increase verbosity")
	f.IntVar(&flagVerbosity, "verbosity", 1, "set verbosity to `LEVEL`")
	f.BoolVarP(&flagQuiet, "quiet", "q", false, "set verbosity to minimum")
	f.StringVar(&flagLog, "log", "WARNING", "diagnostic log `LEVEL`, mnemonic or integer (lower is more verbose)")
	f.StringVar(&flagColor, "color", "", "colorize the report: auto, always or never")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return int(domain.StatusIdentical)
	}

	var serr *domain.StatusError
	if errors.As(err, &serr) {
		if serr.Message != "" {
			fmt.Fprintln(os.Stderr, "ERROR:", serr.Message)
		}
		return int(serr.Status)
	}

	fmt.Fprintln(os.Stderr, "ERROR:", err)
	return int(domain.StatusUsageError)
}
