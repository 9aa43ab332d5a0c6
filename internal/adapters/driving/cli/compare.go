package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amecca/rootcmp/internal/adapters/driven/config/file"
	"github.com/amecca/rootcmp/internal/adapters/driven/rootio"
	"github.com/amecca/rootcmp/internal/adapters/driving/render"
	"github.com/amecca/rootcmp/internal/core/domain"
	"github.com/amecca/rootcmp/internal/core/ports/driven"
	"github.com/amecca/rootcmp/internal/core/services"
	"github.com/amecca/rootcmp/internal/logger"
)

func usageErr(format string, args ...any) error {
	return domain.NewStatusError(domain.StatusUsageError, fmt.Sprintf(format, args...))
}

func internalErr(err error) error {
	return domain.NewStatusError(domain.StatusInternalError, err.Error())
}

// outcome wraps a non-identical result status. It carries no message:
// the report has already been printed.
func outcome(st domain.ExitStatus) error {
	if st == domain.StatusIdentical {
		return nil
	}
	return domain.NewStatusError(st, "")
}

func runCompare(cmd *cobra.Command, args []string) error {
	// Arguments parsed fine; from here on failures are outcomes, not misuse.
	cmd.SilenceUsage = true

	lvl, err := logger.ParseLevel(flagLog)
	if err != nil {
		return usageErr("%v", err)
	}
	logger.SetLevel(lvl)
	logger.Info("args: %v", args)

	cfg := loadConfig()
	verbosity := resolveVerbosity(cmd, cfg)
	nameWidth := cfgInt(cfg, "name-width", 48)
	if err := applyColorMode(resolveColor(cmd, cfg)); err != nil {
		return usageErr("%v", err)
	}

	var include, exclude *regexp.Regexp
	if flagPlot != "" {
		if include, err = regexp.Compile(flagPlot); err != nil {
			return usageErr("bad --plot pattern: %v", err)
		}
	}
	if flagPlotExclude != "" {
		if exclude, err = regexp.Compile(flagPlotExclude); err != nil {
			return usageErr("bad --plot-exclude pattern: %v", err)
		}
	}

	file1, file2 := args[0], args[1]
	out := cmd.OutOrStdout()

	if sameFile(file1, file2) {
		fmt.Fprintln(out, "The two files are the same!")
		return outcome(domain.StatusUsageError)
	}

	store1, err := openStore(file1)
	if err != nil {
		return err
	}
	defer store1.Close()

	store2, err := openStore(file2)
	if err != nil {
		return err
	}
	defer store2.Close()

	rnd := render.New(out, render.NewStyles(), verbosity, nameWidth)
	sess := services.NewSession(store1, store2)

	ctx := cmd.Context()
	keys1, keys2, err := sess.Keys(ctx)
	if err != nil {
		return internalErr(err)
	}

	logger.Info("now comparing keys")
	switch {
	case flagDiff:
		return runDiffMode(out, file1, file2, keys1, keys2)
	case flagSet:
		return runSetMode(rnd, keys1, keys2)
	default:
		return runContentMode(ctx, rnd, sess, keys1, keys2, include, exclude, verbosity)
	}
}

// runDiffMode prints a unified diff of the sorted key lists.
func runDiffMode(out io.Writer, file1, file2 string, keys1, keys2 domain.KeySet) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        keyLines(keys1),
		B:        keyLines(keys2),
		FromFile: file1,
		ToFile:   file2,
		Context:  3,
	})
	if err != nil {
		return internalErr(fmt.Errorf("diffing key lists: %w", err))
	}
	fmt.Fprint(out, text)

	if text != "" {
		return outcome(domain.StatusEitherMissing)
	}
	return nil
}

func keyLines(keys domain.KeySet) []string {
	sorted := keys.Sorted()
	lines := make([]string, len(sorted))
	for i, k := range sorted {
		lines[i] = k + "\n"
	}
	return lines
}

// runSetMode reports which keys each file is missing, without reading
// any object content.
func runSetMode(rnd *render.Renderer, keys1, keys2 domain.KeySet) error {
	d := domain.CompareKeySets(keys1, keys2)
	rnd.Missing(d)
	return outcome(d.Status())
}

// runContentMode performs the in-depth comparison of every common plot.
func runContentMode(
	ctx context.Context,
	rnd *render.Renderer,
	sess *services.Session,
	keys1, keys2 domain.KeySet,
	include, exclude *regexp.Regexp,
	verbosity int,
) error {
	union := keys1.Union(keys2)
	rnd.TotalKeys(union.Len())

	selected := union
	var err error
	if include != nil {
		if selected, err = services.SelectKeys(selected, include, nil); err != nil {
			return usageErr("%v", err)
		}
		rnd.MatchedKeys(include.String(), selected.Len())
	}
	if exclude != nil {
		if selected, err = services.SelectKeys(selected, nil, exclude); err != nil {
			return usageErr("%v", err)
		}
		rnd.ExcludedKeys(exclude.String(), selected.Len())
	}
	rnd.Blank()

	// Partition the selection: a selected key may be absent from either file.
	d := domain.KeyDiff{
		Missing1: selected.Diff(keys1),
		Missing2: selected.Diff(keys2),
		Common:   selected.Intersect(keys1).Intersect(keys2),
		Total:    selected.Len(),
	}

	plots, status, err := sess.CompareCommon(ctx, d.Common, verbosity >= 3)
	if err != nil {
		return internalErr(err)
	}
	for _, p := range plots {
		rnd.Plot(p)
	}

	rnd.Missing(d)
	rnd.Blank()
	rnd.ContentStatus(status)

	return outcome(domain.Summary{Keys: d, Content: status}.Status())
}

// openStore opens one input file. Pointing at a path that does not
// exist is misuse; failing to read a file that does exist is an
// internal error.
func openStore(path string) (*rootio.Store, error) {
	store, err := rootio.Open(path)
	if err == nil {
		return store, nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, usageErr("%v", err)
	}
	return nil, internalErr(err)
}

// sameFile reports whether both paths resolve to the same file on disk.
func sameFile(path1, path2 string) bool {
	fi1, err1 := os.Stat(path1)
	fi2, err2 := os.Stat(path2)
	return err1 == nil && err2 == nil && os.SameFile(fi1, fi2)
}

// loadConfig opens the config store; a broken config is only worth a warning.
func loadConfig() driven.ConfigStore {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("cannot load config: %v", err)
		return nil
	}
	return cfg
}

func cfgInt(cfg driven.ConfigStore, key string, fallback int) int {
	if cfg == nil {
		return fallback
	}
	if v := cfg.GetInt(key); v != 0 {
		return v
	}
	return fallback
}

func cfgString(cfg driven.ConfigStore, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return fallback
}

// resolveVerbosity combines the config default with the -v/-q/--verbosity
// flags. Explicit --verbosity replaces the default, each -v adds one,
// and -q wins over everything.
func resolveVerbosity(cmd *cobra.Command, cfg driven.ConfigStore) int {
	v := cfgInt(cfg, "verbosity", 1)
	if cmd.Flags().Changed("verbosity") {
		v = flagVerbosity
	}
	v += flagVerbose
	if flagQuiet {
		v = 0
	}
	return v
}

func resolveColor(cmd *cobra.Command, cfg driven.ConfigStore) string {
	if cmd.Flags().Changed("color") {
		return flagColor
	}
	return cfgString(cfg, "color", "auto")
}

// applyColorMode fixes the global colour profile. In auto mode the
// report is colored only on a terminal.
func applyColorMode(mode string) error {
	switch mode {
	case "", "auto":
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return nil
}
