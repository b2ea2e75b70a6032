package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/gamecat/internal/limiter"
	"github.com/oakwood-commons/gamecat/internal/ui"
	"github.com/oakwood-commons/gamecat/pkg/logger"
	"github.com/oakwood-commons/gamecat/pkg/settings"
)

// rootOptions holds the flag values of one command tree.
type rootOptions struct {
	configFile string
	sourceURL  string
	sourceFile string
	timeout    string

	prefsStore string
	prefsPath  string
	prefsKey   string

	theme  string
	view   string
	output string
	sorts  []string
	width  int
	window limiter.Config

	noColor bool
	debug   bool
	logFile string

	// logSink is closed after the command finishes.
	logSink io.Closer
}

var (
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	termGetSize      = term.GetSize
)

const defaultFallbackTermWidth = 120

// newRootCmd builds the gamecat command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   settings.CliBinaryName,
		Short: "Browse the game catalog in your terminal",
		Long: "gamecat fetches a catalog of games and shows it as a sortable table.\n\n" +
			"Interactive keys:\n" + ui.HelpText() + "\n" +
			"Theme and view changes are remembered between runs.",
		Example: "  gamecat\n" +
			"  gamecat --view compact --sort review_score\n" +
			"  gamecat --output json --source-file games.json\n" +
			"  gamecat prefs set --theme light",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupRun(cmd, o)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.Sync()
			if o.logSink != nil {
				_ = o.logSink.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, o)
		},
	}

	addSharedFlags(rootCmd.PersistentFlags(), o)

	f := rootCmd.Flags()
	f.StringVar(&o.sourceURL, "source-url", "", "fetch the catalog from this URL")
	f.StringVar(&o.sourceFile, "source-file", "", "read the catalog from a local JSON file")
	f.StringVar(&o.timeout, "timeout", "", "HTTP timeout, e.g. 15s (default from config)")
	f.StringVar(&o.theme, "theme", "", "switch to this theme (coffee|light) and remember it")
	f.StringVar(&o.view, "view", "", "switch to this view (detailed|compact) and remember it")
	f.StringVarP(&o.output, "output", "o", "", "output: tui|table|json (default: tui on a terminal, table otherwise)")
	f.StringArrayVar(&o.sorts, "sort", nil, "click a column header before rendering (ID, title, or number); repeat to cycle the direction")
	f.IntVar(&o.width, "width", 0, "output width in columns (default: terminal width)")
	f.IntVar(&o.window.Limit, "limit", 0, "table and json output: show only the first N rows after sorting")
	f.IntVar(&o.window.Offset, "offset", 0, "table and json output: skip the first N rows after sorting")
	f.IntVar(&o.window.Tail, "tail", 0, "table and json output: show only the last N rows after sorting")
	rootCmd.MarkFlagsMutuallyExclusive("limit", "tail")
	rootCmd.MarkFlagsMutuallyExclusive("source-url", "source-file")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newThemesCmd(o))
	rootCmd.AddCommand(newPrefsCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))
	return rootCmd
}

// addSharedFlags registers the flags every subcommand understands.
func addSharedFlags(pf *pflag.FlagSet, o *rootOptions) {
	pf.StringVar(&o.configFile, "config-file", "", "path to a YAML or TOML config file (default: $XDG_CONFIG_HOME/gamecat/config.yaml)")
	pf.StringVar(&o.prefsStore, "prefs-store", "", "preference backend: file|sqlite|memory (default from config)")
	pf.StringVar(&o.prefsPath, "prefs-path", "", "preference backend location (default: user config dir)")
	pf.StringVar(&o.prefsKey, "prefs-key", "", "slot the preferences are stored under (default from config)")
	pf.BoolVar(&o.noColor, "no-color", false, "disable color output")
	pf.BoolVar(&o.debug, "debug", false, "enable debug logging")
	pf.StringVar(&o.logFile, "log-file", "", "write logs to this file (the interactive browser defaults to the user cache dir)")
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// setupRun resolves the run settings and installs the logger. The browser
// owns the terminal, so it logs to a file; other commands log to stderr.
func setupRun(cmd *cobra.Command, o *rootOptions) error {
	run := settings.NewCliParams()
	run.NoColor = o.noColor || os.Getenv("NO_COLOR") != ""
	run.Width = o.width
	if o.debug {
		run.MinLogLevel = -1
	}

	if cmd.Name() == settings.CliBinaryName {
		mode, err := resolveOutputMode(o.output, stdoutIsTerminal())
		if err != nil {
			return err
		}
		run.Output = mode
	} else {
		run.Output = settings.OutputTable
	}

	var sink io.Writer = cmd.ErrOrStderr()
	run.LogFile = o.logFile
	if run.LogFile == "" && run.Output == settings.OutputTUI {
		run.LogFile = logger.DefaultLogFile()
	}
	if run.LogFile != "" {
		f, err := logger.OpenLogFile(run.LogFile)
		if err != nil {
			return err
		}
		o.logSink = f
		sink = f
	}

	lgr := logger.Setup(logger.Options{Level: run.MinLogLevel, Output: sink})
	lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)
	return nil
}

// resolveOutputMode applies the terminal default to an empty --output.
func resolveOutputMode(flag string, isTerminal bool) (settings.OutputMode, error) {
	v := strings.ToLower(strings.TrimSpace(flag))
	if v == "" {
		if isTerminal {
			return settings.OutputTUI, nil
		}
		return settings.OutputTable, nil
	}
	if !settings.IsValidOutputMode(v) {
		return "", fmt.Errorf("invalid --output %q (expected tui, table, or json)", flag)
	}
	mode := settings.OutputMode(v)
	if mode == settings.OutputTUI && !isTerminal {
		return "", fmt.Errorf("--output tui needs a terminal")
	}
	return mode, nil
}

// detectTerminalWidth probes stdout, stderr, and stdin, then $COLUMNS.
func detectTerminalWidth() int {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, _, err := termGetSize(int(fd)); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return defaultFallbackTermWidth
}

// cliVersionString builds the version line shared by --version and `gamecat version`.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, go %s)",
		settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gamecat version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
			return err
		},
	}
}
