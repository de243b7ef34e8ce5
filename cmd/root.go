package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gnoswap-labs/minigrep/grep"
	"github.com/gnoswap-labs/minigrep/internal/config"
	"github.com/gnoswap-labs/minigrep/internal/loader"
	"github.com/gnoswap-labs/minigrep/internal/report"
	tt "github.com/gnoswap-labs/minigrep/internal/types"
)

const defaultTimeout = 5 * time.Minute

// outputFlags are shared by every command that prints matches.
type outputFlags struct {
	lineNumbers bool
	count       bool
	json        bool
	outPath     string
	color       string
}

type app struct {
	cfgFile string
	timeout time.Duration
	verbose bool
	out     outputFlags

	logger *zap.Logger
}

// Execute runs the minigrep command line and reports any failure on stderr.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		printDiagnostic(root.ErrOrStderr(), err)
	}
	return err
}

// NewRootCmd builds the minigrep command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "minigrep <query> <path>",
		Short: "minigrep - print the lines of a file that contain a query",
		Long: `Prints every line of the file at <path> that contains <query>.

Matching is literal and case-sensitive. Lines are printed in file order,
without decoration unless an output flag asks for it. An empty query
matches every line.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runSearch,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Path to a settings file")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", defaultTimeout, "Set a timeout for a search run")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	addOutputFlags(rootCmd, &a.out)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &tt.ArgumentError{Msg: err.Error()}
	})

	// "help" and "completion" are valid queries, so cobra's default
	// subcommands must not claim them. --help still prints usage.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "__help",
		Hidden: true,
		Run:    func(cmd *cobra.Command, args []string) {},
	})

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))

	return rootCmd
}

func addOutputFlags(cmd *cobra.Command, out *outputFlags) {
	cmd.Flags().BoolVarP(&out.lineNumbers, "line-number", "n", false, "Prefix each line with its line number")
	cmd.Flags().BoolVarP(&out.count, "count", "c", false, "Print only the number of matching lines")
	cmd.Flags().BoolVar(&out.json, "json", false, "Output matches in JSON format")
	cmd.Flags().StringVarP(&out.outPath, "output", "o", "", "Write results to a file instead of stdout")
	cmd.Flags().StringVar(&out.color, "color", string(config.ColorNever), "Highlight matches: never, auto or always")
}

func (a *app) initLogger(cmd *cobra.Command, _ []string) error {
	level := zapcore.WarnLevel
	if a.verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zap.NewAtomicLevelAt(level),
	)
	a.logger = zap.New(core, zap.AddCaller())
	return nil
}

// argv rebuilds the process-style argument sequence expected by the parser.
func (a *app) argv(cmd *cobra.Command, args []string) []string {
	return append([]string{cmd.Root().Name()}, args...)
}

func (a *app) runSearch(cmd *cobra.Command, args []string) error {
	argv := a.argv(cmd, args)

	// reject bad arguments before reading the settings file
	if _, err := config.FromArgs(argv); err != nil {
		return err
	}

	reporter, err := a.newReporter(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
	defer cancel()

	engine := grep.New(a.logger, loader.File{}, reporter)
	_, err = engine.Run(ctx, argv)
	return err
}

// newReporter merges the settings file with the flags set on cmd.
func (a *app) newReporter(cmd *cobra.Command) (grep.Reporter, error) {
	settings, err := config.Load(a.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("line-number") {
		settings.LineNumbers = a.out.lineNumbers
	}
	if flags.Changed("count") {
		settings.Count = a.out.count
	}
	if flags.Changed("json") {
		settings.JSON = a.out.json
	}
	if flags.Changed("color") {
		settings.Color = config.ColorMode(a.out.color)
	}
	if err := settings.Color.Validate(); err != nil {
		return nil, &tt.ArgumentError{Msg: err.Error()}
	}

	opts := report.Options{
		LineNumbers: settings.LineNumbers,
		Count:       settings.Count,
		JSON:        settings.JSON,
		Color:       useColor(settings.Color),
	}

	if a.out.outPath != "" {
		// auto follows the terminal state of stdout, not of the output file
		if settings.Color == config.ColorAuto {
			opts.Color = false
		}
		return &fileReporter{path: a.out.outPath, opts: opts}, nil
	}
	return report.New(cmd.OutOrStdout(), opts), nil
}

func useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return !color.NoColor
	default:
		return false
	}
}

// fileReporter creates its output file only once there is something to report,
// so a failed run never leaves an empty file behind.
type fileReporter struct {
	path string
	opts report.Options
}

func (r *fileReporter) Report(cfg tt.Config, matches []tt.Match) (err error) {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("error closing output file: %w", cerr)
		}
	}()

	return report.New(f, r.opts).Report(cfg, matches)
}

func printDiagnostic(w io.Writer, err error) {
	var argErr *tt.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintf(w, "Problem parsing arguments: %v\n", argErr)
		return
	}

	var failure *grep.Failure
	if errors.As(err, &failure) {
		err = failure.Err
	}
	fmt.Fprintf(w, "Application error: %v\n", err)
}
