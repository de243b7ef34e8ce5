package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/minigrep/grep"
	"github.com/gnoswap-labs/minigrep/internal/config"
	"github.com/gnoswap-labs/minigrep/internal/loader"
	"github.com/gnoswap-labs/minigrep/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch <query> <path>",
		Short: "Search again every time the file is written",
		Long: `Runs the search once, then again after each write to <path>,
until interrupted. Failed re-runs are logged and watching continues.`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runWatch,
	}
	addOutputFlags(watchCmd, &a.out)
	return watchCmd
}

func (a *app) runWatch(cmd *cobra.Command, args []string) error {
	argv := a.argv(cmd, args)

	// reject bad arguments before touching the filesystem
	cfg, err := config.FromArgs(argv)
	if err != nil {
		return err
	}

	reporter, err := a.newReporter(cmd)
	if err != nil {
		return err
	}
	engine := grep.New(a.logger, loader.File{}, reporter)

	search := func() error {
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
		defer cancel()
		_, err := engine.Run(ctx, argv)
		return err
	}

	if err := search(); err != nil {
		return err
	}

	w, err := watch.New(cfg.Path, a.logger, search)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("Watching for changes", zap.String("path", cfg.Path))
	return w.Run(ctx)
}
