// Package grep runs a literal line search over a single file.
//
// A run moves through four stages, parsing the invocation arguments, loading
// the file, matching lines and reporting them, and ends in either
// StageSuccess or StageFailed. No stage is retried or re-entered.
//
// Usage:
//
//	engine := grep.New(logger, loader.File{}, report.New(os.Stdout, report.Options{}))
//	if _, err := engine.Run(ctx, os.Args); err != nil {
//	    // handle error
//	}
package grep

import (
	"context"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/minigrep/internal/config"
	"github.com/gnoswap-labs/minigrep/internal/search"
	tt "github.com/gnoswap-labs/minigrep/internal/types"
)

// Loader reads the document to search.
type Loader interface {
	Load(path string) (*tt.Document, error)
}

// Reporter writes the matches of a run.
type Reporter interface {
	Report(cfg tt.Config, matches []tt.Match) error
}

// Result describes a finished run.
type Result struct {
	Config  tt.Config
	Matches []tt.Match
	Stage   Stage
}

// Engine wires the search stages together.
type Engine struct {
	logger   *zap.Logger
	loader   Loader
	reporter Reporter
}

// New creates an Engine. A nil logger disables logging.
func New(logger *zap.Logger, loader Loader, reporter Reporter) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:   logger,
		loader:   loader,
		reporter: reporter,
	}
}

// Run executes one search. args holds the program name followed by the
// query and the file path. A failing stage stops the run and is returned
// as a *Failure.
func (e *Engine) Run(ctx context.Context, args []string) (Result, error) {
	res := Result{Stage: StageParsing}

	fail := func(err error) (Result, error) {
		failed := res.Stage
		res.Stage = StageFailed
		e.logger.Debug("Run failed", zap.Stringer("stage", failed), zap.Error(err))
		return res, &Failure{Stage: failed, Err: err}
	}
	advance := func(next Stage) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.logger.Debug("Stage transition", zap.Stringer("from", res.Stage), zap.Stringer("to", next))
		res.Stage = next
		return nil
	}

	cfg, err := config.FromArgs(args)
	if err != nil {
		return fail(err)
	}
	res.Config = cfg
	e.logger.Debug("Searching", zap.String("query", cfg.Query), zap.String("path", cfg.Path))

	if err := advance(StageLoading); err != nil {
		return fail(err)
	}
	doc, err := e.loader.Load(cfg.Path)
	if err != nil {
		return fail(err)
	}

	if err := advance(StageMatching); err != nil {
		return fail(err)
	}
	res.Matches = search.Collect(cfg.Query, doc.Text)
	e.logger.Debug("Matched lines", zap.String("path", cfg.Path), zap.Int("matches", len(res.Matches)))

	if err := advance(StageReporting); err != nil {
		return fail(err)
	}
	if err := e.reporter.Report(cfg, res.Matches); err != nil {
		return fail(err)
	}

	res.Stage = StageSuccess
	return res, nil
}
