// Package app implements the application layer for sanity.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/sanity/internal/adapters/telemetry"
	"go.trai.ch/sanity/internal/core/domain"
	"go.trai.ch/sanity/internal/core/ports"
	"go.trai.ch/sanity/internal/engine/sanity"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	resolver       ports.SnapshotResolver
	snapshotLoader ports.SnapshotLoader
	checker        *sanity.Checker
	telemetry      ports.Telemetry
	logger         ports.Logger
	out            io.Writer
}

// CheckOptions configures a check run.
type CheckOptions struct {
	// ConfigPath is the configuration file. Empty means the default file name.
	ConfigPath string
	// EstimateSize forces size estimation on regardless of the configuration.
	EstimateSize bool
}

// Report is the outcome of checking a single snapshot.
type Report struct {
	Path     string
	Entries  int
	Findings []domain.Insanity
	Expected []domain.ExpectedInsanity
}

// New creates a new App instance. A nil resolver checks the given paths as they are.
func New(
	configLoader ports.ConfigLoader,
	resolver ports.SnapshotResolver,
	snapshotLoader ports.SnapshotLoader,
	checker *sanity.Checker,
	tel ports.Telemetry,
	logger ports.Logger,
) *App {
	if tel == nil {
		tel = telemetry.NewNoOp()
	}
	return &App{
		configLoader:   configLoader,
		resolver:       resolver,
		snapshotLoader: snapshotLoader,
		checker:        checker,
		telemetry:      tel,
		logger:         logger,
		out:            os.Stdout,
	}
}

// WithOutput sets the writer findings are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Check resolves paths into snapshot files, checks them in parallel and prints
// the findings in the order the paths were given. It returns
// domain.ErrInsanityFound when any finding is not covered by an expected rule.
func (a *App) Check(ctx context.Context, paths []string, opts CheckOptions) ([]Report, error) {
	// 1. Validate input
	if len(paths) == 0 {
		return nil, domain.ErrNoSnapshotsSpecified
	}

	// 2. Resolve the snapshot files
	if a.resolver != nil {
		resolved, err := a.resolver.Resolve(paths)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve snapshots")
		}
		paths = resolved
	}

	// 3. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	a.checker.SetEstimateSize(cfg.EstimateSize || opts.EstimateSize)

	// 4. Check the snapshots
	reports := make([]Report, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			report, err := a.checkSnapshot(gctx, path, cfg)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "sanity check failed")
	}

	// 5. Report
	unexpected := 0
	for _, report := range reports {
		for _, expected := range report.Expected {
			a.logger.Info(fmt.Sprintf("%s: suppressed %s finding %s (%s)",
				report.Path, expected.OriginalType(), expected.Fingerprint(), expected.Reason))
		}
		for _, finding := range report.Findings {
			if _, err := fmt.Fprintf(a.out, "%s %s", report.Path, finding); err != nil {
				return reports, zerr.Wrap(err, "failed to write report")
			}
		}
		unexpected += len(report.Findings)
	}

	if unexpected > 0 {
		return reports, zerr.With(zerr.Wrap(domain.ErrInsanityFound, "sanity check failed"), "count", unexpected)
	}
	return reports, nil
}

func (a *App) checkSnapshot(ctx context.Context, path string, cfg *domain.Config) (report Report, err error) {
	_, vertex := a.telemetry.Record(ctx, "check "+path)
	defer func() { vertex.Complete(err) }()

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	entries, err := a.snapshotLoader.Load(path)
	if err != nil {
		return Report{}, zerr.Wrap(err, "failed to load snapshot")
	}

	findings, err := a.checker.Check(entries...)
	if err != nil {
		return Report{}, zerr.With(zerr.Wrap(err, "failed to check snapshot"), "path", path)
	}

	unexpected, expected := cfg.Classify(findings)
	_, _ = fmt.Fprintf(vertex.Stdout(), "%d entries, %d findings, %d expected\n",
		len(entries), len(unexpected), len(expected))
	a.logger.Info(fmt.Sprintf("checked %s: %d entries, %d findings, %d expected",
		path, len(entries), len(unexpected), len(expected)))

	return Report{
		Path:     path,
		Entries:  len(entries),
		Findings: unexpected,
		Expected: expected,
	}, nil
}
