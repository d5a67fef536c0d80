// pkg/enrich/enrich.go

// Package enrich fills package details asynchronously and moves packages
// from LOADING_DATA to READY once their data is available.
package enrich

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bauh-project/bauh/pkg/logging"
	"github.com/bauh-project/bauh/pkg/model"
)

// FetchFunc retrieves the missing data of pkg and sets it on the package
type FetchFunc func(ctx context.Context, pkg model.Package) error

// Enricher runs detail fetches with bounded concurrency
type Enricher struct {
	workers int
	logger  zerolog.Logger

	// OnReady is called after a package becomes READY. Calls are serialized.
	OnReady func(pkg model.Package)

	notifyMu sync.Mutex
}

// New creates an Enricher running at most workers fetches at once
func New(workers int) *Enricher {
	if workers < 1 {
		workers = 1
	}
	return &Enricher{
		workers: workers,
		logger:  logging.GetLogger("enrich"),
	}
}

// Report summarizes one Run
type Report struct {
	Ready  []model.Package // Packages that became READY
	Failed []model.Package // Packages whose fetch failed, still LOADING_DATA
}

// Run fetches every package in LOADING_DATA. Each package is touched by a
// single goroutine; callers must not read a package being enriched before
// Run returns or OnReady fires for it. Fetch errors are logged and reported,
// only context cancellation is returned as an error.
func (e *Enricher) Run(ctx context.Context, pkgs []model.Package, fetch FetchFunc) (*Report, error) {
	if fetch == nil {
		return nil, fmt.Errorf("enrich: fetch func cannot be nil")
	}

	done := logging.LogOperationStart(e.logger, "enrich")
	defer done()

	ready := make([]bool, len(pkgs))
	scheduled := make([]bool, len(pkgs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, pkg := range pkgs {
		if pkg == nil || !pkg.Common().IsLoading() {
			continue
		}
		if gCtx.Err() != nil {
			break
		}

		i, pkg := i, pkg
		scheduled[i] = true
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			if err := fetch(gCtx, pkg); err != nil {
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				e.logger.Warn().Err(err).
					Str("gem", pkg.Common().GemName).
					Str("package", pkg.Common().ID).
					Msg("Failed to load package data")
				return nil
			}

			pkg.Common().Status = model.StatusReady
			ready[i] = true
			e.notify(pkg)
			return nil
		})
	}

	err := g.Wait()

	report := &Report{}
	for i, pkg := range pkgs {
		switch {
		case ready[i]:
			report.Ready = append(report.Ready, pkg)
		case scheduled[i]:
			report.Failed = append(report.Failed, pkg)
		}
	}

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return report, fmt.Errorf("enrich: %w", err)
	}
	return report, nil
}

func (e *Enricher) notify(pkg model.Package) {
	if e.OnReady == nil {
		return
	}
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()
	e.OnReady(pkg)
}
