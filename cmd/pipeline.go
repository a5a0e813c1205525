package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lakshaymaurya-felt/buildmole/internal/config"
	"github.com/lakshaymaurya-felt/buildmole/internal/filter"
	"github.com/lakshaymaurya-felt/buildmole/internal/pool"
	"github.com/lakshaymaurya-felt/buildmole/internal/ui"
)

// pipeline holds everything a scan-based command needs: the canonical root,
// the compiled filter, and the shared worker pool.
type pipeline struct {
	root    string
	filter  *filter.Filter
	pool    *pool.Pool
	noColor bool
}

// color reports whether styled output should be used.
func (p *pipeline) color() bool {
	return !p.noColor && ui.IsTTY()
}

// newPipeline canonicalizes the root argument, merges config-file patterns
// with flag patterns, and compiles the filter. The core always receives a
// resolved absolute path.
func newPipeline(args, includes, excludes []string, workers int) (*pipeline, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", path, err)
	}
	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", path, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	f, err := filter.New(
		append(append([]string{}, cfg.Include...), includes...),
		append(append([]string{}, cfg.Exclude...), excludes...),
	)
	if err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = cfg.Workers
	}

	return &pipeline{
		root:    root,
		filter:  f,
		pool:    pool.New(workers),
		noColor: cfg.NoColor,
	}, nil
}
