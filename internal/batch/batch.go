// Package batch builds profiles for many (benchmark, profile) pairs.
// Building and analyzing are pure functions over immutable inputs, so jobs
// run concurrently with no coordination beyond the worker limit.
package batch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/madbench/madbench/internal/analysis"
	"github.com/madbench/madbench/internal/profile"
	"github.com/madbench/madbench/internal/results"
)

// Job names one profile build: a benchmark's raw rows plus the registered
// profile to apply.
type Job struct {
	BenchID       string
	Rows          []results.Row
	Profile       string
	AllowedCombos map[profile.ComboKey]struct{}
}

// Outcome is the result of one job. Jobs that hit an unknown profile name or
// a no-data build are marked Skipped with a reason rather than failing the
// batch, so report generation over many benchmarks can leave gaps.
type Outcome struct {
	BenchID  string
	Profile  *profile.Profile
	Analysis *analysis.Analysis
	Skipped  bool
	Reason   string
}

// Run executes the jobs with at most workers in flight and returns outcomes
// in job order. Only unexpected errors (invalid configuration, cancellation)
// abort the batch.
func Run(ctx context.Context, reg *profile.Registry, jobs []Job, workers int) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]Outcome, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out := Outcome{BenchID: job.BenchID}
			cfg, err := reg.Get(job.Profile)
			if err != nil {
				if errors.Is(err, profile.ErrNotFound) {
					out.Skipped = true
					out.Reason = err.Error()
					outcomes[i] = out
					return nil
				}
				return err
			}

			p, err := profile.Build(job.Rows, job.BenchID, cfg, job.AllowedCombos)
			if err != nil {
				if errors.Is(err, profile.ErrNoData) {
					out.Skipped = true
					out.Reason = err.Error()
					outcomes[i] = out
					return nil
				}
				return err
			}

			out.Profile = p
			out.Analysis = analysis.Analyze(p)
			outcomes[i] = out
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
