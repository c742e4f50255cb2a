package domain

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	m "heurun.dev/pkg/heurun/internal/model"
)

// Scheduler fans the case pipeline out over a bounded worker pool. Cases are
// independent and homogeneous: any completion order is acceptable internally,
// and results are handed out re-sorted into ascending case order.
type Scheduler interface {
	// Run executes every case and returns all results in the order of the
	// given cases. onResult, when non-nil, is invoked from a single
	// goroutine for each result as soon as every earlier case has also
	// completed, so callers observe results in case order while the run is
	// still in flight. A failing case never cancels its siblings.
	Run(ctx context.Context, cases []m.CaseID, onResult func(m.CaseResult)) ([]m.CaseResult, error)
}

type scheduler struct {
	pipeline Pipeline
	threads  int
}

// NewScheduler constructs a Scheduler running at most threads case pipelines
// concurrently. Thread counts below 1 are raised to 1.
func NewScheduler(pipeline Pipeline, threads int) Scheduler {
	if threads < 1 {
		threads = 1
	}

	return &scheduler{pipeline: pipeline, threads: threads}
}

type indexedResult struct {
	index  int
	result m.CaseResult
}

func (s *scheduler) Run(ctx context.Context, cases []m.CaseID, onResult func(m.CaseResult)) ([]m.CaseResult, error) {
	n := len(cases)
	results := make([]m.CaseResult, n)

	completed := make(chan indexedResult, s.threads)
	collectorDone := make(chan struct{})

	// Single collector goroutine: buffers out-of-order completions and
	// releases them strictly in case order.
	go func() {
		defer close(collectorDone)

		pending := make([]*m.CaseResult, n)
		next := 0

		for done := range completed {
			result := done.result
			pending[done.index] = &result

			for next < n && pending[next] != nil {
				results[next] = *pending[next]

				if onResult != nil {
					onResult(results[next])
				}

				next++
			}
		}
	}()

	var group errgroup.Group
	group.SetLimit(s.threads)

	for i, id := range cases {
		i, id := i, id
		group.Go(func() error {
			slog.Debug("Running case", "case", id.String())

			completed <- indexedResult{index: i, result: s.pipeline.RunCase(ctx, id)}

			return nil
		})
	}

	// Workers never return errors: per-case failures live in the results.
	_ = group.Wait()

	close(completed)
	<-collectorDone

	return results, ctx.Err()
}
