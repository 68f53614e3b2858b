package simulation

import (
	"context"
	"runtime"

	"fair-mcs/internal/model"
	"fair-mcs/internal/rng"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BatchJob is one assessment in a batch run.
type BatchJob struct {
	ID     string                 `json:"id"`
	Inputs model.AssessmentInputs `json:"inputs"`
}

// BatchResult pairs a job ID with its simulation output.
type BatchResult struct {
	ID      string                   `json:"id"`
	Results *model.SimulationResults `json:"results"`
}

// SourceFactory creates the random source for the job at index i. It is
// called once per job, so every concurrent simulation gets its own source.
type SourceFactory func(i int) rng.Source

// SeededSources derives one deterministic source per job from a base seed.
func SeededSources(seed int64) SourceFactory {
	return func(i int) rng.Source {
		return rng.NewSeeded(seed + int64(i))
	}
}

// RunBatch simulates jobs concurrently, at most concurrency at a time, and
// returns results in job order. Jobs without an ID get a random one. A
// cancelled ctx stops scheduling further jobs; a running simulation always
// completes.
func RunBatch(ctx context.Context, jobs []BatchJob, iterations, concurrency int, sources SourceFactory) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	if sources == nil {
		sources = func(int) rng.Source { return rng.NewDefault() }
	}

	results := make([]BatchResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		src := sources(i)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := NewEngine(src).Simulate(job.Inputs, iterations)
			if err != nil {
				log.Error().Err(err).Str("job", job.ID).Msg("Batch job failed")
				return err
			}
			results[i] = BatchResult{ID: job.ID, Results: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
