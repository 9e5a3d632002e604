// Package workload implements the concurrency sweep: it dispatches batches
// of concurrent calls through the request executor and reduces their
// outcomes into per-level summaries.
package workload

import (
	"context"
	"sync"
	"time"

	"github.com/primebench/primebench/internal/client"
	"github.com/primebench/primebench/internal/config"
)

// Executor issues one logical call and reports its outcome as data.
// *client.Executor satisfies this; tests substitute fakes.
type Executor interface {
	Execute(ctx context.Context, n int) client.Outcome
}

// Coordinator runs measured batches of concurrent calls against a target.
//
// Its state machine is deliberately minimal: dispatch batch, await all,
// reduce. Retries live entirely inside the executor; the coordinator never
// cancels or rolls back a batch once launched.
type Coordinator struct {
	executor Executor
	n        int
	levels   []int

	// OnLevelComplete, when set, is invoked after each level's summary
	// is computed. Used for progress reporting during a sweep.
	OnLevelComplete func(Summary)
}

// NewCoordinator creates a coordinator for the given executor and run
// configuration.
func NewCoordinator(executor Executor, cfg *config.Run) *Coordinator {
	return &Coordinator{
		executor: executor,
		n:        cfg.N,
		levels:   append([]int(nil), cfg.Levels...),
	}
}

// RunLevel launches exactly concurrency invocations of the executor, all
// with the same parameter, waits for every one of them to finish, and
// reduces the outcomes into a Summary.
//
// Partial-failure tolerance is the core property here: one slow or failed
// call never aborts the batch or biases the measurement of the others.
// Zero successes yields SuccessRate 0 and empty Latencies, never an error.
func (c *Coordinator) RunLevel(ctx context.Context, concurrency int) Summary {
	outcomes := make(chan client.Outcome, concurrency)

	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes <- c.executor.Execute(ctx, c.n)
		}()
	}

	// Await all, then reduce. No streaming aggregation: outcomes complete
	// in any order and the reduction is order-independent.
	wg.Wait()
	wall := time.Since(start)
	close(outcomes)

	successes := 0
	latencies := make([]time.Duration, 0, concurrency)
	for outcome := range outcomes {
		if outcome.Success {
			successes++
			latencies = append(latencies, outcome.Elapsed)
		}
	}

	throughput := 0.0
	if wall > 0 {
		throughput = float64(concurrency) / wall.Seconds()
	}

	return Summary{
		Concurrency: concurrency,
		WallTime:    wall,
		Throughput:  throughput,
		SuccessRate: float64(successes) / float64(concurrency),
		Latencies:   latencies,
	}
}

// RunSweep runs each configured concurrency level to completion, strictly
// in order and never overlapping, so one level's load cannot contaminate
// the next level's measurement. It returns one Summary per level; a level
// where every call failed still produces a summary.
func (c *Coordinator) RunSweep(ctx context.Context) []Summary {
	summaries := make([]Summary, 0, len(c.levels))

	for _, level := range c.levels {
		summary := c.RunLevel(ctx, level)
		summaries = append(summaries, summary)

		if c.OnLevelComplete != nil {
			c.OnLevelComplete(summary)
		}
	}

	return summaries
}
