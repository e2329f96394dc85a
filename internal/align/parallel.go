package align

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// workerCount sizes the pool from the workload: enough workers to hit the
// target chunk size, never more than maxWorkers, never fewer than one.
func workerCount(items, maxWorkers, targetPerChunk int) int {
	if items <= 0 || targetPerChunk <= 0 {
		return 1
	}
	ideal := (items + targetPerChunk - 1) / targetPerChunk
	workers := min(maxWorkers, ideal)
	return max(1, workers)
}

// chunkSize spreads the items across workers*fanout tasks so stragglers
// don't serialize the tail of the batch.
func chunkSize(items, workers, fanout int) int {
	if items <= 0 || workers <= 0 || fanout <= 0 {
		return 1
	}
	tasks := workers * fanout
	return max(1, (items+tasks-1)/tasks)
}

// mapOrdered applies fn to contiguous chunks of in, running up to workers
// chunks concurrently, and writes each result into the position of its source
// item. The call blocks until every chunk finishes; the first error cancels
// the remaining chunks and fails the whole map. Completion order never
// affects output order.
func mapOrdered[In, Out any](ctx context.Context, in []In, workers, chunk int, fn func(in []In, out []Out) error) ([]Out, error) {
	out := make([]Out, len(in))
	if len(in) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(in); start += chunk {
		start, end := start, min(start+chunk, len(in))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(in[start:end], out[start:end])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
