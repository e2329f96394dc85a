package align

import (
	"context"
	"errors"
	"testing"
)

func TestWorkerCount(t *testing.T) {
	cases := []struct {
		name           string
		items          int
		maxWorkers     int
		targetPerChunk int
		want           int
	}{
		{"small input uses one worker", 100, 8, 500, 1},
		{"large input hits the cap", 10000, 8, 500, 8},
		{"ideal below cap", 1500, 8, 500, 3},
		{"zero items", 0, 8, 500, 1},
		{"zero target", 100, 8, 0, 1},
		{"cap of one", 10000, 1, 500, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := workerCount(tc.items, tc.maxWorkers, tc.targetPerChunk); got != tc.want {
				t.Fatalf("workerCount(%d, %d, %d) = %d, expected %d",
					tc.items, tc.maxWorkers, tc.targetPerChunk, got, tc.want)
			}
		})
	}
}

func TestChunkSize(t *testing.T) {
	cases := []struct {
		name    string
		items   int
		workers int
		fanout  int
		want    int
	}{
		{"spreads across workers times fanout", 1000, 5, 4, 50},
		{"never below one", 3, 8, 4, 1},
		{"single worker", 100, 1, 4, 25},
		{"zero items", 0, 4, 4, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := chunkSize(tc.items, tc.workers, tc.fanout); got != tc.want {
				t.Fatalf("chunkSize(%d, %d, %d) = %d, expected %d",
					tc.items, tc.workers, tc.fanout, got, tc.want)
			}
		})
	}
}

func TestMapOrderedPreservesPositions(t *testing.T) {
	in := make([]int, 1000)
	for i := range in {
		in[i] = i
	}

	out, err := mapOrdered(context.Background(), in, 8, 7, func(in []int, out []int) error {
		for i, v := range in {
			out[i] = v * 2
		}
		return nil
	})
	if err != nil {
		t.Fatalf("mapOrdered returned error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d results, got %d", len(in), len(out))
	}
	for i, v := range out {
		if v != i*2 {
			t.Fatalf("position %d: expected %d, got %d", i, i*2, v)
		}
	}
}

func TestMapOrderedPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	in := make([]int, 100)

	out, err := mapOrdered(context.Background(), in, 4, 10, func(chunk []int, _ []int) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected chunk error to propagate, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on failure, got %v", out)
	}
}

func TestMapOrderedEmptyInput(t *testing.T) {
	out, err := mapOrdered(context.Background(), nil, 4, 10, func(_ []int, _ []int) error {
		t.Fatal("fn must not run for empty input")
		return nil
	})
	if err != nil {
		t.Fatalf("mapOrdered returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}
