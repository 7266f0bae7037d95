package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/naval41/discord-application/internal/pipeline"
	"go.uber.org/zap"
)

// blockingRunner parks inside Run until released, so a second sweep can
// be fired while the first is still in flight.
type blockingRunner struct {
	entered chan struct{}
	release chan struct{}

	mu   sync.Mutex
	runs int
}

func (r *blockingRunner) Run(context.Context) (*pipeline.SweepStats, error) {
	r.mu.Lock()
	r.runs++
	r.mu.Unlock()
	r.entered <- struct{}{}
	<-r.release
	return &pipeline.SweepStats{}, nil
}

func (r *blockingRunner) runCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

type countingRunner struct {
	runs int
}

func (r *countingRunner) Run(context.Context) (*pipeline.SweepStats, error) {
	r.runs++
	return &pipeline.SweepStats{}, nil
}

func TestOverlappingSweepSkipped(t *testing.T) {
	runner := &blockingRunner{entered: make(chan struct{}, 1), release: make(chan struct{})}
	holder := &pipeline.StatsHolder{}
	s := New(runner, holder, 1, zap.NewNop().Sugar())

	go s.runSweep(context.Background())
	<-runner.entered

	// fires while the first sweep is still in flight
	s.runSweep(context.Background())
	if got := runner.runCount(); got != 1 {
		t.Fatalf("expected the overlapping sweep to be skipped, got %d runs", got)
	}

	close(runner.release)
	for i := 0; holder.Last() == nil && i < 100; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if holder.Last() == nil {
		t.Fatalf("expected the first sweep to record its outcome")
	}
}

func TestSweepRunsAgainAfterCompletion(t *testing.T) {
	runner := &countingRunner{}
	holder := &pipeline.StatsHolder{}
	s := New(runner, holder, 1, zap.NewNop().Sugar())

	s.runSweep(context.Background())
	s.runSweep(context.Background())

	if runner.runs != 2 {
		t.Fatalf("expected sequential sweeps to both run, got %d", runner.runs)
	}
	if holder.Last() == nil {
		t.Fatalf("expected sweep outcome to be recorded")
	}
}
