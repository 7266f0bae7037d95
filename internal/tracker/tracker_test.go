package tracker

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

type memLedger struct {
	seen map[string]bool
}

func (m *memLedger) IsPostVisited(_ context.Context, postID string) (bool, error) {
	return m.seen[postID], nil
}

func (m *memLedger) MarkPostVisited(_ context.Context, postID string) error {
	m.seen[postID] = true
	return nil
}

// The tracker must work without Redis; Postgres alone is the source of
// truth.
func TestTrackerWithoutRedis(t *testing.T) {
	ledger := &memLedger{seen: make(map[string]bool)}
	tr := New(ledger, nil, zap.NewNop().Sugar())
	ctx := context.Background()

	visited, err := tr.IsVisited(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if visited {
		t.Fatalf("expected p1 to be unvisited")
	}

	if err := tr.MarkVisited(ctx, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	visited, err = tr.IsVisited(ctx, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !visited {
		t.Fatalf("expected p1 to be visited after marking")
	}
}

func TestMarkVisitedIdempotent(t *testing.T) {
	ledger := &memLedger{seen: make(map[string]bool)}
	tr := New(ledger, nil, zap.NewNop().Sugar())
	ctx := context.Background()

	if err := tr.MarkVisited(ctx, "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.MarkVisited(ctx, "p1"); err != nil {
		t.Fatalf("marking twice must be a no-op, got: %v", err)
	}
}
