// Package tracker wraps the Postgres visited ledger with an optional
// Redis fast path. Postgres is always the source of truth; Redis only
// short-circuits lookups for recently marked posts.
package tracker

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const visitedSetKey = "lc:visited_posts"

// Ledger is the durable side of the tracker.
type Ledger interface {
	IsPostVisited(ctx context.Context, postID string) (bool, error)
	MarkPostVisited(ctx context.Context, postID string) error
}

type Tracker struct {
	ledger Ledger
	rdb    *redis.Client // nil when Redis is not configured
	logger *zap.SugaredLogger
}

func New(ledger Ledger, rdb *redis.Client, logger *zap.SugaredLogger) *Tracker {
	return &Tracker{ledger: ledger, rdb: rdb, logger: logger}
}

// IsVisited checks Redis first, then Postgres. A Redis error degrades to
// the ledger rather than failing the post.
func (t *Tracker) IsVisited(ctx context.Context, postID string) (bool, error) {
	if t.rdb != nil {
		hit, err := t.rdb.SIsMember(ctx, visitedSetKey, postID).Result()
		if err != nil {
			t.logger.Warnw("redis visited check failed, falling back to postgres", "err", err)
		} else if hit {
			return true, nil
		}
	}

	visited, err := t.ledger.IsPostVisited(ctx, postID)
	if err != nil {
		return false, err
	}
	if visited && t.rdb != nil {
		// backfill so the next sweep skips the ledger round-trip
		if err := t.rdb.SAdd(ctx, visitedSetKey, postID).Err(); err != nil {
			t.logger.Warnw("redis visited backfill failed", "err", err)
		}
	}
	return visited, nil
}

// MarkVisited writes the ledger first; the Redis mirror is best-effort.
func (t *Tracker) MarkVisited(ctx context.Context, postID string) error {
	if err := t.ledger.MarkPostVisited(ctx, postID); err != nil {
		return err
	}
	if t.rdb != nil {
		if err := t.rdb.SAdd(ctx, visitedSetKey, postID).Err(); err != nil {
			t.logger.Warnw("redis visited mark failed", "err", err)
		}
	}
	return nil
}
