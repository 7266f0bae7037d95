package repository

import (
	"context"
	"fmt"
)

// EnsureVisitedTable creates the idempotency ledger on first boot.
func (r *Repository) EnsureVisitedTable(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS leetcode_visited_posts (
	post_id TEXT PRIMARY KEY,
	visited_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	if _, err := r.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("create visited table: %w", err)
	}
	return nil
}

func (r *Repository) IsPostVisited(ctx context.Context, postID string) (bool, error) {
	const q = `SELECT 1 FROM leetcode_visited_posts WHERE post_id = $1`
	var one int
	err := r.db.QueryRow(ctx, q, postID).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("query visited post: %w", err)
	}
	return true, nil
}

// MarkPostVisited is insert-if-absent: marking a post twice is a no-op.
func (r *Repository) MarkPostVisited(ctx context.Context, postID string) error {
	const q = `INSERT INTO leetcode_visited_posts (post_id) VALUES ($1) ON CONFLICT (post_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, q, postID); err != nil {
		return fmt.Errorf("mark post visited: %w", err)
	}
	return nil
}
