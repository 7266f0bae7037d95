package pipeline

import (
	"sync"
	"time"
)

// SweepStats summarizes one sweep for logs and the status endpoint.
type SweepStats struct {
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	PagesFetched   int       `json:"pages_fetched"`
	SkippedVisited int       `json:"skipped_visited"`
	NotInterview   int       `json:"not_interview"`
	NoCompany      int       `json:"no_company"`
	NoRole         int       `json:"no_role"`
	Persisted      int       `json:"persisted"`
	RetryLater     int       `json:"retry_later"`
	Error          string    `json:"error,omitempty"`
}

func (s *SweepStats) record(out outcome) {
	switch out {
	case outcomeSkippedVisited:
		s.SkippedVisited++
	case outcomeNotInterview:
		s.NotInterview++
	case outcomeNoCompany:
		s.NoCompany++
	case outcomeNoRole:
		s.NoRole++
	case outcomePersisted:
		s.Persisted++
	case outcomeRetryLater:
		s.RetryLater++
	}
}

// StatsHolder publishes the most recent sweep outcome; written by the
// scheduler, read by the status server.
type StatsHolder struct {
	mu   sync.RWMutex
	last *SweepStats
}

func (h *StatsHolder) Set(s *SweepStats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = s
}

func (h *StatsHolder) Last() *SweepStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}
