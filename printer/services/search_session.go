package services

import (
	"context"
	"sync"
	"time"

	"github.com/ygoproxy/ygoproxy/printer/utils"
)

// SearchSession runs searches for one input box. Starting a search cancels
// the one still in flight, so a stale result never overwrites a newer one.
type SearchSession struct {
	search   *SearchService
	debounce time.Duration

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewSearchSession(search *SearchService, debounce time.Duration) *SearchSession {
	return &SearchSession{search: search, debounce: debounce}
}

// Search waits out the debounce interval and runs the search. ok is false
// when a later call superseded this one or ctx was cancelled.
func (s *SearchSession) Search(ctx context.Context, filters utils.CardSearchFilters, page, pageSize int) (result *SearchResult, ok bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.mu.Unlock()

	if s.debounce > 0 {
		timer := time.NewTimer(s.debounce)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, false
		case <-timer.C:
		}
	}

	result = s.search.SearchAll(ctx, filters, page, pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || ctx.Err() != nil {
		return nil, false
	}
	s.cancel = nil
	return result, true
}

// Cancel abandons the search in flight, if any.
func (s *SearchSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}
