package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"foodfinder/internal/domain"
)

// SearchController serializes the burst of text-change notifications a
// search box produces into at most one in-flight query at a time. A
// trigger arriving while a query is running waits its turn (waiters are
// served FIFO) and then queries with whatever the input holds at that
// moment, so the visible results always come from the latest completed
// query, never from an interleaving of two decodes.
type SearchController struct {
	client   domain.PlacesClient
	input    func() string
	onUpdate func([]domain.LitePoi)

	// weighted semaphore of size 1 rather than sync.Mutex: waiters are
	// FIFO and acquisition respects context cancellation.
	sem     *semaphore.Weighted
	results atomic.Pointer[[]domain.LitePoi]
}

// NewSearchController binds the controller to an input getter. The getter
// is re-read after the lock is acquired, not when the trigger fired, so a
// queued trigger picks up the newest text.
func NewSearchController(client domain.PlacesClient, input func() string) *SearchController {
	return &SearchController{
		client: client,
		input:  input,
		sem:    semaphore.NewWeighted(1),
	}
}

// SetOnUpdate registers a callback fired after every successful result
// replacement. Must be set before the first trigger.
func (s *SearchController) SetOnUpdate(fn func([]domain.LitePoi)) { s.onUpdate = fn }

// OnInputChanged runs one serialized search pass. An empty input issues
// no query and leaves the previous results in place. Errors propagate to
// the caller with the previous results untouched; the lock is released on
// every path.
func (s *SearchController) OnInputChanged(ctx context.Context) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.sem.Release(1)

	query := s.input()
	if query == "" {
		return nil
	}

	pois, err := s.client.SearchByText(ctx, query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	snapshot := make([]domain.LitePoi, len(pois))
	copy(snapshot, pois)
	s.results.Store(&snapshot)
	if s.onUpdate != nil {
		s.onUpdate(snapshot)
	}
	return nil
}

// Results returns the latest completed result set. The returned slice is
// a snapshot that is never mutated after publication.
func (s *SearchController) Results() []domain.LitePoi {
	if p := s.results.Load(); p != nil {
		return *p
	}
	return nil
}
