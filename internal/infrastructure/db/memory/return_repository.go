// Package memory provides the process-memory adapters the prototype runs
// on by default. All state lives in the owning repository and is guarded
// by a single mutex; every read hands out copies so callers can only
// mutate through the repository's own operations.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// ReturnRepository keeps return requests in an ordered slice,
// most-recent-first.
type ReturnRepository struct {
	mu      sync.RWMutex
	returns []*domain.ReturnRequest
	byID    map[string]*domain.ReturnRequest
}

func NewReturnRepository() *ReturnRepository {
	return &ReturnRepository{byID: make(map[string]*domain.ReturnRequest)}
}

// Append stores a new request at the front of the collection.
func (r *ReturnRepository) Append(_ context.Context, req *domain.ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[req.ID]; exists {
		return domain.ErrDuplicateReturn
	}
	stored := cloneReturn(req)
	r.returns = append([]*domain.ReturnRequest{stored}, r.returns...)
	r.byID[req.ID] = stored
	return nil
}

func (r *ReturnRepository) FindByID(_ context.Context, id string) (*domain.ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReturnNotFound
	}
	return cloneReturn(stored), nil
}

// UpdateStatus replaces status and progress and appends the timeline
// entry in place, preserving collection order.
func (r *ReturnRepository) UpdateStatus(_ context.Context, id string, status domain.ReturnStatus, progress int, entry domain.TimelineEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return domain.ErrReturnNotFound
	}
	stored.Status = status
	stored.Progress = progress
	stored.Timeline = append(stored.Timeline, entry)
	return nil
}

func (r *ReturnRepository) SetSatisfaction(_ context.Context, id string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return domain.ErrReturnNotFound
	}
	stored.Satisfaction = score
	return nil
}

// List returns snapshot copies of all matching requests in stored order.
func (r *ReturnRepository) List(_ context.Context, filter ports.ListReturnsFilter) ([]*domain.ReturnRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.ReturnRequest, 0, len(r.returns))
	for _, stored := range r.returns {
		if !matches(stored, filter) {
			continue
		}
		matched = append(matched, cloneReturn(stored))
	}
	return matched, nil
}

func matches(req *domain.ReturnRequest, f ports.ListReturnsFilter) bool {
	if f.Status != "" && string(req.Status) != f.Status {
		return false
	}
	if f.ClientEmail != "" && req.ClientEmail != f.ClientEmail {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		idMatch := strings.Contains(strings.ToLower(req.ID), term)
		emailMatch := strings.Contains(strings.ToLower(req.ClientEmail), term)
		if !idMatch && !emailMatch {
			return false
		}
	}
	return true
}

func cloneReturn(req *domain.ReturnRequest) *domain.ReturnRequest {
	clone := *req
	clone.Timeline = make([]domain.TimelineEntry, len(req.Timeline))
	copy(clone.Timeline, req.Timeline)
	return &clone
}
