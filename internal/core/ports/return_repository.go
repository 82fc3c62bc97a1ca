package ports

import (
	"context"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// ListReturnsFilter carries the query parameters for listing return
// requests. Filters compose with logical AND; zero values mean no filter.
type ListReturnsFilter struct {
	Status      string // "" or "all" = any status
	Search      string // case-insensitive substring match on id or client_email
	ClientEmail string // exact match, used to scope clients to their own returns
}

// ReturnRepository defines persistence operations for return requests.
// The collection is ordered most-recent-first; Append prepends.
type ReturnRepository interface {
	// Append stores a newly created request at the front of the collection.
	// Returns domain.ErrDuplicateReturn when the id is already present.
	Append(ctx context.Context, r *domain.ReturnRequest) error
	// FindByID retrieves a request by id.
	FindByID(ctx context.Context, id string) (*domain.ReturnRequest, error)
	// UpdateStatus atomically sets the new status and progress and appends
	// the timeline entry, preserving collection order.
	UpdateStatus(ctx context.Context, id string, status domain.ReturnStatus, progress int, entry domain.TimelineEntry) error
	// SetSatisfaction records the post-resolution rating.
	SetSatisfaction(ctx context.Context, id string, score int) error
	// List returns snapshot copies of all requests matching filter, in
	// stored order. Callers cannot mutate stored entries through the result.
	List(ctx context.Context, filter ListReturnsFilter) ([]*domain.ReturnRequest, error)
}
