package memory

import (
	"context"
	"sync"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// EventRepository keeps the carrier event audit trail in memory.
type EventRepository struct {
	mu     sync.Mutex
	events []*domain.ReturnEvent
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) InsertEvent(_ context.Context, event *domain.ReturnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *event
	r.events = append(r.events, &clone)
	return nil
}

// ListByReturn returns a snapshot of one return's audit trail, oldest
// first.
func (r *EventRepository) ListByReturn(_ context.Context, returnID string) ([]*domain.ReturnEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.ReturnEvent, 0)
	for _, e := range r.events {
		if e.ReturnID != returnID {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}
