package ports

import (
	"context"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// EventRepository persists carrier events to the audit trail.
type EventRepository interface {
	InsertEvent(ctx context.Context, event *domain.ReturnEvent) error
	ListByReturn(ctx context.Context, returnID string) ([]*domain.ReturnEvent, error)
}
