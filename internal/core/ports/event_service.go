package ports

import (
	"context"
	"time"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// ReturnEventInput is the DTO passed from the transport layer to
// EventService for a carrier status update.
type ReturnEventInput struct {
	ReturnID  string
	Status    string
	Timestamp time.Time
	Source    string
}

// EventService processes incoming carrier tracking events and serves
// the resulting audit trail.
type EventService interface {
	Process(ctx context.Context, event ReturnEventInput) error
	History(ctx context.Context, returnID, role, email string) ([]*domain.ReturnEvent, error)
}
