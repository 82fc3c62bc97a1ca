package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// DedupChecker abstracts the idempotency store for carrier events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, returnID, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, returnID, status string, ts time.Time) error
}

type eventService struct {
	returnRepo ports.ReturnRepository
	eventRepo  ports.EventRepository
	dedup      DedupChecker
	log        zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(
	returnRepo ports.ReturnRepository,
	eventRepo ports.EventRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{
		returnRepo: returnRepo,
		eventRepo:  eventRepo,
		dedup:      dedup,
		log:        log,
	}
}

// Process validates, deduplicates, and applies a single carrier event.
// The event goes through the same lifecycle rules as an operator action:
// legality check, progress recomputation, timeline append.
func (s *eventService) Process(ctx context.Context, in ports.ReturnEventInput) error {
	newStatus := domain.ReturnStatus(in.Status)

	isDup, err := s.dedup.IsDuplicate(ctx, in.ReturnID, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("return_id", in.ReturnID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("return_id", in.ReturnID).Str("status", in.Status).Msg("duplicate event skipped")
		return nil
	}

	r, err := s.returnRepo.FindByID(ctx, in.ReturnID)
	if err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	if !r.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("process event: %w (from %s to %s)", domain.ErrInvalidTransition, r.Status, newStatus)
	}

	// Mark before writing so a crashed retry does not apply the hop twice.
	if markErr := s.dedup.Mark(ctx, in.ReturnID, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("return_id", in.ReturnID).Msg("failed to set dedup key")
	}

	progress := domain.ProgressFor(newStatus, r.Progress)
	entry := domain.TimelineEntry{Status: newStatus, Date: in.Timestamp}
	if err := s.returnRepo.UpdateStatus(ctx, in.ReturnID, newStatus, progress, entry); err != nil {
		return fmt.Errorf("process event: update status: %w", err)
	}

	// Audit trail insert is non-fatal.
	auditEvent := &domain.ReturnEvent{
		ID:        uuid.NewString(),
		ReturnID:  in.ReturnID,
		Status:    newStatus,
		Timestamp: in.Timestamp,
		Source:    in.Source,
	}
	if err := s.eventRepo.InsertEvent(ctx, auditEvent); err != nil {
		s.log.Warn().Err(err).Str("return_id", in.ReturnID).Msg("failed to insert audit event")
	}

	s.log.Info().
		Str("return_id", in.ReturnID).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("carrier event processed")

	return nil
}

// History returns the audit trail for one return, oldest first. Clients
// only see trails of their own requests.
func (s *eventService) History(ctx context.Context, returnID, role, email string) ([]*domain.ReturnEvent, error) {
	r, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, fmt.Errorf("event history: %w", err)
	}
	if role == domain.RoleClient && r.ClientEmail != email {
		return nil, domain.ErrForbidden
	}
	return s.eventRepo.ListByReturn(ctx, returnID)
}
