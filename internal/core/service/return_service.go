package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// ReturnService implements the return lifecycle engine and the dashboard
// query layer on top of the return store.
type ReturnService struct {
	repo    ports.ReturnRepository
	catalog ports.CatalogRepository
	logger  zerolog.Logger
}

func NewReturnService(repo ports.ReturnRepository, catalog ports.CatalogRepository, logger zerolog.Logger) *ReturnService {
	return &ReturnService{repo: repo, catalog: catalog, logger: logger}
}

// CreateReturn validates the draft, stamps identity and the initial
// lifecycle state, and appends the new request to the store. The wizard
// enforces the same rules upstream; the engine re-validates defensively.
func (s *ReturnService) CreateReturn(ctx context.Context, input ports.CreateReturnInput) (*domain.ReturnRequest, error) {
	if input.OrderID == "" {
		return nil, &domain.ValidationError{Field: "order_id"}
	}
	if input.ClientEmail == "" {
		return nil, &domain.ValidationError{Field: "client_email"}
	}
	if input.Reason == "" {
		return nil, &domain.ValidationError{Field: "reason"}
	}
	if input.ReturnMode == "" {
		return nil, &domain.ValidationError{Field: "return_mode"}
	}
	if input.Reason == domain.ReasonDefective && input.ProofImage == "" {
		return nil, domain.ErrMissingProof
	}

	if _, err := s.catalog.FindOrder(ctx, input.OrderID); err != nil {
		return nil, fmt.Errorf("create return: %w", err)
	}

	requestDate := input.RequestDate
	if requestDate.IsZero() {
		requestDate = time.Now().UTC()
	}

	r := &domain.ReturnRequest{
		ID:          generateReturnID(),
		OrderID:     input.OrderID,
		ClientEmail: input.ClientEmail,
		RequestDate: requestDate,
		Reason:      input.Reason,
		ProofImage:  input.ProofImage,
		Description: input.Description,
		ReturnMode:  input.ReturnMode,
		Status:      domain.StatusCreated,
		Progress:    domain.ProgressFor(domain.StatusCreated, 0),
		Timeline: []domain.TimelineEntry{
			{Status: domain.StatusCreated, Date: requestDate},
		},
	}

	if err := s.repo.Append(ctx, r); err != nil {
		s.logger.Error().Err(err).Str("return_id", r.ID).Msg("failed to store return request")
		return nil, err
	}

	s.logger.Info().
		Str("return_id", r.ID).
		Str("order_id", r.OrderID).
		Str("reason", string(r.Reason)).
		Msg("return request created")

	return r, nil
}

// GetReturn retrieves a single request. Clients only see their own; a
// request owned by someone else is reported as absent rather than leaked.
func (s *ReturnService) GetReturn(ctx context.Context, id, role, clientEmail string) (*domain.ReturnRequest, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleClient && r.ClientEmail != clientEmail {
		return nil, domain.ErrReturnNotFound
	}
	return r, nil
}

// ListReturns returns the filtered collection, stored order preserved.
func (s *ReturnService) ListReturns(ctx context.Context, input ports.ListReturnsInput) ([]*domain.ReturnRequest, error) {
	filter := ports.ListReturnsFilter{
		Status: input.Status,
		Search: input.Search,
	}
	if filter.Status == "all" {
		filter.Status = ""
	}
	if input.Role == domain.RoleClient {
		filter.ClientEmail = input.ClientEmail
	}
	return s.repo.List(ctx, filter)
}

// TransitionStatus advances a request along the lifecycle graph,
// recomputes progress from the fixed mapping and appends the timeline
// entry. Prior entries are never removed or reordered.
func (s *ReturnService) TransitionStatus(ctx context.Context, id string, newStatus domain.ReturnStatus, at time.Time) (*domain.ReturnRequest, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("transition status: %w", err)
	}

	if !r.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("transition status: %w (from %s to %s)", domain.ErrInvalidTransition, r.Status, newStatus)
	}

	if at.IsZero() {
		at = time.Now().UTC()
	}
	progress := domain.ProgressFor(newStatus, r.Progress)
	entry := domain.TimelineEntry{Status: newStatus, Date: at}

	if err := s.repo.UpdateStatus(ctx, id, newStatus, progress, entry); err != nil {
		s.logger.Error().Err(err).Str("return_id", id).Msg("failed to update return status")
		return nil, fmt.Errorf("transition status: %w", err)
	}

	r.Status = newStatus
	r.Progress = progress
	r.Timeline = append(r.Timeline, entry)

	s.logger.Info().
		Str("return_id", id).
		Str("status", string(newStatus)).
		Int("progress", progress).
		Msg("return status updated")

	return r, nil
}

// RateReturn records the externally supplied satisfaction score. Only the
// owning client may rate, only once, and only after resolution.
func (s *ReturnService) RateReturn(ctx context.Context, id, clientEmail string, score int) error {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if clientEmail != "" && r.ClientEmail != clientEmail {
		return domain.ErrForbidden
	}
	if !r.Status.IsTerminal() {
		return domain.ErrNotRatable
	}
	if r.Satisfaction != 0 {
		return domain.ErrAlreadyRated
	}
	if score < 1 || score > 5 {
		return &domain.ValidationError{Field: "satisfaction"}
	}
	return s.repo.SetSatisfaction(ctx, id, score)
}

// DashboardStats derives the operator KPIs from the full collection.
// Nothing is cached; every call recomputes from the store.
func (s *ReturnService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	all, err := s.repo.List(ctx, ports.ListReturnsFilter{})
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		ReasonBreakdown: make(map[domain.ReturnReason]int),
	}
	ratedSum, ratedCount := 0, 0
	for _, r := range all {
		switch r.Status {
		case domain.StatusCreated, domain.StatusValidated:
			stats.Pending++
		case domain.StatusRefunded, domain.StatusRefused:
			stats.Processed++
		}
		if r.Satisfaction > 0 {
			ratedSum += r.Satisfaction
			ratedCount++
		}
		stats.ReasonBreakdown[r.Reason]++
	}
	if ratedCount > 0 {
		stats.AverageSatisfaction = math.Round(float64(ratedSum)/float64(ratedCount)*10) / 10
	}
	// Zero-count reasons never enter the map, so the breakdown only lists
	// reasons actually in use.
	return stats, nil
}

// generateReturnID returns a unique return id in the format RET-<16 hex>.
func generateReturnID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("RET-%016X", time.Now().UnixNano())
	}
	return fmt.Sprintf("RET-%X", b)
}
