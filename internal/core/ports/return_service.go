package ports

import (
	"context"
	"time"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// CreateReturnInput is the draft a client submits at the end of the wizard.
type CreateReturnInput struct {
	OrderID     string
	ClientEmail string
	Reason      domain.ReturnReason
	ReturnMode  domain.ReturnMode
	Description string
	ProofImage  string // opaque upload reference; required when reason is defective
	RequestDate time.Time
}

// ListReturnsInput carries the parameters for the list operation.
// Role and ClientEmail enforce scoping: clients only ever see their own.
type ListReturnsInput struct {
	Role        string
	ClientEmail string
	Status      string
	Search      string
}

// DashboardStats is the operator KPI snapshot, recomputed on every call.
type DashboardStats struct {
	Pending             int
	Processed           int
	AverageSatisfaction float64
	ReasonBreakdown     map[domain.ReturnReason]int
}

// ReturnService defines the lifecycle and query operations for return
// requests.
type ReturnService interface {
	CreateReturn(ctx context.Context, input CreateReturnInput) (*domain.ReturnRequest, error)
	GetReturn(ctx context.Context, id, role, clientEmail string) (*domain.ReturnRequest, error)
	ListReturns(ctx context.Context, input ListReturnsInput) ([]*domain.ReturnRequest, error)
	// TransitionStatus advances a request to newStatus at the given time,
	// recomputing progress and appending to the timeline. Illegal
	// transitions fail with domain.ErrInvalidTransition.
	TransitionStatus(ctx context.Context, id string, newStatus domain.ReturnStatus, at time.Time) (*domain.ReturnRequest, error)
	// RateReturn records the client's satisfaction score (1-5) once the
	// request is resolved.
	RateReturn(ctx context.Context, id, clientEmail string, score int) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
