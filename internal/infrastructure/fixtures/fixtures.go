// Package fixtures holds the demo seed data the prototype boots with: two
// identities, a small catalog, the client's eligible orders and a couple
// of pre-existing return requests.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

const (
	DemoClientEmail    = "client@example.com"
	DemoClientPassword = "client123"
	DemoAdminEmail     = "admin@example.com"
	DemoAdminPassword  = "admin123"
)

// Users returns the two demo identities with freshly hashed passwords.
func Users() ([]*domain.User, error) {
	clientHash, err := bcrypt.GenerateFromPassword([]byte(DemoClientPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("fixtures: hash client password: %w", err)
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(DemoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("fixtures: hash admin password: %w", err)
	}

	return []*domain.User{
		{
			Name:         "Ahmed Bennani",
			Email:        DemoClientEmail,
			PasswordHash: string(clientHash),
			Role:         domain.RoleClient,
			Phone:        "+212 600 000 000",
			City:         "Casablanca",
			Avatar:       "https://picsum.photos/200/200",
		},
		{
			Name:         "Logistique Maroc S.A.R.L",
			Email:        DemoAdminEmail,
			PasswordHash: string(adminHash),
			Role:         domain.RoleAdmin,
			Phone:        "+212 500 000 000",
			City:         "Rabat",
			Avatar:       "https://picsum.photos/201/201",
		},
	}, nil
}

// Products returns the demo catalog.
func Products() []*domain.Product {
	return []*domain.Product{
		{
			SKU:         "PRD-001",
			Name:        "Smartphone Atlas X1",
			Category:    "Électronique",
			Price:       2500,
			Image:       "https://picsum.photos/300/300?random=1",
			Description: "Smartphone haute performance conçu au Maroc.",
		},
		{
			SKU:         "PRD-002",
			Name:        "Cafetière Express",
			Category:    "Électroménager",
			Price:       800,
			Image:       "https://picsum.photos/300/300?random=2",
			Description: "Cafetière automatique compatible capsules.",
		},
		{
			SKU:         "PRD-003",
			Name:        "Chaussures Cuir Fès",
			Category:    "Mode",
			Price:       450,
			Image:       "https://picsum.photos/300/300?random=3",
			Description: "Cuir véritable fait main.",
		},
	}
}

// Orders returns the demo client's past purchases.
func Orders() []*domain.Order {
	return []*domain.Order{
		{
			ID:             "CMD-2023-884",
			ClientEmail:    DemoClientEmail,
			ProductSKU:     "PRD-001",
			PurchaseDate:   date(2023, 10, 1),
			Status:         "Livré",
			ReturnDeadline: date(2023, 11, 1),
		},
		{
			ID:             "CMD-2023-992",
			ClientEmail:    DemoClientEmail,
			ProductSKU:     "PRD-002",
			PurchaseDate:   date(2023, 10, 15),
			Status:         "Livré",
			ReturnDeadline: date(2023, 11, 15),
		},
		{
			ID:             "CMD-2023-995",
			ClientEmail:    DemoClientEmail,
			ProductSKU:     "PRD-003",
			PurchaseDate:   date(2023, 10, 20),
			Status:         "Livré",
			ReturnDeadline: date(2023, 11, 20),
		},
	}
}

// Returns builds the pre-existing return requests. Progress and timelines
// are derived through the lifecycle mapping so the seeds satisfy the same
// invariants as live data.
func Returns() []*domain.ReturnRequest {
	inProgress := &domain.ReturnRequest{
		ID:          "RET-001",
		OrderID:     "CMD-2023-884",
		ClientEmail: DemoClientEmail,
		RequestDate: date(2023, 10, 25),
		Reason:      domain.ReasonDefective,
		ProofImage:  "uploads/ret-001-proof.jpg",
		ReturnMode:  domain.ModeHomePickup,
		Status:      domain.StatusCreated,
		Timeline: []domain.TimelineEntry{
			{Status: domain.StatusCreated, Date: date(2023, 10, 25)},
		},
	}
	advance(inProgress, domain.StatusValidated, date(2023, 10, 26))
	advance(inProgress, domain.StatusCollected, date(2023, 10, 27))
	advance(inProgress, domain.StatusReceived, date(2023, 10, 27))
	advance(inProgress, domain.StatusProcessing, date(2023, 10, 28))
	inProgress.Satisfaction = 4

	fresh := &domain.ReturnRequest{
		ID:          "RET-002",
		OrderID:     "CMD-2023-992",
		ClientEmail: "another@example.com",
		RequestDate: date(2023, 10, 26),
		Reason:      domain.ReasonChangeMind,
		ReturnMode:  domain.ModeRelayPoint,
		Status:      domain.StatusCreated,
		Timeline: []domain.TimelineEntry{
			{Status: domain.StatusCreated, Date: date(2023, 10, 26)},
		},
	}

	// Append order is oldest-first; the store prepends, so the freshest
	// request ends up at the front.
	return []*domain.ReturnRequest{inProgress, fresh}
}

// Seed loads the fixture data into the given repositories. Repositories
// already holding a conflicting record report it; seeding is expected to
// run once against an empty store.
func Seed(ctx context.Context, users ports.AuthRepository, returns ports.ReturnRepository) error {
	seedUsers, err := Users()
	if err != nil {
		return err
	}
	for _, u := range seedUsers {
		if _, err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("fixtures: seed user %s: %w", u.Email, err)
		}
	}
	for _, r := range Returns() {
		if err := returns.Append(ctx, r); err != nil {
			return fmt.Errorf("fixtures: seed return %s: %w", r.ID, err)
		}
	}
	return nil
}

func advance(r *domain.ReturnRequest, status domain.ReturnStatus, at time.Time) {
	r.Status = status
	r.Progress = domain.ProgressFor(status, r.Progress)
	r.Timeline = append(r.Timeline, domain.TimelineEntry{Status: status, Date: at})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
