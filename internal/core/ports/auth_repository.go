package ports

import (
	"context"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Email is the
// unique key.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
