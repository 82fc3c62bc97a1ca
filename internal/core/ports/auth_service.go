package ports

import (
	"context"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
