package ports

import (
	"context"

	"github.com/wellnesshub/employee-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Department string
	ManagerID  *int64
	Role       domain.Role
	Status     domain.Status
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// IdentityResolver maps a verified subject claim back to a full identity.
type IdentityResolver interface {
	LoadByEmail(ctx context.Context, email string) (*domain.Identity, error)
}
