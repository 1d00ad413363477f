package ports

import (
	"context"

	"github.com/wellnesshub/employee-api/internal/core/domain"
)

// UpdateProfileInput is the self-service update: the user is located by email
// and may change name, department and password.
type UpdateProfileInput struct {
	Email      string
	Name       string
	Department string
	Password   string
}

// UpdateUserAdminInput is the admin-level update: status, department and role.
type UpdateUserAdminInput struct {
	Email      string
	Department string
	Role       domain.Role
	Status     domain.Status
}

type UserService interface {
	GetProfile(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UpdateProfile(ctx context.Context, input UpdateProfileInput) error
	UpdateUserAdmin(ctx context.Context, input UpdateUserAdminInput) error
}
