package ports

import (
	"context"

	"github.com/wellnesshub/employee-api/internal/core/domain"
)

// IdentityCache is a read-through cache of user records keyed by email,
// consulted by the identity resolver on every authenticated request. A miss
// or a cache failure must never fail a request on its own.
type IdentityCache interface {
	Get(ctx context.Context, email string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, email string) error
}
