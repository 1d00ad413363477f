package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wellnesshub/employee-api/internal/core/domain"
	"github.com/wellnesshub/employee-api/internal/core/ports"
)

// IdentityResolver maps a verified subject claim to a full identity view,
// going through the identity cache before hitting the credential store.
type IdentityResolver struct {
	repo  ports.UserRepository
	cache ports.IdentityCache
	log   zerolog.Logger
}

func NewIdentityResolver(repo ports.UserRepository, cache ports.IdentityCache, log zerolog.Logger) *IdentityResolver {
	return &IdentityResolver{repo: repo, cache: cache, log: log}
}

// LoadByEmail returns the identity for the user with the given email, or
// domain.ErrUserNotFound when no such user exists. Cache failures degrade to
// a repository read.
func (r *IdentityResolver) LoadByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if r.cache != nil {
		if user, err := r.cache.Get(ctx, email); err == nil && user != nil {
			return domain.NewIdentity(user), nil
		}
	}

	user, err := r.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, user); err != nil {
			r.log.Warn().Err(err).Str("email", email).Msg("identity cache set failed")
		}
	}

	return domain.NewIdentity(user), nil
}
