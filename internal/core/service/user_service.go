package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wellnesshub/employee-api/internal/core/domain"
	"github.com/wellnesshub/employee-api/internal/core/ports"
)

// UserService implements profile self-service and admin user administration.
type UserService struct {
	repo   ports.UserRepository
	cache  ports.IdentityCache
	hasher *Hasher
	events ports.EventSink
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache ports.IdentityCache, hasher *Hasher, events ports.EventSink, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, hasher: hasher, events: events, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// DeleteUser removes the user by id. Deleting an unknown id fails with
// domain.ErrUserNotFound; there is no soft delete.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.afterMutation(ctx, user.Email, ports.UserEventDeleted)
	return nil
}

// UpdateProfile applies the self-service update: name, department and a
// rehashed password. The user is located by email.
func (s *UserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) error {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return err
	}

	user.Name = input.Name
	user.Department = input.Department
	user.PasswordHash = hash

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.afterMutation(ctx, user.Email, ports.UserEventUpdated)
	return nil
}

// UpdateUserAdmin applies the admin-level update: status, department and role.
func (s *UserService) UpdateUserAdmin(ctx context.Context, input ports.UpdateUserAdminInput) error {
	if !input.Role.Valid() || !input.Status.Valid() {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	user.Status = input.Status
	user.Department = input.Department
	user.Role = input.Role

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.afterMutation(ctx, user.Email, ports.UserEventUpdated)
	return nil
}

// afterMutation drops the stale cache entry and publishes a lifecycle event.
func (s *UserService) afterMutation(ctx context.Context, email, action string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("identity cache invalidation failed")
		}
	}
	if s.events != nil {
		s.events.Publish(ports.UserEvent{Email: email, Action: action})
	}
}
