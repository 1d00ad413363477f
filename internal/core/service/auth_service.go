package service

import (
	"context"
	"time"

	"github.com/wellnesshub/employee-api/internal/core/domain"
	"github.com/wellnesshub/employee-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	hasher *Hasher
	events ports.EventSink
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, hasher *Hasher, events ports.EventSink) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, hasher: hasher, events: events}
}

// Register creates a new user with a freshly hashed password. Registering an
// email that already exists fails with domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Department:   input.Department,
		ManagerID:    input.ManagerID,
		Role:         input.Role,
		Status:       input.Status,
		CreatedAt:    time.Now().UTC(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(ports.UserEvent{Email: created.Email, Action: ports.UserEventRegistered})
	}
	return created, nil
}

// Login verifies the credentials and returns a freshly issued bearer token.
// An unknown email fails with domain.ErrUserNotFound, a wrong password with
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrUserNotFound
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email, string(user.Role))
}
