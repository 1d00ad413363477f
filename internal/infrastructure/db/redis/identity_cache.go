package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wellnesshub/employee-api/internal/api/metrics"
	"github.com/wellnesshub/employee-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// IdentityCache caches user records by email for the identity resolver.
// Key format: user:email:<email>
type IdentityCache struct {
	client *redis.Client
}

// NewIdentityCache creates an IdentityCache wrapping the given Redis client.
func NewIdentityCache(client *redis.Client) *IdentityCache {
	return &IdentityCache{client: client}
}

// cachedUser mirrors domain.User including the password hash, which the
// public JSON tags on domain.User deliberately omit.
type cachedUser struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"password_hash"`
	Department   string        `json:"department"`
	ManagerID    *int64        `json:"manager_id,omitempty"`
	Role         domain.Role   `json:"role"`
	Status       domain.Status `json:"status"`
	CreatedAt    int64         `json:"created_at"`
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *IdentityCache) Get(ctx context.Context, email string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(email)).Bytes()
	if err == redis.Nil {
		metrics.IdentityCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("identity cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, fmt.Errorf("identity cache decode: %w", err)
	}

	metrics.IdentityCacheTotal.WithLabelValues("hit").Inc()
	return &domain.User{
		ID:           cu.ID,
		Name:         cu.Name,
		Email:        cu.Email,
		PasswordHash: cu.PasswordHash,
		Department:   cu.Department,
		ManagerID:    cu.ManagerID,
		Role:         cu.Role,
		Status:       cu.Status,
		CreatedAt:    time.Unix(cu.CreatedAt, 0).UTC(),
	}, nil
}

// Set stores a user snapshot (expires after cacheTTL).
func (c *IdentityCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Department:   user.Department,
		ManagerID:    user.ManagerID,
		Role:         user.Role,
		Status:       user.Status,
		CreatedAt:    user.CreatedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("identity cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.Email), raw, cacheTTL).Err()
}

// Invalidate drops the cache entry for email. Called after every mutation so
// the resolver never serves a stale role or password hash past cacheTTL.
func (c *IdentityCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, c.key(email)).Err()
}

func (c *IdentityCache) key(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}
