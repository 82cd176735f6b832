package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vivaha-events/backend/internal/models"
)

const (
	roleCacheKeyPrefix = "user_role:"
	roleCacheTTL       = 5 * time.Minute
	// roleCacheNone marks a cached "no role record" result so the lookup
	// still short-circuits for role-less principals.
	roleCacheNone = "<none>"
)

// RoleStore resolves and mutates user role records, with a Redis
// read-through cache in front of the user_roles table. The cache is
// invalidated on every role switch, never silently refreshed around one.
type RoleStore struct {
	pool   *pgxpool.Pool
	cache  *redis.Client
	logger *zap.Logger
}

// NewRoleStore creates a role store. cache may be nil; lookups then always
// hit the database.
func NewRoleStore(pool *pgxpool.Pool, cache *redis.Client, logger *zap.Logger) *RoleStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoleStore{pool: pool, cache: cache, logger: logger}
}

// Get returns the user's role, or "" when no role record exists. The empty
// role is not an error: a principal with no role record simply has no access
// to any role-gated area.
func (s *RoleStore) Get(ctx context.Context, userID uuid.UUID) (models.Role, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, roleCacheKeyPrefix+userID.String()).Result()
		if err == nil {
			if cached == roleCacheNone {
				return "", nil
			}
			return models.Role(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("role cache read failed", zap.Error(err))
		}
	}

	const q = `SELECT role FROM user_roles WHERE user_id = $1`
	var role string
	err := s.pool.QueryRow(ctx, q, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		s.cacheSet(ctx, userID, roleCacheNone)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get role: %w", err)
	}
	s.cacheSet(ctx, userID, role)
	return models.Role(role), nil
}

// Switch rewrites the user's role record. This is the explicit self-service
// role change; it upserts user_roles and drops the cache entry.
func (s *RoleStore) Switch(ctx context.Context, userID uuid.UUID, role models.Role) error {
	const q = `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role, updated_at = NOW()`
	if _, err := s.pool.Exec(ctx, q, userID, string(role)); err != nil {
		return fmt.Errorf("switch role: %w", err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *RoleStore) cacheSet(ctx context.Context, userID uuid.UUID, val string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, roleCacheKeyPrefix+userID.String(), val, roleCacheTTL).Err(); err != nil {
		s.logger.Warn("role cache write failed", zap.Error(err))
	}
}

func (s *RoleStore) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, roleCacheKeyPrefix+userID.String()).Err(); err != nil {
		s.logger.Warn("role cache invalidate failed", zap.Error(err))
	}
}
