package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/errx"
	"github.com/nikolayk812/storefront/internal/port"
	logx "github.com/nikolayk812/storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedisStore keeps every session for ttl after its last save. Zero ttl never expires.
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// NewID returns a fresh opaque session identifier.
func NewID() string {
	return uuid.NewString()
}

func (s *RedisStore) sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (domain.Session, error) {
	if id == "" {
		return domain.Session{}, fmt.Errorf("session id is empty: %w", domain.ErrNotFound)
	}

	key := s.sessionKey(id)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, fmt.Errorf("session[%s]: %w", id, domain.ErrNotFound)
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session from redis")
		return domain.Session{}, errx.WrapRedis(err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to unmarshal session")
		return domain.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}

	sess.ID = id
	if sess.Cart == nil {
		sess.Cart = []domain.ProductID{}
	}

	return sess, nil
}

// Save overwrites the stored session and restarts its TTL.
func (s *RedisStore) Save(ctx context.Context, sess domain.Session) error {
	if sess.ID == "" {
		return fmt.Errorf("session id is empty: %w", domain.ErrInvalidInput)
	}

	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.sessionKey(sess.ID)
	if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save session to redis")
		return errx.WrapRedis(err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	key := s.sessionKey(id)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete session from redis")
		return errx.WrapRedis(err)
	}

	return nil
}

var _ port.SessionStore = (*RedisStore)(nil)
