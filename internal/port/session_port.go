package port

import (
	"context"
	"errors"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
)

type SessionStore interface {
	// Get returns domain.ErrNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, sess domain.Session) error
	Delete(ctx context.Context, id string) error
}

var ErrLockHeld = errors.New("lock is held")

// UnlockFunc releases a lock obtained from Locker.
type UnlockFunc func(ctx context.Context) error

type Locker interface {
	// Lock returns ErrLockHeld when key is already held by another caller.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
