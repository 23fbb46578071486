package session

import (
	"context"
	"time"
)

// Store persists sessions for their TTL.
type Store interface {
	Get(ctx context.Context, id string) (Session, bool, error)
	Save(ctx context.Context, sess Session, ttl time.Duration) error
}
