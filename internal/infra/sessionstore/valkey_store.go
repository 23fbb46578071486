package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/sunsafe/internal/domain/session"
)

// ValkeyStore persists sessions in a Valkey-compatible database so several
// API instances can share them.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "session"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, id string) (session.Session, bool, error) {
	cmd := s.client.B().Get().Key(s.key(id)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, err
	}
	var sess session.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return session.Session{}, false, err
	}
	return sess, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, sess session.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.key(sess.ID)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) key(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

var _ session.Store = (*ValkeyStore)(nil)
