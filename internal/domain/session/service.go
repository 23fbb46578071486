package session

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	apperrors "github.com/yanqian/sunsafe/pkg/errors"
	"github.com/yanqian/sunsafe/pkg/util"
)

// Service manages user sessions.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	SetPostcode(ctx context.Context, id string, req PostcodeRequest) (Session, error)
}

type service struct {
	cfg    Config
	store  Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires up the session domain.
func NewService(cfg Config, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		store:  store,
		logger: logger.With("component", "session.service"),
		now:    util.NowUTC,
		newID:  uuid.NewString,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Session, error) {
	now := s.now()
	sess := Session{
		ID:        s.newID(),
		Postcode:  trimPostcode(req.Postcode),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, sess, s.cfg.TTL); err != nil {
		return Session{}, apperrors.Wrap("session_error", "failed to save session", err)
	}
	s.logger.Info("session created", "id", sess.ID)
	return sess, nil
}

func (s *service) Get(ctx context.Context, id string) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, apperrors.Wrap("invalid_input", "session id cannot be empty", nil)
	}
	sess, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return Session{}, apperrors.Wrap("session_error", "failed to load session", err)
	}
	if !ok {
		return Session{}, apperrors.Wrap("not_found", "session not found", nil)
	}
	return sess, nil
}

func (s *service) SetPostcode(ctx context.Context, id string, req PostcodeRequest) (Session, error) {
	postcode := trimPostcode(req.Postcode)
	if postcode == "" {
		return Session{}, apperrors.Wrap("invalid_input", "postcode is required", nil)
	}
	sess, err := s.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	sess.Postcode = postcode
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess, s.cfg.TTL); err != nil {
		return Session{}, apperrors.Wrap("session_error", "failed to save session", err)
	}
	return sess, nil
}

func trimPostcode(p lookup.Postcode) lookup.Postcode {
	return lookup.Postcode(strings.TrimSpace(string(p)))
}
