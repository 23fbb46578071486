package apiclient

import (
	"context"
	"strings"
	"sync"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	apperrors "github.com/yanqian/sunsafe/pkg/errors"
)

// Session holds the postcode a single caller is working with. Each caller owns
// its own Session; nothing is shared between sessions.
type Session struct {
	mu       sync.RWMutex
	postcode lookup.Postcode
}

// NewSession returns a session with no postcode selected.
func NewSession() *Session {
	return &Session{}
}

// SetPostcode records the caller's postcode.
func (s *Session) SetPostcode(postcode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postcode = lookup.Postcode(strings.TrimSpace(postcode))
}

// Postcode returns the postcode recorded for this session.
func (s *Session) Postcode() lookup.Postcode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postcode
}

// UVDataForSession fetches the UV series for the session's postcode.
func (c *Client) UVDataForSession(ctx context.Context, sess *Session) ([]lookup.HourlyUV, error) {
	postcode, err := c.sessionPostcode(sess)
	if err != nil {
		return nil, err
	}
	return c.UVData(ctx, UVQuery{Postcode: postcode})
}

// RecommendationForSession fetches advice for tone at the session's postcode.
func (c *Client) RecommendationForSession(ctx context.Context, sess *Session, tone lookup.SkinTone) (lookup.PersonalRecommendation, error) {
	postcode, err := c.sessionPostcode(sess)
	if err != nil {
		return lookup.PersonalRecommendation{}, err
	}
	return c.Recommendation(ctx, RecommendationQuery{SkinTone: tone, Postcode: postcode})
}

// sessionPostcode reports a missing base URL before a missing postcode.
func (c *Client) sessionPostcode(sess *Session) (lookup.Postcode, error) {
	if _, err := c.NormalizeURL("/"); err != nil {
		return "", err
	}
	if sess == nil {
		return "", apperrors.Wrap(CodeInvalidArgument, "session is required", nil)
	}
	postcode := sess.Postcode()
	if postcode == "" {
		return "", apperrors.Wrap(CodeInvalidArgument, "session has no postcode", nil)
	}
	return postcode, nil
}
