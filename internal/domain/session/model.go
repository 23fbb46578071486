package session

import (
	"time"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

// Session carries the per-user selection that views pass to their requests.
type Session struct {
	ID        string          `json:"id"`
	Postcode  lookup.Postcode `json:"postcode"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CreateRequest optionally seeds the session postcode.
type CreateRequest struct {
	Postcode lookup.Postcode `json:"postcode"`
}

// PostcodeRequest updates the selected postcode.
type PostcodeRequest struct {
	Postcode lookup.Postcode `json:"postcode"`
}

// Config holds runtime knobs for the session service.
type Config struct {
	TTL time.Duration
}
