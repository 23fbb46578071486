package metrics

import "sync/atomic"

// LookupUsage captures how many table lookups were answered or missed.
type LookupUsage struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// IsZero reports whether no lookups were recorded.
func (u LookupUsage) IsZero() bool {
	return u.Hits == 0 && u.Misses == 0
}

// LookupCounter is safe for concurrent use. The zero value is ready.
type LookupCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// Record counts one lookup outcome.
func (c *LookupCounter) Record(hit bool) {
	if hit {
		c.hits.Add(1)
		return
	}
	c.misses.Add(1)
}

// Snapshot returns the current totals.
func (c *LookupCounter) Snapshot() LookupUsage {
	return LookupUsage{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
