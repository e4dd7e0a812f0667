// Package dedup remembers which email ids have already been classified so
// batch reruns skip paid LLM calls. Suggestion ids are deterministic either
// way; this only bounds spend, so a missing Redis simply disables it.
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultTTL is how long a processed email id is remembered.
	DefaultTTL = 7 * 24 * time.Hour

	keyPrefix = "inboxzero:seen:"
)

// Filter tracks which email ids have already been processed.
type Filter struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewFilter creates a dedup filter backed by Redis. A nil client yields a
// filter that treats everything as new.
func NewFilter(rdb *redis.Client) *Filter {
	return &Filter{rdb: rdb, ttl: DefaultTTL}
}

// Seen reports whether the email id was already processed. Checking does not
// mark: callers record the id with MarkSeen once processing actually
// succeeded, so a halted batch or a failed save leaves the email new.
func (f *Filter) Seen(ctx context.Context, userID, emailID string) (bool, error) {
	if f == nil || f.rdb == nil {
		return false, nil
	}

	n, err := f.rdb.Exists(ctx, seenKey(userID, emailID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup EXISTS: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records the email id as processed for the filter's TTL.
func (f *Filter) MarkSeen(ctx context.Context, userID, emailID string) error {
	if f == nil || f.rdb == nil {
		return nil
	}

	if err := f.rdb.Set(ctx, seenKey(userID, emailID), 1, f.ttl).Err(); err != nil {
		return fmt.Errorf("dedup SET: %w", err)
	}
	return nil
}

func seenKey(userID, emailID string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, userID, emailID)
}
