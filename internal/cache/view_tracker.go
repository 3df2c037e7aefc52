package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "jobboard:views:"

// ViewTracker debounces job view counting: a given viewer bumps a job's view
// counter at most once per TTL window. Backed by redis SETNX with expiry.
type ViewTracker struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewViewTracker builds a tracker.
func NewViewTracker(rdb *redis.Client, ttl time.Duration) *ViewTracker {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ViewTracker{rdb: rdb, ttl: ttl}
}

// ShouldCount reports whether this viewer's hit on the job should increment
// the counter. Without a redis client every hit counts.
func (t *ViewTracker) ShouldCount(ctx context.Context, jobID int64, viewerKey string) (bool, error) {
	if t == nil || t.rdb == nil || viewerKey == "" {
		return true, nil
	}
	key := fmt.Sprintf("%s%d:%s", viewKeyPrefix, jobID, hashViewer(viewerKey))
	ok, err := t.rdb.SetNX(ctx, key, "1", t.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("view tracker setnx: %w", err)
	}
	return ok, nil
}

func hashViewer(viewerKey string) string {
	sum := sha256.Sum256([]byte(viewerKey))
	return hex.EncodeToString(sum[:])
}
