package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

const (
	statsKeyPrefix     = "stats:"
	blacklistKeyPrefix = "token:blacklist:"

	// InterviewCompletedChannel carries completion events from the
	// workflow to the notification subscriber.
	InterviewCompletedChannel = "interview_completed"
)

// Cache wraps the redis client for the small set of hot paths that use
// it: user-stats caching, the logout token blacklist, and completion
// events. Everything degrades to the database when redis is down.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Ping reports whether redis is reachable. Used by readiness checks.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) GetStats(ctx context.Context, userID string) (*models.UserStats, bool) {
	data, err := c.rdb.Get(ctx, statsKeyPrefix+userID).Bytes()
	if err != nil {
		return nil, false
	}
	var stats models.UserStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *Cache) SetStats(ctx context.Context, userID string, stats *models.UserStats, ttl time.Duration) {
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, statsKeyPrefix+userID, data, ttl)
}

func (c *Cache) InvalidateStats(ctx context.Context, userID string) {
	c.rdb.Del(ctx, statsKeyPrefix+userID)
}

// BlacklistToken invalidates a JWT until its natural expiry.
func (c *Cache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

func (c *Cache) IsTokenBlacklisted(ctx context.Context, token string) bool {
	n, err := c.rdb.Exists(ctx, blacklistKeyPrefix+token).Result()
	return err == nil && n > 0
}

// PublishInterviewCompleted emits a completion event; delivery is
// best-effort.
func (c *Cache) PublishInterviewCompleted(ctx context.Context, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.rdb.Publish(ctx, InterviewCompletedChannel, data).Err()
}

// Subscribe returns the raw pubsub for a channel; callers own its
// lifecycle.
func (c *Cache) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return c.rdb.Subscribe(ctx, channel)
}
