// Package events publishes application lifecycle events to Redis pub/sub.
// Downstream consumers (notification fan-out, reviewer dashboards) subscribe
// to the channels; publishing is always best-effort and never fails the
// request that triggered it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel names.
const (
	ChannelApplicationSubmitted = "EVENT_APPLICATION_SUBMITTED"
	ChannelApplicationMoved     = "EVENT_APPLICATION_MOVED"
)

// Publisher wraps a Redis client. A nil Publisher (or one built without a
// client) is a no-op, so environments without Redis still work.
type Publisher struct {
	rdb *redis.Client
}

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// NewPublisher returns a Publisher. rdb may be nil.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// ApplicationSubmitted announces a new application. Non-fatal.
func (p *Publisher) ApplicationSubmitted(ctx context.Context, appID, studentID, jobID uuid.UUID) {
	p.publish(ctx, ChannelApplicationSubmitted, map[string]string{
		"type":          "APPLICATION_SUBMITTED",
		"applicationId": appID.String(),
		"studentId":     studentID.String(),
		"jobId":         jobID.String(),
	})
}

// ApplicationMoved announces a status transition. Non-fatal.
func (p *Publisher) ApplicationMoved(ctx context.Context, appID uuid.UUID, from, to string) {
	p.publish(ctx, ChannelApplicationMoved, map[string]string{
		"type":          "APPLICATION_MOVED",
		"applicationId": appID.String(),
		"from":          from,
		"to":            to,
	})
}

// Close releases the underlying Redis connection. Safe on a nil or
// client-less Publisher.
func (p *Publisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}

func (p *Publisher) publish(ctx context.Context, channel string, payload map[string]string) {
	if p == nil || p.rdb == nil {
		return
	}
	event, _ := json.Marshal(payload)
	if err := p.rdb.Publish(ctx, channel, event).Err(); err != nil {
		slog.Warn("event publish failed", "channel", channel, "err", err)
	}
}
