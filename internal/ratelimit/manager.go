// Package ratelimit provides Redis-backed request limiting so that limits
// hold across multiple service instances.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Manager enforces a fixed-window requests-per-minute limit per client.
type Manager struct {
	redis *redis.Client
	rpm   int
}

// NewManager connects to Redis and verifies the connection. rpm is the
// per-client requests-per-minute budget.
func NewManager(redisURL string, rpm int) (*Manager, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if rpm <= 0 {
		rpm = 60
	}
	return &Manager{redis: client, rpm: rpm}, nil
}

func (m *Manager) Close() error { return m.redis.Close() }

// RPM returns the configured per-client budget.
func (m *Manager) RPM() int { return m.rpm }

// CheckRate returns allowed=false once the client's minute window is
// exhausted, along with the seconds until the window resets.
func (m *Manager) CheckRate(ctx context.Context, clientID string) (allowed bool, resetSec int, err error) {
	now := time.Now().UTC()
	window := now.Unix() / 60 // minute window
	key := fmt.Sprintf("rl:%s:%d", clientID, window)

	// INCR and set TTL if first time
	pipe := m.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if int(incr.Val()) > m.rpm {
		secPassed := int(now.Unix() % 60)
		return false, 60 - secPassed, nil
	}
	return true, 0, nil
}
