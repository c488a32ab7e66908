package services

import (
	"context"
	"encoding/json"
	"fmt"
	"main/model"
	"time"

	"github.com/redis/go-redis/v9"
)

type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache creates and initializes a Redis-backed progress cache
func NewProgressCache(redisURL string, ttl time.Duration) (*ProgressCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &ProgressCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func progressKey(userID string) string {
	return fmt.Sprintf("progress:%s", userID)
}

// SetProgress caches a progress snapshot with the configured TTL
func (pc *ProgressCache) SetProgress(ctx context.Context, progress *model.UserProgress) error {
	if progress == nil {
		return fmt.Errorf("cannot cache nil progress")
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %v", err)
	}

	if err := pc.client.Set(ctx, progressKey(progress.UserID), data, pc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache progress: %v", err)
	}

	return nil
}

// GetProgress retrieves a progress snapshot; (nil, nil) on a cache miss
func (pc *ProgressCache) GetProgress(ctx context.Context, userID string) (*model.UserProgress, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	data, err := pc.client.Get(ctx, progressKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress from cache: %v", err)
	}

	var progress model.UserProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %v", err)
	}

	return &progress, nil
}

// InvalidateProgress drops a user's cached snapshot
func (pc *ProgressCache) InvalidateProgress(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}
	return pc.client.Del(ctx, progressKey(userID)).Err()
}

// Close releases the Redis connection
func (pc *ProgressCache) Close() error {
	return pc.client.Close()
}
