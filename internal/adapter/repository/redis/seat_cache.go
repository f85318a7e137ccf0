package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/grbus/seatcore/internal/core/domain"
	"github.com/grbus/seatcore/internal/core/ports"
)

const releaseQueueKey = "seatcore:release_retry"

// SeatCache caches seat-state snapshots for display reads and backs
// the durable retry queue for failed seat releases. It implements both
// ports.SnapshotCache and ports.ReleaseQueue.
type SeatCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSeatCache(client *redis.Client, ttl time.Duration) *SeatCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SeatCache{client: client, ttl: ttl}
}

func seatKey(tripID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", tripID)
}

func (c *SeatCache) GetSeatState(ctx context.Context, tripID uuid.UUID) (domain.SeatState, bool, error) {
	raw, err := c.client.Get(ctx, seatKey(tripID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.SeatState{}, false, nil
	}
	if err != nil {
		return domain.SeatState{}, false, fmt.Errorf("failed to read seat cache: %w", err)
	}

	var state domain.SeatState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return domain.SeatState{}, false, fmt.Errorf("corrupt seat cache entry: %w", err)
	}

	return state, true, nil
}

func (c *SeatCache) SetSeatState(ctx context.Context, tripID uuid.UUID, state domain.SeatState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, seatKey(tripID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write seat cache: %w", err)
	}
	return nil
}

func (c *SeatCache) Invalidate(ctx context.Context, tripID uuid.UUID) error {
	if err := c.client.Del(ctx, seatKey(tripID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate seat cache: %w", err)
	}
	return nil
}

func (c *SeatCache) EnqueueRelease(ctx context.Context, task ports.ReleaseTask) error {
	raw, err := json.Marshal(task)
	if err != nil {
		return err
	}
	if err := c.client.RPush(ctx, releaseQueueKey, raw).Err(); err != nil {
		return fmt.Errorf("failed to enqueue release task: %w", err)
	}
	return nil
}

func (c *SeatCache) DequeueRelease(ctx context.Context) (*ports.ReleaseTask, error) {
	raw, err := c.client.LPop(ctx, releaseQueueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dequeue release task: %w", err)
	}

	var task ports.ReleaseTask
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return nil, fmt.Errorf("corrupt release task: %w", err)
	}

	return &task, nil
}
