package lock

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotAcquired = errors.New("room lock not acquired")

const (
	lockTTL       = 10 * time.Second
	retryInterval = 50 * time.Millisecond
	acquireWindow = 3 * time.Second
)

// RedisRoomLocker serializes order creation per room with a redis SETNX
// lock. The TTL bounds how long a crashed holder can block a room.
type RedisRoomLocker struct {
	client *redis.Client
}

func NewRedisRoomLocker(client *redis.Client) *RedisRoomLocker {
	return &RedisRoomLocker{client: client}
}

func key(roomID string) string {
	return "lock:room:" + roomID
}

// Lock blocks briefly, retrying until the lock is acquired or the acquire
// window elapses.
func (l *RedisRoomLocker) Lock(ctx context.Context, roomID string) error {
	deadline := time.Now().Add(acquireWindow)

	for {
		ok, err := l.client.SetNX(ctx, key(roomID), "locked", lockTTL).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrNotAcquired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

func (l *RedisRoomLocker) Unlock(ctx context.Context, roomID string) error {
	return l.client.Del(ctx, key(roomID)).Err()
}
