package infra_redis_ratelimit

import (
	"time"

	"github.com/go-redis/redis"
)

type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

// Incr bumps the counter for key and returns the new count. The window
// TTL is re-armed on every call so the key cannot leak after a burst.
func (d *Driver) Incr(key string, window time.Duration) (int64, error) {
	fullKey := d.getFullKey(key)

	pipe := d.client.TxPipeline()
	count := pipe.Incr(fullKey)
	pipe.Expire(fullKey, window)
	if _, err := pipe.Exec(); err != nil {
		return 0, err
	}

	return count.Val(), nil
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
