package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisProbe queries queue depth via LLEN against a pooled client.
// Connections are reused across ticks; a single transient failure is
// retried once with a short backoff before surfacing as a ProbeError
// (Timeout for a deadline, Unreachable otherwise).
type RedisProbe struct {
	client      *redis.Client
	readTimeout time.Duration
}

// NewRedisProbe builds a pooled Redis client for depth probing. The
// supplied readTimeout bounds each individual LLEN call; callers should
// keep it well under the AutoScaler's check interval.
func NewRedisProbe(host string, port, db int, password string, readTimeout time.Duration) (probe *RedisProbe) {
	probe = &RedisProbe{
		client: redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			DB:           db,
			Password:     password,
			DialTimeout:  readTimeout,
			ReadTimeout:  readTimeout,
			WriteTimeout: readTimeout,
		}),
		readTimeout: readTimeout,
	}
	return
}

func (probe *RedisProbe) Depth(ctx context.Context, queueName string) (depth int64, err error) {
	depth, err = probe.tryLLen(ctx, queueName)
	if err == nil {
		return
	}

	// One retry with a short backoff for transient errors
	time.Sleep(50 * time.Millisecond)
	depth, err = probe.tryLLen(ctx, queueName)
	if err != nil {
		err = classifyRedisError(err)
	}
	return
}

func (probe *RedisProbe) tryLLen(ctx context.Context, queueName string) (depth int64, err error) {
	ctx, cancel := context.WithTimeout(ctx, probe.readTimeout)
	defer cancel()

	depth, err = probe.client.LLen(ctx, queueName).Result()
	return
}

func (probe *RedisProbe) Close() (err error) {
	err = probe.client.Close()
	return
}

func classifyRedisError(err error) (classified error) {
	if errors.Is(err, context.DeadlineExceeded) {
		classified = &ProbeError{Kind: Timeout, Err: err}
		return
	}
	classified = &ProbeError{Kind: Unreachable, Err: err}
	return
}
