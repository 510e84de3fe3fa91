package ratelimiter

import (
	"context"
	"errors"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	ratelimiter "georemind/internal/core/domain/rate_limiter"
	"time"

	"github.com/go-redis/redis/v9"
)

type Redis struct {
	client *redis.Client
	log    logging.Logger
	now    func() time.Time
}

func NewRedis(client *redis.Client, log logging.Logger, now func() time.Time) *Redis {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{client: client, log: log, now: now}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	k := "rate-limit::" + key + "::" + limit.Interval.Bucket(r.now())

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, limit.Interval.Duration())
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed(0)
	}
	if err != nil {
		r.log.Error(
			ctx,
			"Could not check rate limit due to Redis client error.",
			logging.Entry("key", k),
			logging.Entry("err", err),
		)
		return ratelimiter.Allowed(0)
	}
	count := incr.Val()
	if count > int64(limit.Value) {
		return ratelimiter.NotAllowed(count)
	}
	return ratelimiter.Allowed(count)
}
