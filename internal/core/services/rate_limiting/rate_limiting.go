package ratelimiting

import (
	"context"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	ratelimiter "georemind/internal/core/domain/rate_limiter"
	"georemind/internal/core/services"
)

type hasRateLimitKey interface {
	GetRateLimitKey() string
}

type serviceWithRateLimiting[T hasRateLimitKey, S any] struct {
	log         logging.Logger
	rateLimiter ratelimiter.RateLimiter
	scope       string
	rateLimit   ratelimiter.Limit
	inner       services.Service[T, S]
}

// New wraps a service so that calls sharing a rate limit key are rejected with
// ErrRateLimitExceeded once the limit is reached. Keys are prefixed with scope,
// so two wrapped services never share a counter for the same client.
func New[T hasRateLimitKey, S any](
	log logging.Logger,
	rateLimiter ratelimiter.RateLimiter,
	scope string,
	rateLimit ratelimiter.Limit,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if rateLimiter == nil {
		panic(e.NewNilArgumentError("rateLimiter"))
	}
	if scope == "" {
		panic("rate limiting scope must not be empty")
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithRateLimiting[T, S]{
		log:         log,
		rateLimiter: rateLimiter,
		scope:       scope,
		rateLimit:   rateLimit,
		inner:       inner,
	}
}

func (s *serviceWithRateLimiting[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	key := s.scope + "::" + input.GetRateLimitKey()
	rate := s.rateLimiter.CheckLimit(ctx, key, s.rateLimit)
	if rate.IsAllowed {
		return s.inner.Run(ctx, input)
	}

	s.log.Warning(
		ctx,
		"Rate limit exceeded.",
		logging.Entry("key", key),
		logging.Entry("count", rate.Count),
		logging.Entry("limit", s.rateLimit.Value),
		logging.Entry("interval", s.rateLimit.Interval.String()),
	)
	return result, ratelimiter.ErrRateLimitExceeded
}
