package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	v string
}

func (i Interval) String() string {
	return i.v
}

var (
	Minute = Interval{v: "minute"}
	Hour   = Interval{v: "hour"}
)

func (i Interval) Duration() time.Duration {
	switch i {
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	default:
		panic(fmt.Sprintf("invalid rate limiting interval %q", i.v))
	}
}

// Bucket names the fixed window the given moment falls into.
func (i Interval) Bucket(at time.Time) string {
	switch i {
	case Minute:
		return fmt.Sprintf("m%d", at.Minute())
	case Hour:
		return fmt.Sprintf("h%d", at.Hour())
	default:
		panic(fmt.Sprintf("invalid rate limiting interval %q", i.v))
	}
}

type Limit struct {
	Value    uint16
	Interval Interval
}

type Result struct {
	IsAllowed bool
	Count     int64
}

func Allowed(count int64) Result {
	return Result{IsAllowed: true, Count: count}
}

func NotAllowed(count int64) Result {
	return Result{IsAllowed: false, Count: count}
}

// RateLimiter counts calls per key in fixed windows. Implementations fail open.
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
