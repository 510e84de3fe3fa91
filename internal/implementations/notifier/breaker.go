package notifier

import (
	"context"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/notification"
	"time"

	"github.com/sony/gobreaker"
)

type BreakerSettings struct {
	Name        string
	MaxFailures uint32
	Timeout     time.Duration
}

// Breaker stops calling a failing notifier for a while. Calls made while the
// circuit is open fail with gobreaker.ErrOpenState.
type Breaker struct {
	inner   notification.Notifier
	breaker *gobreaker.CircuitBreaker
}

func NewBreaker(log logging.Logger, inner notification.Notifier, settings BreakerSettings) *Breaker {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &Breaker{
		inner: inner,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        settings.Name,
			MaxRequests: 1,
			Timeout:     settings.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= settings.MaxFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Warning(
					context.Background(),
					"Notifier circuit breaker state changed.",
					logging.Entry("name", name),
					logging.Entry("from", from.String()),
					logging.Entry("to", to.String()),
				)
			},
		}),
	}
}

func (b *Breaker) Present(ctx context.Context, n notification.Notification) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.inner.Present(ctx, n)
	})
	return err
}
