package serialized

import (
	"context"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/services"
	"sync"
)

type serviceSerialized[T any, S any] struct {
	lock  sync.Mutex
	inner services.Service[T, S]
}

// New wraps a service so that at most one call runs at a time. Region events
// arrive from several transports and must still be processed one by one.
func New[T any, S any](inner services.Service[T, S]) services.Service[T, S] {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceSerialized[T, S]{inner: inner}
}

func (s *serviceSerialized[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.Run(ctx, input)
}
