package redis

import (
	"context"
	"errors"
	"fmt"
	c "georemind/internal/core/domain/common"
	e "georemind/internal/core/domain/errors"

	"github.com/go-redis/redis/v9"
)

// Store keeps durable values as plain Redis strings under a common prefix.
type Store struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Store {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) GetString(ctx context.Context, key string) (c.Optional[string], error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return c.Optional[string]{}, nil
	}
	if err != nil {
		return c.Optional[string]{}, fmt.Errorf("get %s: %w", key, err)
	}
	return c.NewOptional(value, true), nil
}

func (s *Store) SetString(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
