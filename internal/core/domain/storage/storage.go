package storage

import (
	"context"
	"errors"
	c "georemind/internal/core/domain/common"
)

const (
	RemindersKey = "reminders"
	HistoryKey   = "history"
)

var ErrStorage = errors.New("durable storage failure")

// DurableStore is a string key-value store. It offers no atomicity across keys
// and no versioning.
type DurableStore interface {
	GetString(ctx context.Context, key string) (c.Optional[string], error)
	SetString(ctx context.Context, key string, value string) error
}
