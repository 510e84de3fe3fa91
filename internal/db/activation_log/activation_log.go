package activationlog

import (
	"context"
	"encoding/json"
	"fmt"
	"georemind/internal/core/domain/activation"
	c "georemind/internal/core/domain/common"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/domain/storage"
	"sync"
	"time"
)

type record struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Radius         float64 `json:"radius"`
	ActivationDate string  `json:"activationDate"`
}

func Encode(entries []activation.Entry) (string, error) {
	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, record{
			ID:             string(entry.ID),
			Name:           entry.Name,
			Latitude:       entry.Latitude,
			Longitude:      entry.Longitude,
			Radius:         entry.Radius,
			ActivationDate: entry.ActivationDate.UTC().Format(time.RFC3339Nano),
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func Decode(raw string) ([]activation.Entry, error) {
	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	entries := make([]activation.Entry, 0, len(records))
	for ix, r := range records {
		if r.ID == "" {
			return nil, e.NewInvalidStateError("entry #%d has no id", ix)
		}
		activationDate, err := time.Parse(time.RFC3339Nano, r.ActivationDate)
		if err != nil {
			return nil, e.NewInvalidStateError("entry #%d has invalid activation date: %v", ix, err)
		}
		entries = append(entries, activation.Entry{
			ID:             reminder.ID(r.ID),
			Name:           r.Name,
			Latitude:       r.Latitude,
			Longitude:      r.Longitude,
			Radius:         r.Radius,
			ActivationDate: activationDate.UTC(),
		})
	}
	return entries, nil
}

// Log is the durable activation history. Append re-reads the persisted list
// so that entries written by another writer of the same key are kept.
type Log struct {
	log     logging.Logger
	durable storage.DurableStore
	key     string
	entries []activation.Entry
	lock    sync.RWMutex
}

func New(log logging.Logger, durable storage.DurableStore) *Log {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if durable == nil {
		panic(e.NewNilArgumentError("durable"))
	}
	return &Log{log: log, durable: durable, key: storage.HistoryKey}
}

func (l *Log) Load(ctx context.Context) ([]activation.Entry, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	entries, err := l.read(ctx)
	if err != nil {
		return nil, err
	}
	l.entries = entries.ValueOr(make([]activation.Entry, 0))

	l.log.Info(ctx, "Activation history has been loaded.", logging.Entry("count", len(l.entries)))
	return l.copy(), nil
}

func (l *Log) Append(ctx context.Context, entry activation.Entry) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	persisted, err := l.read(ctx)
	if err != nil {
		return err
	}
	current := persisted.ValueOr(l.entries)

	updated := make([]activation.Entry, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, entry)

	raw, err := Encode(updated)
	if err != nil {
		logging.Error(ctx, l.log, err, logging.Entry("key", l.key))
		return fmt.Errorf("%w: encode %s: %w", storage.ErrStorage, l.key, err)
	}
	if err := l.durable.SetString(ctx, l.key, raw); err != nil {
		logging.Error(ctx, l.log, err, logging.Entry("key", l.key))
		return fmt.Errorf("%w: write %s: %w", storage.ErrStorage, l.key, err)
	}
	l.entries = updated
	return nil
}

func (l *Log) List(ctx context.Context) []activation.Entry {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.copy()
}

// read returns the persisted entries. A missing or malformed value yields an
// absent result.
func (l *Log) read(ctx context.Context) (result c.Optional[[]activation.Entry], err error) {
	raw, err := l.durable.GetString(ctx, l.key)
	if err != nil {
		logging.Error(ctx, l.log, err, logging.Entry("key", l.key))
		return result, fmt.Errorf("%w: read %s: %w", storage.ErrStorage, l.key, err)
	}
	if !raw.IsPresent {
		return result, nil
	}
	entries, err := Decode(raw.Value)
	if err != nil {
		l.log.Warning(
			ctx,
			"Persisted activation history is malformed, ignoring it.",
			logging.Entry("key", l.key),
			logging.Entry("err", err),
		)
		return result, nil
	}
	result.Value, result.IsPresent = entries, true
	return result, nil
}

func (l *Log) copy() []activation.Entry {
	entries := make([]activation.Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}
