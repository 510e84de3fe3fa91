package reminderstore

import (
	"context"
	"encoding/json"
	"fmt"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/domain/storage"
	"sync"
)

type record struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

// Encode serializes reminders in the persisted layout.
func Encode(reminders []reminder.Reminder) (string, error) {
	records := make([]record, 0, len(reminders))
	for _, rem := range reminders {
		records = append(records, record{
			ID:        string(rem.ID),
			Name:      rem.Name,
			Latitude:  rem.Latitude,
			Longitude: rem.Longitude,
			Radius:    rem.Radius,
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses the persisted layout. Any invalid or duplicated reminder makes
// the whole value invalid.
func Decode(raw string) ([]reminder.Reminder, error) {
	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	reminders := make([]reminder.Reminder, 0, len(records))
	seen := make(map[reminder.ID]struct{}, len(records))
	for ix, r := range records {
		rem := reminder.Reminder{
			ID:        reminder.ID(r.ID),
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Radius:    r.Radius,
		}
		if err := rem.Validate(); err != nil {
			return nil, e.NewInvalidStateError("reminder #%d is invalid: %v", ix, err)
		}
		if _, ok := seen[rem.ID]; ok {
			return nil, e.NewInvalidStateError("reminder #%d has duplicated id %q", ix, rem.ID)
		}
		seen[rem.ID] = struct{}{}
		reminders = append(reminders, rem)
	}
	return reminders, nil
}

// Store keeps reminders in memory in insertion order and writes the whole set
// to the durable store on every mutation.
type Store struct {
	log       logging.Logger
	durable   storage.DurableStore
	key       string
	reminders []reminder.Reminder
	lock      sync.RWMutex
}

func New(log logging.Logger, durable storage.DurableStore) *Store {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if durable == nil {
		panic(e.NewNilArgumentError("durable"))
	}
	return &Store{log: log, durable: durable, key: storage.RemindersKey}
}

func (s *Store) Load(ctx context.Context) ([]reminder.Reminder, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	raw, err := s.durable.GetString(ctx, s.key)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("key", s.key))
		return nil, fmt.Errorf("%w: read %s: %w", storage.ErrStorage, s.key, err)
	}

	s.reminders = make([]reminder.Reminder, 0)
	if raw.IsPresent {
		reminders, err := Decode(raw.Value)
		if err != nil {
			s.log.Warning(
				ctx,
				"Persisted reminders are malformed, starting with an empty set.",
				logging.Entry("key", s.key),
				logging.Entry("err", err),
			)
		} else {
			s.reminders = reminders
		}
	}

	s.log.Info(ctx, "Reminders have been loaded.", logging.Entry("count", len(s.reminders)))
	return s.copy(), nil
}

func (s *Store) Add(ctx context.Context, rem reminder.Reminder) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.indexOf(rem.ID) >= 0 {
		return reminder.ErrReminderAlreadyExists
	}

	updated := make([]reminder.Reminder, 0, len(s.reminders)+1)
	updated = append(updated, s.reminders...)
	updated = append(updated, rem)
	if err := s.persist(ctx, updated); err != nil {
		return err
	}
	s.reminders = updated
	return nil
}

func (s *Store) Remove(ctx context.Context, id reminder.ID) (rem reminder.Reminder, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	ix := s.indexOf(id)
	if ix < 0 {
		return rem, reminder.ErrReminderDoesNotExist
	}

	rem = s.reminders[ix]
	updated := make([]reminder.Reminder, 0, len(s.reminders)-1)
	updated = append(updated, s.reminders[:ix]...)
	updated = append(updated, s.reminders[ix+1:]...)
	if err := s.persist(ctx, updated); err != nil {
		return reminder.Reminder{}, err
	}
	s.reminders = updated
	return rem, nil
}

func (s *Store) List(ctx context.Context) []reminder.Reminder {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.copy()
}

func (s *Store) Get(ctx context.Context, id reminder.ID) (reminder.Reminder, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	ix := s.indexOf(id)
	if ix < 0 {
		return reminder.Reminder{}, false
	}
	return s.reminders[ix], true
}

func (s *Store) persist(ctx context.Context, reminders []reminder.Reminder) error {
	raw, err := Encode(reminders)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("key", s.key))
		return fmt.Errorf("%w: encode %s: %w", storage.ErrStorage, s.key, err)
	}
	if err := s.durable.SetString(ctx, s.key, raw); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("key", s.key))
		return fmt.Errorf("%w: write %s: %w", storage.ErrStorage, s.key, err)
	}
	return nil
}

func (s *Store) indexOf(id reminder.ID) int {
	for ix, rem := range s.reminders {
		if rem.ID == id {
			return ix
		}
	}
	return -1
}

func (s *Store) copy() []reminder.Reminder {
	reminders := make([]reminder.Reminder, len(s.reminders))
	copy(reminders, s.reminders)
	return reminders
}
