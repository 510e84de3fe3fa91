package reminder

import "context"

// Store owns the current set of reminder definitions. Mutations are persisted
// before they return.
type Store interface {
	Load(ctx context.Context) ([]Reminder, error)
	Add(ctx context.Context, rem Reminder) error
	Remove(ctx context.Context, id ID) (Reminder, error)
	List(ctx context.Context) []Reminder
	Get(ctx context.Context, id ID) (Reminder, bool)
}
