package activation

import "context"

// Log is the append-only activation history. List returns entries in append order.
type Log interface {
	Load(ctx context.Context) ([]Entry, error)
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context) []Entry
}
