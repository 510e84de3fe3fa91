package notification

import "context"

type Notification struct {
	Title string
	Body  string
}

// Notifier presents a notification to the user. Delivery is best-effort.
type Notifier interface {
	Present(ctx context.Context, n Notification) error
}
