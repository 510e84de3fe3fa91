package notifier

import (
	"context"
	"errors"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/notification"
)

// Multi presents a notification through every configured notifier. All of them
// are tried and the failures are joined.
type Multi struct {
	notifiers []notification.Notifier
}

func NewMulti(notifiers ...notification.Notifier) *Multi {
	for _, n := range notifiers {
		if n == nil {
			panic(e.NewNilArgumentError("notifiers"))
		}
	}
	return &Multi{notifiers: notifiers}
}

func (m *Multi) Present(ctx context.Context, n notification.Notification) error {
	var errs []error
	for _, notifier := range m.notifiers {
		if err := notifier.Present(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log writes notifications to the application log.
type Log struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *Log {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Log{log: log}
}

func (l *Log) Present(ctx context.Context, n notification.Notification) error {
	l.log.Info(ctx, "Notification has been presented.", logging.Entry("title", n.Title), logging.Entry("body", n.Body))
	return nil
}
