package notification

import (
	"context"
	"sync"
)

type FakeNotifier struct {
	Presented    []Notification
	PresentError error
	lock         sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) Present(ctx context.Context, notification Notification) error {
	n.lock.Lock()
	defer n.lock.Unlock()
	if n.PresentError != nil {
		return n.PresentError
	}
	n.Presented = append(n.Presented, notification)
	return nil
}

func (n *FakeNotifier) Count() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.Presented)
}
