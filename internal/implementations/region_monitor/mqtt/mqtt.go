package mqtt

import (
	"context"
	"fmt"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/region"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

func RegionsTopic(prefix string) string {
	return prefix + "/regions"
}

func EventsTopic(prefix string) string {
	return prefix + "/events"
}

// Monitor delegates region monitoring to a device reachable through an MQTT
// broker. The registered set is published as a retained message so that a
// device connecting later gets the current set. The device reports
// transitions on the events topic.
type Monitor struct {
	log        logging.Logger
	client     paho.Client
	prefix     string
	maxRegions int
	timeout    time.Duration
	events     chan region.Event
	done       chan struct{}
}

func New(
	log logging.Logger,
	client paho.Client,
	prefix string,
	maxRegions int,
	timeout time.Duration,
	bufferSize int,
) *Monitor {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &Monitor{
		log:        log,
		client:     client,
		prefix:     prefix,
		maxRegions: maxRegions,
		timeout:    timeout,
		events:     make(chan region.Event, bufferSize),
		done:       make(chan struct{}),
	}
}

// Subscribe starts receiving region events from the broker.
func (m *Monitor) Subscribe() error {
	token := m.client.Subscribe(EventsTopic(m.prefix), 1, m.handleMessage)
	if !token.WaitTimeout(m.timeout) {
		return fmt.Errorf("subscribe to %s: timeout", EventsTopic(m.prefix))
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe to %s: %w", EventsTopic(m.prefix), err)
	}
	m.log.Info(context.Background(), "Subscribed to region events.", logging.Entry("topic", EventsTopic(m.prefix)))
	return nil
}

func (m *Monitor) handleMessage(client paho.Client, msg paho.Message) {
	ctx := context.Background()
	event, err := DecodeEvent(msg.Payload())
	if err != nil {
		m.log.Warning(
			ctx,
			"Malformed region event skipped.",
			logging.Entry("topic", msg.Topic()),
			logging.Entry("err", err),
		)
		return
	}
	select {
	case m.events <- event:
	case <-m.done:
	}
}

func (m *Monitor) ReplaceRegisteredRegions(ctx context.Context, regions []region.Region) error {
	if m.maxRegions > 0 && len(regions) > m.maxRegions {
		return region.ErrCapacityExceeded
	}
	if !m.client.IsConnectionOpen() {
		return region.ErrMonitorNotRunning
	}

	payload, err := EncodeRegions(regions)
	if err != nil {
		return err
	}
	token := m.client.Publish(RegionsTopic(m.prefix), 1, true, payload)
	return wait(ctx, token, m.timeout, RegionsTopic(m.prefix))
}

func wait(ctx context.Context, token paho.Token, timeout time.Duration, topic string) error {
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(timeout):
		return fmt.Errorf("publish to %s: timeout", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

func (m *Monitor) Events() <-chan region.Event {
	return m.events
}

// Close unsubscribes from the broker. The events channel stays open.
func (m *Monitor) Close() {
	close(m.done)
	token := m.client.Unsubscribe(EventsTopic(m.prefix))
	token.WaitTimeout(m.timeout)
}
