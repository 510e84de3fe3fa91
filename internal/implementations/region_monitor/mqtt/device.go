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

// Device is the device end of the exchange driven by Monitor. It follows the
// retained region set and reports transitions on the events topic.
type Device struct {
	log     logging.Logger
	client  paho.Client
	prefix  string
	timeout time.Duration
}

func NewDevice(log logging.Logger, client paho.Client, prefix string, timeout time.Duration) *Device {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &Device{log: log, client: client, prefix: prefix, timeout: timeout}
}

// FollowRegions calls onChange with every region set published by the
// monitor, starting with the retained one.
func (d *Device) FollowRegions(onChange func(regions []region.Region)) error {
	topic := RegionsTopic(d.prefix)
	token := d.client.Subscribe(topic, 1, func(client paho.Client, msg paho.Message) {
		regions, err := DecodeRegions(msg.Payload())
		if err != nil {
			d.log.Warning(
				context.Background(),
				"Malformed region set skipped.",
				logging.Entry("topic", msg.Topic()),
				logging.Entry("err", err),
			)
			return
		}
		onChange(regions)
	})
	if !token.WaitTimeout(d.timeout) {
		return fmt.Errorf("subscribe to %s: timeout", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe to %s: %w", topic, err)
	}
	return nil
}

func (d *Device) Publish(ctx context.Context, event region.Event) error {
	payload, err := EncodeEvent(event)
	if err != nil {
		return err
	}
	token := d.client.Publish(EventsTopic(d.prefix), 1, false, payload)
	return wait(ctx, token, d.timeout, EventsTopic(d.prefix))
}
