package regionevents

import (
	"context"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/services"
	processactivation "georemind/internal/core/services/process_activation"
	"georemind/internal/rabbitmq"
	"georemind/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[processactivation.Input, processactivation.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[processactivation.Input, processactivation.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() {
	deliveries := c.channel.Consume(c.queue, "")
	go func() {
		for delivery := range deliveries {
			c.settle(delivery, c.handle(context.Background(), delivery.Body, delivery.Redelivered))
		}
	}()
}

type outcome int

const (
	ack outcome = iota
	requeue
)

// handle processes one message body. A message whose processing failed is
// requeued once; a second failure drops it.
func (c *Consumer) handle(ctx context.Context, body []byte, redelivered bool) outcome {
	message := &schema.RegionEvent{}
	if err := message.Unmarshal(body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal region event.",
			logging.Entry("err", err),
			logging.Entry("body", string(body)),
		)
		return ack
	}

	c.log.Debug(ctx, "Got region event.", logging.Entry("event", message))
	_, err := c.service.Run(ctx, processactivation.Input{Event: message.Event()})
	if err == nil {
		return ack
	}
	if !redelivered {
		c.log.Warning(
			ctx,
			"Could not process region event, requeueing.",
			logging.Entry("event", message),
			logging.Entry("err", err),
		)
		return requeue
	}
	c.log.Error(
		ctx,
		"Could not process redelivered region event, dropping.",
		logging.Entry("event", message),
		logging.Entry("err", err),
	)
	return ack
}

func (c *Consumer) settle(delivery amqp091.Delivery, o outcome) {
	var err error
	switch o {
	case requeue:
		err = delivery.Nack(false, true)
	default:
		err = delivery.Ack(false)
	}
	if err != nil {
		c.log.Error(context.Background(), "Could not settle AMQP message.", logging.Entry("err", err))
	}
}
