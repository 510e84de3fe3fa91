package regionevents

import (
	"context"
	e "georemind/internal/core/domain/errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/region"
	"georemind/internal/rabbitmq/schema"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange string,
		key string,
		mandatory bool,
		immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ publishes region events to a queue through the default exchange.
type RabbitMQ struct {
	log     logging.Logger
	channel publisher
	queue   string
	now     func() time.Time
}

func NewRabbitMQ(log logging.Logger, channel publisher, queue string, now func() time.Time) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue, now: now}
}

func (p *RabbitMQ) Publish(ctx context.Context, event region.Event) error {
	now := p.now()
	message := schema.NewRegionEvent(event, now)
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	messageID := uuid.NewString()
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    messageID,
		Timestamp:    now,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("queue", p.queue))
		return err
	}
	p.log.Info(
		ctx,
		"Region event has been published.",
		logging.Entry("queue", p.queue),
		logging.Entry("messageID", messageID),
		logging.Entry("identifier", event.Identifier),
		logging.Entry("type", event.Type.String()),
	)
	return nil
}
