package regionevents

import (
	"context"
	"errors"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/region"
	"georemind/internal/rabbitmq/schema"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

type fakeChannel struct {
	key       string
	published []amqp091.Publishing
	err       error
}

func (c *fakeChannel) PublishWithContext(
	ctx context.Context,
	exchange string,
	key string,
	mandatory bool,
	immediate bool,
	msg amqp091.Publishing,
) error {
	if c.err != nil {
		return c.err
	}
	c.key = key
	c.published = append(c.published, msg)
	return nil
}

func TestPublish(t *testing.T) {
	// Setup ---
	channel := &fakeChannel{}
	publisher := NewRabbitMQ(logging.NewFakeLogger(), channel, "region-events", func() time.Time { return Now })
	event := region.Event{Identifier: "Pharmacy-40--3", Type: region.EventTypeEnter, Latitude: 40, Longitude: -3, Radius: 100}

	// Exercise ---
	err := publisher.Publish(context.Background(), event)

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("region-events", channel.key)
	assert.Len(channel.published, 1)
	msg := channel.published[0]
	assert.Equal("application/json", msg.ContentType)
	assert.Equal(amqp091.Persistent, msg.DeliveryMode)
	_, err = uuid.Parse(msg.MessageId)
	assert.Nil(err)

	decoded := &schema.RegionEvent{}
	assert.Nil(decoded.Unmarshal(msg.Body))
	assert.Equal(event, decoded.Event())
	assert.True(Now.Equal(decoded.OccurredAt))
}

func TestPublishFailure(t *testing.T) {
	// Setup ---
	logger := logging.NewFakeLogger()
	channel := &fakeChannel{err: errors.New("channel closed")}
	publisher := NewRabbitMQ(logger, channel, "region-events", func() time.Time { return Now })

	// Exercise ---
	err := publisher.Publish(context.Background(), region.Event{Identifier: "A-0-0", Type: region.EventTypeExit})

	// Verify ---
	require.ErrorIs(t, err, channel.err)
	require.Len(t, logger.Records(logging.ERROR), 1)
}
