package rabbitmq

import (
	"context"
	"fmt"
	"georemind/internal/core/domain/logging"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection is an amqp.Connection that redials the broker when the
// connection drops.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{Connection: conn, log: log}
	go connection.keepAlive(url)
	return connection, nil
}

func (c *Connection) keepAlive(url string) {
	ctx := context.Background()
	for {
		reason, ok := <-c.Connection.NotifyClose(make(chan *amqp.Error, 1))
		if !ok {
			c.log.Info(ctx, "RabbitMQ connection closed.")
			return
		}

		c.log.Warning(ctx, "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(reconnectDelay)
			conn, err := amqp.Dial(url)
			if err == nil {
				c.Connection = conn
				c.log.Info(ctx, "RabbitMQ connection restored.")
				break
			}
			c.log.Error(ctx, "RabbitMQ reconnect failed.", logging.Entry("err", err))
		}
	}
}

// Channel opens a channel that is recreated when the broker closes it.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{Channel: ch, log: c.log}
	go channel.keepAlive(c)
	return channel, nil
}

// DeclareQueue opens a channel and declares a durable queue on it.
func (c *Connection) DeclareQueue(queue string) (*Channel, error) {
	channel, err := c.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}
	return channel, nil
}

type Channel struct {
	*amqp.Channel
	closed atomic.Bool
	log    logging.Logger
}

func (ch *Channel) keepAlive(conn *Connection) {
	ctx := context.Background()
	for {
		reason, ok := <-ch.Channel.NotifyClose(make(chan *amqp.Error, 1))
		if !ok || ch.IsClosed() {
			ch.Close()
			return
		}

		ch.log.Warning(ctx, "RabbitMQ channel lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(reconnectDelay)
			recreated, err := conn.Connection.Channel()
			if err == nil {
				ch.Channel = recreated
				ch.log.Info(ctx, "RabbitMQ channel restored.")
				break
			}
			ch.log.Error(ctx, "RabbitMQ channel recreation failed.", logging.Entry("err", err))
		}
	}
}

// IsClosed reports whether the channel was closed by the application.
func (ch *Channel) IsClosed() bool {
	return ch.closed.Load()
}

func (ch *Channel) Close() error {
	if !ch.closed.CompareAndSwap(false, true) {
		return amqp.ErrClosed
	}
	return ch.Channel.Close()
}

// Consume keeps consuming across channel recreation. The returned deliveries
// end only after the application closes the channel.
func (ch *Channel) Consume(queue string, consumer string) <-chan amqp.Delivery {
	deliveries := make(chan amqp.Delivery)

	go func() {
		ctx := context.Background()
		defer close(deliveries)
		for {
			d, err := ch.Channel.Consume(queue, consumer, false, false, false, false, nil)
			if err != nil {
				if ch.IsClosed() {
					return
				}
				ch.log.Error(ctx, "Consume failed.", logging.Entry("queue", queue), logging.Entry("err", err))
				time.Sleep(reconnectDelay)
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// The closed flag may be set slightly after the delivery channel ends.
			time.Sleep(reconnectDelay)
			if ch.IsClosed() {
				ch.log.Info(ctx, "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries
}
