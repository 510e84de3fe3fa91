package consumers

import (
	"context"
	"georemind/internal/app/deps"
	"georemind/internal/app/services"
	dl "georemind/internal/core/domain/logging"
	regionevents "georemind/internal/rabbitmq/consumers/region_events"
)

func initRegionEventsConsumer(deps *deps.Deps, services *services.Services) func() {
	queue := deps.Config.RabbitmqRegionEventsQueue
	rabbitmqChannel, err := deps.Rabbitmq.DeclareQueue(queue)
	if err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not declare RabbitMQ queue.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	regionEventsConsumer := regionevents.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.ProcessActivation,
	)
	regionEventsConsumer.Consume()

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

// InitConsumers starts the AMQP consumers. It does nothing when RabbitMQ is
// not configured.
func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	if deps.Rabbitmq == nil {
		return func() {}
	}

	shutdownRegionEventsConsumer := initRegionEventsConsumer(deps, services)

	return func() {
		shutdownRegionEventsConsumer()
	}
}
