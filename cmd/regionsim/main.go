// Command regionsim plays the device side of the MQTT region monitor. It
// follows the region set registered by georemind, walks a route and reports
// every boundary crossing, over MQTT or through a RabbitMQ queue.
package main

import (
	"context"
	"flag"
	"fmt"
	"georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/region"
	zaplogging "georemind/internal/implementations/logging"
	mqttmonitor "georemind/internal/implementations/region_monitor/mqtt"
	"georemind/internal/implementations/region_monitor/simulated"
	"georemind/internal/rabbitmq"
	regionevents "georemind/internal/rabbitmq/publishers/region_events"
	"os"
	"os/signal"
	"syscall"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

type eventPublisher interface {
	Publish(ctx context.Context, event region.Event) error
}

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker address")
	prefix := flag.String("prefix", "georemind", "MQTT topic prefix shared with the server")
	rawRoute := flag.String("route", "40,-3", "points to visit, e.g. \"40.01,-3;40,-3\"")
	interval := flag.Duration("interval", 2*time.Second, "time spent at every point")
	maxRegions := flag.Int("max-regions", 20, "number of regions the simulated device can monitor")
	rabbitmqURL := flag.String("rabbitmq", "", "publish events to RabbitMQ instead of MQTT")
	queue := flag.String("queue", "region-events", "RabbitMQ queue for region events")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	route, err := parseRoute(*rawRoute)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := zaplogging.NewZapLogger(*logLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientID := "regionsim-" + uuid.NewString()
	client := paho.NewClient(paho.NewClientOptions().AddBroker(*broker).SetClientID(clientID))
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		logger.Error(ctx, "Could not connect to MQTT broker.", logging.Entry("err", token.Error()))
		os.Exit(1)
	}
	defer client.Disconnect(250)
	logger.Info(ctx, "Connected to MQTT broker.", logging.Entry("broker", *broker), logging.Entry("clientID", clientID))

	device := mqttmonitor.NewDevice(logger, client, *prefix, 5*time.Second)
	var publisher eventPublisher = device
	if *rabbitmqURL != "" {
		conn, err := rabbitmq.Dial(*rabbitmqURL, logger)
		if err != nil {
			logger.Error(ctx, "Could not connect to RabbitMQ.", logging.Entry("err", err))
			os.Exit(1)
		}
		defer conn.Close()
		channel, err := conn.DeclareQueue(*queue)
		if err != nil {
			logger.Error(ctx, "Could not declare RabbitMQ queue.", logging.Entry("err", err))
			os.Exit(1)
		}
		defer channel.Close()
		publisher = regionevents.NewRabbitMQ(logger, channel, *queue, func() time.Time { return time.Now().UTC() })
	}

	monitor := simulated.New(logger, *maxRegions, 64)
	err = device.FollowRegions(func(regions []region.Region) {
		if err := monitor.ReplaceRegisteredRegions(ctx, regions); err != nil {
			logger.Warning(ctx, "Region set rejected.", logging.Entry("count", len(regions)), logging.Entry("err", err))
			return
		}
		logger.Info(ctx, "Region set replaced.", logging.Entry("count", len(regions)))
	})
	if err != nil {
		logger.Error(ctx, "Could not follow region set.", logging.Entry("err", err))
		os.Exit(1)
	}

	go forward(ctx, logger, monitor.Events(), publisher)
	walk(ctx, logger, monitor, route, *interval)
	monitor.Close()
}

func forward(ctx context.Context, log logging.Logger, events <-chan region.Event, publisher eventPublisher) {
	for event := range events {
		if err := publisher.Publish(ctx, event); err != nil {
			logging.Error(ctx, log, err, logging.Entry("identifier", event.Identifier))
			continue
		}
		log.Info(
			ctx,
			"Region event has been reported.",
			logging.Entry("identifier", event.Identifier),
			logging.Entry("type", event.Type.String()),
		)
	}
}

// walk visits the route points in order and stays at the last one until the
// context is done.
func walk(ctx context.Context, log logging.Logger, monitor *simulated.Monitor, route []point, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ix := 0; ; ix++ {
		// Staying at the last point still reports regions registered later.
		p := route[min(ix, len(route)-1)]
		if err := monitor.UpdateLocation(ctx, p.latitude, p.longitude); err != nil {
			return
		}
		log.Debug(ctx, "Location updated.", logging.Entry("latitude", p.latitude), logging.Entry("longitude", p.longitude))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
