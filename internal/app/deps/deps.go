package deps

import (
	"context"
	"fmt"
	"georemind/internal/config"
	"georemind/internal/core/domain/activation"
	dl "georemind/internal/core/domain/logging"
	"georemind/internal/core/domain/notification"
	drl "georemind/internal/core/domain/rate_limiter"
	"georemind/internal/core/domain/region"
	"georemind/internal/core/domain/reminder"
	"georemind/internal/core/domain/storage"
	"georemind/internal/db"
	activationlog "georemind/internal/db/activation_log"
	kvpostgres "georemind/internal/db/kv/postgres"
	kvredis "georemind/internal/db/kv/redis"
	kvsqlite "georemind/internal/db/kv/sqlite"
	reminderstore "georemind/internal/db/reminder_store"
	"georemind/internal/implementations/logging"
	"georemind/internal/implementations/metrics"
	"georemind/internal/implementations/notifier"
	ratelimiter "georemind/internal/implementations/rate_limiter"
	mqttmonitor "georemind/internal/implementations/region_monitor/mqtt"
	"georemind/internal/implementations/region_monitor/simulated"
	"georemind/internal/rabbitmq"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger
	Metrics   *metrics.Metrics

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	Durable       storage.DurableStore
	ReminderStore reminder.Store
	ActivationLog activation.Log

	// RateLimiter is nil when Redis is not configured.
	RateLimiter drl.RateLimiter

	Monitor region.Monitor
	// Simulator is set when the simulated monitor is used. It lets the HTTP
	// API move the simulated device.
	Simulator *simulated.Monitor

	Notifier notification.Notifier
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	deps.initAwsConfig()
	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.Metrics = metrics.New()

	closeRedisClient := deps.initRedisClient()
	closeDurable := deps.initDurable()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()
	closeMonitor := deps.initMonitor()

	deps.ReminderStore = reminderstore.New(deps.Logger, deps.Durable)
	deps.ActivationLog = activationlog.New(deps.Logger, deps.Durable)
	if deps.Redis != nil {
		deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	}
	deps.Notifier = deps.initNotifier()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeMonitor,
			closeSseServer,
			closeRabbitmqConn,
			closeDurable,
			closeRedisClient,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger, err := logging.NewZapLogger(deps.Config.LogLevel)
	if err != nil {
		panic(err)
	}
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRedisClient() func() {
	if deps.Config.RedisURL == "" {
		deps.Logger.Info(context.Background(), "Redis is disabled.")
		return func() {}
	}

	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initDurable() func() {
	ctx := context.Background()
	switch deps.Config.StorageBackend {
	case config.StorageRedis:
		deps.Durable = kvredis.New(deps.Redis, deps.Config.RedisKeyPrefix)
		deps.Logger.Info(ctx, "Durable values are stored in Redis.")
		return func() {}
	case config.StoragePostgres:
		pool, err := db.Connect(ctx, deps.Config.PostgresqlURL, deps.Config.MigrationsPath)
		if err != nil {
			deps.Logger.Error(ctx, "Could not connect to DB.", dl.Entry("err", err))
			panic(err)
		}
		deps.DB = pool
		deps.Durable = kvpostgres.New(pool)
		deps.Logger.Info(ctx, "Durable values are stored in PostgreSQL.")
		return func() {
			deps.Logger.Info(context.Background(), "Shutting down DB connection.")
			pool.Close()
			deps.Logger.Info(context.Background(), "DB connection shut down.")
		}
	default:
		store, err := kvsqlite.Open(ctx, deps.Config.SqlitePath)
		if err != nil {
			deps.Logger.Error(ctx, "Could not open SQLite database.", dl.Entry("err", err))
			panic(err)
		}
		deps.Durable = store
		deps.Logger.Info(ctx, "Durable values are stored in SQLite.", dl.Entry("path", deps.Config.SqlitePath))
		return func() {
			deps.Logger.Info(context.Background(), "Closing SQLite database.")
			store.Close()
			deps.Logger.Info(context.Background(), "SQLite database closed.")
		}
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if !deps.Config.IsRabbitmqEnabled() {
		deps.Logger.Info(context.Background(), "RabbitMQ is disabled.")
		return func() {}
	}

	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initMonitor() func() {
	ctx := context.Background()
	if deps.Config.Monitor == config.MonitorSimulated {
		monitor := simulated.New(deps.Logger, deps.Config.MonitorMaxRegions, deps.Config.MonitorEventBuffer)
		deps.Monitor = monitor
		deps.Simulator = monitor
		deps.Logger.Info(ctx, "Simulated region monitor is used.")
		return func() { monitor.Close() }
	}

	clientID := deps.Config.MqttClientID
	if clientID == "" {
		clientID = "georemind-" + uuid.NewString()
	}
	opts := paho.NewClientOptions().
		AddBroker(deps.Config.MqttBrokerURL).
		SetClientID(clientID).
		SetCleanSession(false).
		SetResumeSubs(true).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(client paho.Client, err error) {
			deps.Logger.Warning(context.Background(), "MQTT connection lost.", dl.Entry("err", err))
		})
	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(deps.Config.MqttTimeout) || token.Error() != nil {
		err := token.Error()
		if err == nil {
			err = fmt.Errorf("connect to %s: timeout", deps.Config.MqttBrokerURL)
		}
		deps.Logger.Error(ctx, "Could not connect to MQTT broker.", dl.Entry("err", err))
		panic(err)
	}

	monitor := mqttmonitor.New(
		deps.Logger,
		client,
		deps.Config.MqttTopicPrefix,
		deps.Config.MonitorMaxRegions,
		deps.Config.MqttTimeout,
		deps.Config.MonitorEventBuffer,
	)
	if err := monitor.Subscribe(); err != nil {
		deps.Logger.Error(ctx, "Could not subscribe to region events.", dl.Entry("err", err))
		panic(err)
	}
	deps.Monitor = monitor
	deps.Logger.Info(
		ctx,
		"MQTT region monitor is used.",
		dl.Entry("broker", deps.Config.MqttBrokerURL),
		dl.Entry("clientID", clientID),
	)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down MQTT client.")
		monitor.Close()
		client.Disconnect(250)
		deps.Logger.Info(context.Background(), "MQTT client shut down.")
	}
}

func (deps *Deps) initNotifier() notification.Notifier {
	breakerSettings := func(name string) notifier.BreakerSettings {
		return notifier.BreakerSettings{
			Name:        name,
			MaxFailures: deps.Config.NotifierBreakerMaxFailures,
			Timeout:     deps.Config.NotifierBreakerTimeout,
		}
	}

	notifiers := []notification.Notifier{
		notifier.NewLog(deps.Logger),
		notifier.NewSSE(deps.SseServer),
	}
	if deps.Config.IsTelegramEnabled() {
		telegram := notifier.NewTelegram(
			deps.Config.TelegramBaseURL,
			deps.Config.TelegramToken,
			deps.Config.TelegramChatID,
			deps.Config.TelegramRequestTimeout,
		)
		notifiers = append(notifiers, notifier.NewBreaker(deps.Logger, telegram, breakerSettings("telegram")))
	}
	if deps.Config.IsEmailEnabled() {
		email := notifier.NewEmail(deps.AwsConfig, deps.Config.AwsEmailSender, deps.Config.AwsEmailRecipient)
		notifiers = append(notifiers, notifier.NewBreaker(deps.Logger, email, breakerSettings("email")))
	}
	deps.Logger.Info(context.Background(), "Notifiers have been configured.", dl.Entry("count", len(notifiers)))
	return notifier.NewMulti(notifiers...)
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
