package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	StorageSqlite   = "sqlite"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	MonitorMQTT      = "mqtt"
	MonitorSimulated = "simulated"
)

type Config struct {
	Port           uint16   `env:"PORT" envDefault:"9000"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	SentryDsn      *url.URL `env:"SENTRY_DSN"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SqlitePath     string `env:"SQLITE_PATH" envDefault:"data/georemind.db"`
	RedisURL       string `env:"REDIS_URL"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"georemind"`
	PostgresqlURL  string `env:"POSTGRESQL_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	Monitor            string        `env:"MONITOR" envDefault:"simulated"`
	MonitorMaxRegions  int           `env:"MONITOR_MAX_REGIONS" envDefault:"20"`
	MonitorEventBuffer int           `env:"MONITOR_EVENT_BUFFER" envDefault:"64"`
	MqttBrokerURL      string        `env:"MQTT_BROKER_URL" envDefault:"tcp://localhost:1883"`
	MqttClientID       string        `env:"MQTT_CLIENT_ID"`
	MqttTopicPrefix    string        `env:"MQTT_TOPIC_PREFIX" envDefault:"georemind"`
	MqttTimeout        time.Duration `env:"MQTT_TIMEOUT" envDefault:"5s"`

	RabbitmqURL               string `env:"RABBITMQ_URL"`
	RabbitmqRegionEventsQueue string `env:"RABBITMQ_REGION_EVENTS_QUEUE" envDefault:"region-events"`

	TelegramBaseURL        url.URL       `env:"TELEGRAM_BASE_URL" envDefault:"https://api.telegram.org"`
	TelegramToken          string        `env:"TELEGRAM_TOKEN"`
	TelegramChatID         int64         `env:"TELEGRAM_CHAT_ID"`
	TelegramRequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"5s"`

	AwsRegion         string `env:"AWS_REGION" envDefault:"eu-central-1"`
	AwsAccessKey      string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey      string `env:"AWS_SECRET_KEY"`
	AwsEmailSender    string `env:"AWS_EMAIL_SENDER"`
	AwsEmailRecipient string `env:"AWS_EMAIL_RECIPIENT"`

	AddReminderRateLimitPerHour uint16 `env:"ADD_REMINDER_RATE_LIMIT_PER_HOUR" envDefault:"60"`

	NotifierBreakerMaxFailures uint32        `env:"NOTIFIER_BREAKER_MAX_FAILURES" envDefault:"5"`
	NotifierBreakerTimeout     time.Duration `env:"NOTIFIER_BREAKER_TIMEOUT" envDefault:"1m"`
}

func (c *Config) IsTelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func (c *Config) IsEmailEnabled() bool {
	return c.AwsAccessKey != "" && c.AwsEmailSender != "" && c.AwsEmailRecipient != ""
}

func (c *Config) IsRabbitmqEnabled() bool {
	return c.RabbitmqURL != ""
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageSqlite:
		if c.SqlitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set")
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL must be set")
		}
	case StoragePostgres:
		if c.PostgresqlURL == "" {
			return fmt.Errorf("POSTGRESQL_URL must be set")
		}
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND value: %q", c.StorageBackend)
	}

	switch c.Monitor {
	case MonitorMQTT, MonitorSimulated:
	default:
		return fmt.Errorf("invalid MONITOR value: %q", c.Monitor)
	}
	if c.MonitorMaxRegions < 1 {
		return fmt.Errorf("MONITOR_MAX_REGIONS must be positive")
	}
	if c.MonitorEventBuffer < 0 {
		return fmt.Errorf("MONITOR_EVENT_BUFFER must not be negative")
	}
	return nil
}

func Load() (*Config, error) {
	return load(env.Options{})
}

func load(opts env.Options) (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg, opts); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
