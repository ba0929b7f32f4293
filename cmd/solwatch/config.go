package main

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/solwatch/internal/pkg/validator"
)

// envPrefix is prepended to every environment variable, e.g.
// SOLWATCH_RPC_URL.
const envPrefix = "SOLWATCH"

type (
	RPCConfig struct {
		URL       string        `envconfig:"URL" default:"https://api.mainnet-beta.solana.com" validate:"required,url"`
		WSURL     string        `envconfig:"WS_URL" validate:"omitempty,url"`
		RateLimit float64       `envconfig:"RATE_LIMIT" default:"10" validate:"gte=0"`
		Burst     int           `envconfig:"BURST" default:"5" validate:"gte=1"`
		Timeout   time.Duration `envconfig:"TIMEOUT" default:"15s"`
		RetryMax  int           `envconfig:"RETRY_MAX" default:"3" validate:"gte=0"`
	}

	WatchConfig struct {
		PollInterval         time.Duration `envconfig:"POLL_INTERVAL" default:"30s" validate:"gt=0"`
		SignatureWindow      int           `envconfig:"SIGNATURE_WINDOW" default:"10" validate:"gte=1,lte=1000"`
		Concurrency          int           `envconfig:"CONCURRENCY" default:"4" validate:"gte=1"`
		Push                 bool          `envconfig:"PUSH" default:"true"`
		MaxReconnectAttempts int           `envconfig:"MAX_RECONNECT_ATTEMPTS" default:"5" validate:"gte=0"`
		ReconnectDelay       time.Duration `envconfig:"RECONNECT_DELAY" default:"5s"`
	}

	StorageConfig struct {
		Backend  string        `envconfig:"BACKEND" default:"file" validate:"oneof=file redis"`
		Dir      string        `envconfig:"DIR" default:"./data"`
		DedupTTL time.Duration `envconfig:"DEDUP_TTL" default:"168h"`
	}

	RedisConfig struct {
		Addr     string `envconfig:"ADDR" default:"localhost:6379"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		DB       int    `envconfig:"DB" default:"0"`
	}

	KafkaConfig struct {
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC" default:"solwatch.activity"`
	}

	MarketConfig struct {
		Enabled     bool          `envconfig:"ENABLED" default:"true"`
		BaseURL     string        `envconfig:"BASE_URL" default:"https://api.dexscreener.com" validate:"required,url"`
		PriceTTL    time.Duration `envconfig:"PRICE_TTL" default:"30s"`
		MetadataTTL time.Duration `envconfig:"METADATA_TTL" default:"1h"`
	}

	// Config is the whole process configuration, read from the environment.
	Config struct {
		LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
		Telemetry bool   `envconfig:"TELEMETRY" default:"false"`

		RPC     RPCConfig     `envconfig:"RPC"`
		Watch   WatchConfig   `envconfig:"WATCH"`
		Storage StorageConfig `envconfig:"STORAGE"`
		Redis   RedisConfig   `envconfig:"REDIS"`
		Kafka   KafkaConfig   `envconfig:"KAFKA"`
		Market  MarketConfig  `envconfig:"MARKET"`
	}
)

// PushURL returns the WebSocket endpoint, derived from the RPC URL when not
// set explicitly.
func (c RPCConfig) PushURL() string {
	if c.WSURL != "" {
		return c.WSURL
	}

	switch {
	case strings.HasPrefix(c.URL, "https://"):
		return "wss://" + strings.TrimPrefix(c.URL, "https://")
	case strings.HasPrefix(c.URL, "http://"):
		return "ws://" + strings.TrimPrefix(c.URL, "http://")
	default:
		return c.URL
	}
}

// loadConfig reads and validates the configuration.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
