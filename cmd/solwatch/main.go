// Command solwatch watches Solana wallets and reports their activity.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/handlers/cli"
	"github.com/gabapcia/solwatch/internal/infra/blockchain/solana"
	"github.com/gabapcia/solwatch/internal/infra/market/dexscreener"
	"github.com/gabapcia/solwatch/internal/infra/notify/kafka"
	"github.com/gabapcia/solwatch/internal/infra/notify/logsink"
	"github.com/gabapcia/solwatch/internal/infra/storage/jsonfile"
	"github.com/gabapcia/solwatch/internal/infra/storage/redis"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/solwatch/internal/pkg/transport/http"
	"github.com/gabapcia/solwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/solwatch/internal/txclassify"
	"github.com/gabapcia/solwatch/internal/walletregistry"
)

const serviceName = "solwatch"

func main() {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.Telemetry {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "initializing telemetry: %v\n", err)
			os.Exit(1)
		}
		defer shutdown(context.Background())
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithService(serviceName)); err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "solwatch failed", "error", err)
		os.Exit(1)
	}
}

// storage bundles the two persistence concerns, which share one backend.
type storage struct {
	wallets walletregistry.WalletStorage
	ledger  activitywatch.DedupLedger
	close   func() error
}

func openStorage(ctx context.Context, cfg Config) (storage, error) {
	switch cfg.Storage.Backend {
	case "redis":
		c, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithDedupTTL(cfg.Storage.DedupTTL),
		)
		if err != nil {
			return storage{}, fmt.Errorf("connecting to redis: %w", err)
		}
		return storage{wallets: c, ledger: c, close: c.Close}, nil
	case "file":
		s, err := jsonfile.Open(cfg.Storage.Dir, jsonfile.WithRetention(cfg.Storage.DedupTTL))
		if err != nil {
			return storage{}, fmt.Errorf("opening %s: %w", cfg.Storage.Dir, err)
		}
		return storage{wallets: s, ledger: s, close: func() error { return nil }}, nil
	default:
		return storage{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func run(ctx context.Context, cfg Config) (err error) {
	httpClient := transporthttp.NewStandardClient(
		transporthttp.WithTimeout(cfg.RPC.Timeout),
		transporthttp.WithRetryMax(cfg.RPC.RetryMax),
	)

	rpc := jsonrpc.NewClient(httpClient, cfg.RPC.URL, jsonrpc.WithRateLimit(cfg.RPC.RateLimit, cfg.RPC.Burst))
	chain := solana.NewClient(rpc)

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, store.close()) }()

	registry := walletregistry.New(store.wallets)

	var classifierOpts []txclassify.Option
	if cfg.Market.Enabled {
		market := dexscreener.NewClient(httpClient,
			dexscreener.WithBaseURL(cfg.Market.BaseURL),
			dexscreener.WithDecimalsSource(chain),
			dexscreener.WithPriceTTL(cfg.Market.PriceTTL),
			dexscreener.WithMetadataTTL(cfg.Market.MetadataTTL),
		)
		classifierOpts = append(classifierOpts,
			txclassify.WithPriceSource(market),
			txclassify.WithMetadataSource(market),
		)
	}
	classifier := txclassify.New(classifierOpts...)

	emitters := activitywatch.MultiEmitter{logsink.New()}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() { err = errors.Join(err, publisher.Close()) }()

		emitters = append(emitters, publisher)
	}

	watchOpts := []activitywatch.Option{
		activitywatch.WithDedupLedger(store.ledger),
		activitywatch.WithEmitter(emitters),
		activitywatch.WithPollInterval(cfg.Watch.PollInterval),
		activitywatch.WithSignatureWindow(cfg.Watch.SignatureWindow),
		activitywatch.WithConcurrency(cfg.Watch.Concurrency),
		activitywatch.WithMaxReconnectAttempts(cfg.Watch.MaxReconnectAttempts),
		activitywatch.WithReconnectDelay(cfg.Watch.ReconnectDelay),
	}
	if cfg.Watch.Push {
		watchOpts = append(watchOpts, activitywatch.WithPushChannel(solana.NewPushChannel(cfg.RPC.PushURL())))
	}

	watcher := activitywatch.New(chain, registry, classifier, watchOpts...)
	registry.Observe(watcher)

	return cli.Run(ctx, registry, watcher, chain, classifier)
}
