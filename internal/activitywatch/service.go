// Package activitywatch discovers new transactions of watched Solana
// addresses and turns them into activity events.
//
// Two channels run side by side. A push connection, when configured,
// subscribes every watched address and reacts to account and log
// notifications; its state moves through DISCONNECTED, CONNECTING,
// SUBSCRIBED and, once the reconnect budget is spent, DEGRADED. A polling
// loop always runs as a backstop and scans the most recent signatures of
// every watched address.
//
// Both channels may discover the same signature. Every signature goes
// through a single in-process serialization point and the DedupLedger, so a
// transaction is classified and emitted once.
package activitywatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/solwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/solwatch/internal/pkg/types"
	"github.com/gabapcia/solwatch/internal/txclassify"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// ErrServiceAlreadyStarted is returned when Start is called on a running service.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultPollInterval         = 30 * time.Second
	defaultSignatureWindow      = 10
	defaultConcurrency          = 4
	defaultMaxReconnectAttempts = 5
	defaultReconnectDelay       = 5 * time.Second
	defaultQueueSize            = 64
)

// Registry exposes the watched addresses.
type Registry interface {
	// Refresh resynchronizes the watched set with its storage and returns it.
	Refresh(ctx context.Context) ([]string, error)

	// Snapshot returns the watched set without touching storage.
	Snapshot() []string
}

// Service runs the activity watch.
type Service interface {
	// Start launches the polling loop and, when a push channel is
	// configured, the push loop. Errors after startup are logged and never
	// returned.
	Start(ctx context.Context) error

	// Close stops both loops and closes the push connection. In-flight
	// signature processing is not awaited.
	Close()

	// State reports the push channel state.
	State() State
}

type closeFunc func()

// task is a unit of work queued from push notifications: either the poll of
// one address or the processing of one signature.
type task struct {
	address   string
	signature string
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	state atomic.Int32

	connMu     sync.Mutex
	conn       PushConn
	subscribed types.Set[string]

	chain      ChainSource
	registry   Registry
	classifier txclassify.Classifier
	push       PushChannel
	ledger     DedupLedger
	emitter    Emitter
	fetchRetry retry.Retry

	inflight singleflight.Group
	queue    chan task

	pollInterval         time.Duration
	signatureWindow      int
	concurrency          int
	maxReconnectAttempts int
	reconnectDelay       time.Duration

	now     func() time.Time
	metrics metrics
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

// Start implements Service. The watched set is loaded before any loop starts
// and a failure to load it is returned.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	if _, err := s.registry.Refresh(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	s.closeFunc = func() {
		cancel()
		s.closeConn()
		s.setState(StateDisconnected)
	}

	for range s.concurrency {
		go s.runWorker(ctx)
	}

	go s.runPoll(ctx)

	if s.push != nil {
		go s.runPush(ctx)
	}

	s.isStarted = true
	return nil
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	push                 PushChannel
	ledger               DedupLedger
	emitter              Emitter
	fetchRetry           retry.Retry
	pollInterval         time.Duration
	signatureWindow      int
	concurrency          int
	maxReconnectAttempts int
	reconnectDelay       time.Duration
}

// Option configures the service.
type Option func(*config)

// New creates the activity watch service. Without options the service only
// polls, remembers nothing between signatures and discards every event.
func New(chain ChainSource, registry Registry, classifier txclassify.Classifier, opts ...Option) *service {
	cfg := config{
		push:                 nil,
		ledger:               nopLedger{},
		emitter:              nopEmitter{},
		fetchRetry:           defaultFetchRetry(),
		pollInterval:         defaultPollInterval,
		signatureWindow:      defaultSignatureWindow,
		concurrency:          defaultConcurrency,
		maxReconnectAttempts: defaultMaxReconnectAttempts,
		reconnectDelay:       defaultReconnectDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		subscribed:           types.NewSet[string](),
		chain:                chain,
		registry:             registry,
		classifier:           classifier,
		push:                 cfg.push,
		ledger:               cfg.ledger,
		emitter:              cfg.emitter,
		fetchRetry:           cfg.fetchRetry,
		queue:                make(chan task, defaultQueueSize),
		pollInterval:         cfg.pollInterval,
		signatureWindow:      cfg.signatureWindow,
		concurrency:          max(cfg.concurrency, 1),
		maxReconnectAttempts: max(cfg.maxReconnectAttempts, 0),
		reconnectDelay:       cfg.reconnectDelay,
		now:                  time.Now,
		metrics:              newMetrics(),
		tracer:               newTracer(),
	}
}

// defaultFetchRetry retries transaction fetches while the node has not
// indexed the transaction yet.
func defaultFetchRetry() retry.Retry {
	return retry.New(
		retry.WithAttempts(4),
		retry.WithDelay(500*time.Millisecond),
		retry.WithMaxDelay(4*time.Second),
		retry.WithRetryIf(func(err error) bool {
			return errors.Is(err, ErrNotFound)
		}),
	)
}

// WithPushChannel enables the push channel.
func WithPushChannel(p PushChannel) Option {
	return func(c *config) {
		c.push = p
	}
}

// WithDedupLedger sets the ledger of processed signatures.
func WithDedupLedger(l DedupLedger) Option {
	return func(c *config) {
		c.ledger = l
	}
}

// WithEmitter sets the sink of activity events.
func WithEmitter(e Emitter) Option {
	return func(c *config) {
		c.emitter = e
	}
}

// WithFetchRetry replaces the retry policy of transaction fetches.
func WithFetchRetry(r retry.Retry) Option {
	return func(c *config) {
		c.fetchRetry = r
	}
}

// WithPollInterval sets the period of the polling backstop.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithSignatureWindow sets how many recent signatures are fetched per poll.
func WithSignatureWindow(n int) Option {
	return func(c *config) {
		c.signatureWindow = n
	}
}

// WithConcurrency bounds the addresses polled at once and the workers
// serving push notifications.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}

// WithMaxReconnectAttempts sets how many consecutive reconnects are tried
// before the push channel is abandoned.
func WithMaxReconnectAttempts(n int) Option {
	return func(c *config) {
		c.maxReconnectAttempts = n
	}
}

// WithReconnectDelay sets the fixed wait before each reconnect.
func WithReconnectDelay(d time.Duration) Option {
	return func(c *config) {
		c.reconnectDelay = d
	}
}
