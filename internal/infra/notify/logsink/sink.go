// Package logsink emits activity events as structured log entries.
package logsink

import (
	"context"

	"go.uber.org/zap"

	"github.com/gabapcia/solwatch/internal/activitywatch"
	"github.com/gabapcia/solwatch/internal/pkg/logger"
	"github.com/gabapcia/solwatch/internal/txclassify"
)

type sink struct {
	log *zap.SugaredLogger
}

var _ activitywatch.Emitter = (*sink)(nil)

// Option configures the sink.
type Option func(*sink)

// WithLogger writes events to l instead of the global logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *sink) {
		s.log = l.Sugar()
	}
}

// New returns an emitter that logs each event at info level, using the
// event description as the message.
func New(opts ...Option) *sink {
	s := &sink{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func fields(event txclassify.Event) []any {
	kv := []any{
		"activity.signature", event.Signature,
		"activity.address", event.Address,
		"activity.slot", event.Slot,
		"activity.type", string(event.Type),
		"activity.platform", event.Platform,
	}

	if event.BlockTime != nil {
		kv = append(kv, "activity.block_time", event.BlockTime.UTC())
	}
	if event.ValueUSD != nil {
		kv = append(kv, "activity.value_usd", *event.ValueUSD)
	}
	if event.Failed {
		kv = append(kv, "activity.failed", true)
	}

	return kv
}

// Emit logs event. It never fails.
func (s *sink) Emit(ctx context.Context, event txclassify.Event) error {
	if s.log != nil {
		s.log.Infow(event.Description, fields(event)...)
		return nil
	}

	logger.Info(ctx, event.Description, fields(event)...)
	return nil
}
