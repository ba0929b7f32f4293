package activitywatch

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/solwatch/internal/activitywatch"

type metrics struct {
	discovered metric.Int64Counter
	emitted    metric.Int64Counter
	pollErrors metric.Int64Counter
	reconnects metric.Int64Counter
	dropped    metric.Int64Counter
}

func newMetrics() metrics {
	meter := otel.Meter(instrumentationName)

	var (
		m    metrics
		err  error
		errs []error
	)

	m.discovered, err = meter.Int64Counter("solwatch.signatures.discovered",
		metric.WithDescription("Signatures not yet processed found by either channel"),
	)
	errs = append(errs, err)

	m.emitted, err = meter.Int64Counter("solwatch.events.emitted",
		metric.WithDescription("Activity events handed to the emitter"),
	)
	errs = append(errs, err)

	m.pollErrors, err = meter.Int64Counter("solwatch.poll.errors",
		metric.WithDescription("Failed polls of a watched address"),
	)
	errs = append(errs, err)

	m.reconnects, err = meter.Int64Counter("solwatch.push.reconnects",
		metric.WithDescription("Push channel reconnect attempts"),
	)
	errs = append(errs, err)

	m.dropped, err = meter.Int64Counter("solwatch.push.dropped",
		metric.WithDescription("Push notifications dropped because the work queue was full"),
	)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		otel.Handle(err)
	}

	return m
}

func newTracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
