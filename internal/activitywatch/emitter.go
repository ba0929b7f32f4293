package activitywatch

import (
	"context"
	"errors"

	"github.com/gabapcia/solwatch/internal/txclassify"
)

// Emitter forwards classified activity to an external sink.
type Emitter interface {
	// Emit delivers event. Failures are logged by the caller and never block
	// the signature from being marked processed.
	Emit(ctx context.Context, event txclassify.Event) error
}

// MultiEmitter fans an event out to every sink in order. All sinks are
// attempted even when one of them fails.
type MultiEmitter []Emitter

var _ Emitter = (MultiEmitter)(nil)

// Emit implements Emitter.
func (m MultiEmitter) Emit(ctx context.Context, event txclassify.Event) error {
	var errs []error
	for _, e := range m {
		if err := e.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

type nopEmitter struct{}

func (nopEmitter) Emit(context.Context, txclassify.Event) error {
	return nil
}
