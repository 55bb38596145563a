package delivery

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catrescue/internal/errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

type deliveryFunc func(ctx context.Context) error

func (f deliveryFunc) Serve(ctx context.Context) error { return f(ctx) }

type recordingShutdowner struct {
	called chan []fx.ShutdownOption
}

func (s *recordingShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	s.called <- opts

	return nil
}

func TestStart_ShutsDownWhenADeliveryFails(t *testing.T) {
	shutdowner := &recordingShutdowner{called: make(chan []fx.ShutdownOption, 1)}
	served := make(chan struct{}, 1)

	Start(context.Background(), StartParams{
		Shutdowner: shutdowner,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Deliveries: []Delivery{
			deliveryFunc(func(context.Context) error {
				served <- struct{}{}

				return nil
			}),
			deliveryFunc(func(context.Context) error { return errors.New("address in use") }),
		},
	})

	select {
	case opts := <-shutdowner.called:
		assert.Len(t, opts, 1)
	case <-time.After(time.Second):
		t.Fatal("shutdown was not requested")
	}

	select {
	case <-served:
	case <-time.After(time.Second):
		t.Fatal("healthy delivery was not served")
	}
}
