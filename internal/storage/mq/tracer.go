package mq

import (
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"
)

var (
	tracer  = otel.Tracer("internal/storage/mq")
	kTracer = kotel.NewTracer()
)

// kafkaHooks returns the franz-go hooks emitting spans and client metrics.
func kafkaHooks() []kgo.Hook {
	k := kotel.NewKotel(
		kotel.WithTracer(kTracer),
		kotel.WithMeter(kotel.NewMeter()),
	)
	return k.Hooks()
}
