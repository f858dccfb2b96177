package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/mq"
)

// Service consumes product events.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	for _, topic := range ProductTopics {
		if err := s.mqConsumer.RegisterHandler(topic, s.handleProductEvent); err != nil {
			return nil, fmt.Errorf("register %s handler: %w", topic, err)
		}
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return CleanupFunc(mqCleanup), nil
}

func (s *Service) handleProductEvent(ctx context.Context, msg mq.Message) error {
	var ev ProductEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return fmt.Errorf("unmarshal %s event: %w", msg.Topic, err)
	}

	s.logger.InfoContext(ctx, "handling product event",
		slog.String("topic", msg.Topic),
		slog.Int64("product_id", ev.ProductID),
		slog.Time("occurred_at", ev.OccurredAt),
	)
	return nil
}
