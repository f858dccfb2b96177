package relay

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

// Service publishes pending outbox messages to the broker.
type Service struct {
	cfg           config.Relay
	logger        *slog.Logger
	db            db.DB
	outboxMsgRepo repository.OutboxMsgRepository
	mqProducer    mq.Producer

	stopChan chan struct{}
}

func NewService(
	cfg config.Relay,
	logger *slog.Logger,
	db db.DB,
	outboxMsgRepo repository.OutboxMsgRepository,
	mqProducer mq.Producer,
) *Service {
	return &Service{
		cfg:           cfg,
		logger:        logger.With(slog.String("service", "relay")),
		db:            db,
		outboxMsgRepo: outboxMsgRepo,
		mqProducer:    mqProducer,
		stopChan:      make(chan struct{}),
	}
}

type CleanupFunc func()

// Run starts the relay loop in the background. The returned cleanup waits for the
// in-flight batch up to ShutdownTimeout, then cancels it.
func (s *Service) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		s.run(ctx)
	}()

	return func() {
		close(s.stopChan)
		select {
		case <-stoppedChan:
		case <-time.After(s.cfg.ShutdownTimeout):
			cancel()
			<-stoppedChan
		}
		cancel()
	}
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			if _, err := s.RelayBatch(ctx); err != nil {
				s.logger.ErrorContext(ctx, "error relaying outbox msgs", slog.Any("error", err))
			}
		}
	}
}

// RelayBatch publishes one batch of pending messages and records the outcome of each.
// A message that fails to publish is marked processed with its error.
func (s *Service) RelayBatch(ctx context.Context) (int, error) {
	var relayed int
	err := s.db.WithTx(ctx, func(db db.DB) error {
		outboxMsgRepo := s.outboxMsgRepo.WithDB(db)

		//nolint:gosec
		msgs, err := outboxMsgRepo.ListUnprocessedOutboxMsgs(ctx, int32(s.cfg.BatchSize))
		if err != nil {
			return fmt.Errorf("list unprocessed outbox msgs: %w", err)
		}

		if len(msgs) == 0 {
			return nil
		}

		s.logger.InfoContext(ctx, "relaying outbox msgs", slog.Int("count", len(msgs)))

		outcomes := make([]repository.OutboxMsgOutcome, len(msgs))
		var wg sync.WaitGroup
		for i, msg := range msgs {
			wg.Go(func() {
				outcomes[i] = s.produce(ctx, msg)
			})
		}
		wg.Wait()

		if err := outboxMsgRepo.BulkUpdateOutboxMsgs(ctx, outcomes); err != nil {
			return fmt.Errorf("bulk update outbox msgs: %w", err)
		}

		relayed = len(msgs)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return relayed, nil
}

func (s *Service) produce(ctx context.Context, msg repository.OutboxMsg) repository.OutboxMsgOutcome {
	err := s.mqProducer.Produce(ctx, mq.ProduceMsg{
		Topic:        msg.Topic,
		Headers:      msg.Headers,
		Payload:      msg.Payload,
		PartitionKey: msg.PartitionKey,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "error producing message",
			slog.String("outbox_msg_id", msg.ID.String()),
			slog.String("topic", msg.Topic),
			slog.Any("error", err),
		)
		return repository.OutboxMsgOutcome{ID: msg.ID, Error: ptr.New(err.Error())}
	}

	return repository.OutboxMsgOutcome{ID: msg.ID}
}
