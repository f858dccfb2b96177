package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

// OutboxMsg is a product event waiting in the outbox table.
type OutboxMsg struct {
	ID           uuid.UUID
	Topic        string
	Headers      map[string]string
	Payload      json.RawMessage
	PartitionKey *string
}

// OutboxMsgOutcome records the relay result of one message. A nil Error means it was published.
type OutboxMsgOutcome struct {
	ID    uuid.UUID
	Error *string
}

type OutboxMsgRepository interface {
	WithDB(db db.DB) OutboxMsgRepository
	CreateOutboxMsg(ctx context.Context, msg OutboxMsg) error
	// ListUnprocessedOutboxMsgs locks up to limit pending messages, oldest first.
	ListUnprocessedOutboxMsgs(ctx context.Context, limit int32) ([]OutboxMsg, error)
	BulkUpdateOutboxMsgs(ctx context.Context, outcomes []OutboxMsgOutcome) error
}

type outboxMsgRepository struct {
	db      db.DB
	queries sqlc.Queries
	now     func() time.Time
}

func NewOutboxMsgRepository(db db.DB, queries sqlc.Queries) OutboxMsgRepository {
	return &outboxMsgRepository{
		db:      db,
		queries: queries,
		now:     time.Now,
	}
}

func (r outboxMsgRepository) WithDB(db db.DB) OutboxMsgRepository {
	return &outboxMsgRepository{
		db:      db,
		queries: r.queries,
		now:     r.now,
	}
}

func (r outboxMsgRepository) CreateOutboxMsg(ctx context.Context, msg OutboxMsg) error {
	var headers *json.RawMessage
	if len(msg.Headers) > 0 {
		b, err := json.Marshal(msg.Headers)
		if err != nil {
			return fmt.Errorf("marshal headers: %w", err)
		}
		raw := json.RawMessage(b)
		headers = &raw
	}

	if err := r.queries.OutboxMsgCreate(ctx, r.db, sqlc.OutboxMsgCreateParams{
		Topic:        msg.Topic,
		Headers:      headers,
		Payload:      msg.Payload,
		PartitionKey: msg.PartitionKey,
		CreatedAt:    r.now().UTC(),
	}); err != nil {
		return fmt.Errorf("create outbox msg: %w", err)
	}

	return nil
}

func (r outboxMsgRepository) ListUnprocessedOutboxMsgs(ctx context.Context, limit int32) ([]OutboxMsg, error) {
	rows, err := r.queries.OutboxMsgListUnprocessed(ctx, r.db, limit)
	if err != nil {
		return nil, fmt.Errorf("list unprocessed outbox msgs: %w", err)
	}

	msgs := make([]OutboxMsg, 0, len(rows))
	for _, row := range rows {
		headers := map[string]string{}
		if row.Headers != nil {
			if err := json.Unmarshal(*row.Headers, &headers); err != nil {
				return nil, fmt.Errorf("unmarshal headers of outbox msg %s: %w", row.ID, err)
			}
		}

		msgs = append(msgs, OutboxMsg{
			ID:           row.ID,
			Topic:        row.Topic,
			Headers:      headers,
			Payload:      row.Payload,
			PartitionKey: row.PartitionKey,
		})
	}

	return msgs, nil
}

func (r outboxMsgRepository) BulkUpdateOutboxMsgs(ctx context.Context, outcomes []OutboxMsgOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	params := sqlc.OutboxMsgMarkProcessedParams{
		Ids:    make([]uuid.UUID, 0, len(outcomes)),
		Errors: make([]*string, 0, len(outcomes)),
	}
	for _, outcome := range outcomes {
		params.Ids = append(params.Ids, outcome.ID)
		params.Errors = append(params.Errors, outcome.Error)
	}

	if err := r.queries.OutboxMsgMarkProcessed(ctx, r.db, params); err != nil {
		return fmt.Errorf("mark outbox msgs processed: %w", err)
	}

	return nil
}
