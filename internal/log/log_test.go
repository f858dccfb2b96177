package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/pkg/correlationid"
)

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo}))

	ctx := correlationid.NewContext(context.Background(), "corr-42")
	logger.ErrorContext(ctx, "failed", slog.Any("error", errors.New("boom")))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
	assert.Equal(t, "corr-42", record["correlation_id"])
	assert.NotContains(t, record, "trace_id")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.Log{Format: config.LogFormatText, Level: slog.LevelWarn}))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
