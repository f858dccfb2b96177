package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/importer"
	"github.com/tuanvumaihuynh/product-catalog/internal/log"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
	"github.com/tuanvumaihuynh/product-catalog/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running import application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		Import   config.Import
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log, slog.String("app", "pc-import"))

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	data, err := importer.ReadFile(cfg.Import.File)
	if err != nil {
		var rowErr importer.RowError
		if errors.As(err, &rowErr) {
			logger.ErrorContext(ctx, "invalid workbook row",
				slog.String("sheet", rowErr.Sheet),
				slog.Int("row", rowErr.Row),
				slog.Any("error", rowErr.Err),
			)
		}
		return fmt.Errorf("error reading workbook %s: %w", cfg.Import.File, err)
	}

	logger.InfoContext(ctx, "workbook read",
		slog.String("file", cfg.Import.File),
		slog.Int("brands", len(data.Brands)),
		slog.Int("categories", len(data.Categories)),
	)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)
	queries := *sqlc.New()

	referenceService := service.NewReferenceService(
		dbClient,
		repository.NewBrandRepository(dbClient, queries),
		repository.NewCategoryRepository(dbClient, queries),
	)

	if err := referenceService.ImportReferenceData(ctx, data); err != nil {
		return fmt.Errorf("error importing reference data: %w", err)
	}

	logger.InfoContext(ctx, "reference data imported")

	return nil
}
