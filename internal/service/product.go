package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/event"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/pkg/outbox"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
)

type ProductService interface {
	CreateProduct(ctx context.Context, params ProductParams) (model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	// UpdateProduct changes only the supplied fields of the product.
	UpdateProduct(ctx context.Context, id int64, params ProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	db            db.DB
	productRepo   repository.ProductRepository
	outboxMsgRepo repository.OutboxMsgRepository
	resolver      ReferenceResolver
	now           func() time.Time
}

func NewProductService(
	db db.DB,
	productRepo repository.ProductRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
	resolver ReferenceResolver,
) ProductService {
	return &productService{
		db:            db,
		productRepo:   productRepo,
		outboxMsgRepo: outboxMsgRepo,
		resolver:      resolver,
		now:           time.Now,
	}
}

func (s *productService) CreateProduct(ctx context.Context, params ProductParams) (model.Product, error) {
	var product model.Product
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		set, err := newProductUpdateSet(ctx, s.resolver.WithDB(db), params)
		if err != nil {
			return fmt.Errorf("build update set: %w", err)
		}

		// timestamptz keeps microseconds
		product = model.Product{CreatedAt: s.now().UTC().Truncate(time.Microsecond)}
		set.apply(&product)

		id, err := s.productRepo.WithDB(db).CreateProduct(ctx, product)
		if err != nil {
			return fmt.Errorf("product repository create product: %w", err)
		}
		product.ID = id

		if err := s.writeEvent(ctx, db, event.TopicProductCreated, event.NewProductEvent(product, s.now())); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, params ProductParams) (model.Product, error) {
	var product model.Product
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		productRepo := s.productRepo.WithDB(db)

		var err error
		product, err = productRepo.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("product repository get product: %w", err)
		}

		set, err := newProductUpdateSet(ctx, s.resolver.WithDB(db), params)
		if err != nil {
			return fmt.Errorf("build update set: %w", err)
		}
		set.apply(&product)

		if err := productRepo.UpdateProduct(ctx, product); err != nil {
			return fmt.Errorf("product repository update product: %w", err)
		}

		if set.hasCategories() {
			if err := productRepo.SetProductCategories(ctx, product.ID, product.CategoryIDs()); err != nil {
				return fmt.Errorf("product repository set product categories: %w", err)
			}
		}

		if err := s.writeEvent(ctx, db, event.TopicProductUpdated, event.NewProductEvent(product, s.now())); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.productRepo.WithDB(db).DeleteProduct(ctx, id); err != nil {
			return fmt.Errorf("product repository delete product: %w", err)
		}

		return s.writeEvent(ctx, db, event.TopicProductDeleted, event.NewProductDeletedEvent(id, s.now()))
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}

// writeEvent stores ev in the outbox within the transaction bound to db.
func (s *productService) writeEvent(ctx context.Context, db db.DB, topic string, ev event.ProductEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}

	if err := s.outboxMsgRepo.WithDB(db).CreateOutboxMsg(ctx, repository.OutboxMsg{
		Topic:        topic,
		Headers:      outbox.BuildHeaders(ctx),
		Payload:      payload,
		PartitionKey: ptr.New(ev.PartitionKey()),
	}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}
