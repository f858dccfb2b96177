package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/metric"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/middleware"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/swagger"
	"github.com/tuanvumaihuynh/product-catalog/internal/schema"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

var tracer = otel.Tracer("internal/http")

var (
	errRouteNotFound    = apperr.NotFoundErr.WithMsg("route not found")
	errMethodNotAllowed = zerror.NewMethodNotAllowed("method_not_allowed", "method not allowed")
)

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metric.Metrics
	schema   *schema.Schema

	productSvc    service.ProductService
	referenceSvc  service.ReferenceService
	healthChecker db.HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	schema *schema.Schema,
	productSvc service.ProductService,
	referenceSvc service.ReferenceService,
	healthChecker db.HealthChecker,
) *Service {
	registry := prometheus.NewRegistry()
	return &Service{
		cfg:           cfg,
		logger:        log.With(slog.String("service", "http")),
		registry:      registry,
		metrics:       metric.New(registry),
		schema:        schema,
		productSvc:    productSvc,
		referenceSvc:  referenceSvc,
		healthChecker: healthChecker,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, handler)
}

// Handler builds the router with every middleware and route registered.
func (s *Service) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		if err := swagger.Register(r); err != nil {
			return nil, fmt.Errorf("register swagger: %w", err)
		}
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorContext(ctx, "http server stopped", slog.Any("error", err))
		}
	}()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.CorrelationID(),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.Cors(s.cfg.CorsAllowedOrigins),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	products := productHandler{s}
	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.handle(products.listProducts))
		r.Post("/", s.handle(products.createProduct))
		r.Get("/{id:[0-9]+}", s.handle(products.getProduct))
		r.Patch("/{id:[0-9]+}", s.handle(products.updateProduct))
		r.Delete("/{id:[0-9]+}", s.handle(products.deleteProduct))
	})

	references := referenceHandler{s}
	r.Get("/brands", s.handle(references.listBrands))
	r.Get("/brands/{id:[0-9]+}", s.handle(references.getBrand))
	r.Get("/categories", s.handle(references.listCategories))
	r.Get("/categories/{id:[0-9]+}", s.handle(references.getCategory))

	r.Get("/healthz", s.handle(healthHandler{s}.healthz))

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.handleResponseError(w, r, errRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.handleResponseError(w, r, errMethodNotAllowed)
	})
}
