package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"commerce-admin/internal/config"
	"commerce-admin/internal/database"
	"commerce-admin/internal/metrics"
	custommiddleware "commerce-admin/internal/middleware"
	"commerce-admin/internal/repository"
	"commerce-admin/internal/service"
	"commerce-admin/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *database.Service
	redis  *redis.Client

	// Seeder runs after the server is constructed, once migrations are in.
	Seeder service.SeedService
}

func NewServer(cfg *config.Config, logger *zap.Logger, db *database.Service, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(metrics.Middleware)

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
			KeyPrefix:         "ratelimit:dashboard",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(db.Health(r.Context()))
	})

	router.Handle("/metrics", promhttp.Handler())

	// Initialize repositories
	collections := repository.NewCollectionRepository(db.DB())
	productRepo := repository.NewProductRepository(collections, logger)
	orderRepo := repository.NewOrderRepository(collections, logger)
	customerRepo := repository.NewCustomerRepository(collections, logger)
	transactionRepo := repository.NewTransactionRepository(collections, logger)
	campaignRepo := repository.NewCampaignRepository(collections, logger)
	contentRepo := repository.NewContentRepository(collections, logger)
	sessionRepo := repository.NewSessionRepository(db.DB())

	// Initialize services
	authService := service.NewAuthService(sessionRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)
	customerService := service.NewCustomerService(customerRepo)
	financeService := service.NewFinanceService(transactionRepo)
	marketingService := service.NewMarketingService(campaignRepo)
	contentService := service.NewContentService(contentRepo)
	dashboardService := service.NewDashboardService(orderRepo, productRepo, customerRepo)
	seedService := service.NewSeedService(
		productRepo, customerRepo, orderRepo, transactionRepo, campaignRepo, contentRepo,
		cfg.Seed, logger,
	)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService, logger)
	productHandler := transport.NewProductHandler(productService, logger)
	orderHandler := transport.NewOrderHandler(orderService, logger)
	customerHandler := transport.NewCustomerHandler(customerService, logger)
	financeHandler := transport.NewFinanceHandler(financeService, logger)
	marketingHandler := transport.NewMarketingHandler(marketingService, logger)
	contentHandler := transport.NewContentHandler(contentService, logger)
	dashboardHandler := transport.NewDashboardHandler(dashboardService, logger)
	seedHandler := transport.NewSeedHandler(seedService, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)

	// Register routes
	authHandler.RegisterRoutes(router, authMiddleware)
	productHandler.RegisterRoutes(router, authMiddleware)
	orderHandler.RegisterRoutes(router, authMiddleware)
	customerHandler.RegisterRoutes(router, authMiddleware)
	financeHandler.RegisterRoutes(router, authMiddleware)
	marketingHandler.RegisterRoutes(router, authMiddleware)
	contentHandler.RegisterRoutes(router, authMiddleware)
	dashboardHandler.RegisterRoutes(router, authMiddleware)
	seedHandler.RegisterRoutes(router, authMiddleware)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
		Seeder: seedService,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
