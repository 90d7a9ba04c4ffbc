package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elitecart/storefront/internal/auth"
	"github.com/elitecart/storefront/internal/cart"
	"github.com/elitecart/storefront/internal/catalog"
	api "github.com/elitecart/storefront/internal/http"
	"github.com/elitecart/storefront/internal/payment"
	"github.com/elitecart/storefront/internal/storage"
	"github.com/elitecart/storefront/pkg/config"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx := context.Background()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		logger.Info("redis ping succeeded", zap.String("addr", cfg.RedisAddr))
	}

	kv, err := buildStorage(ctx, cfg, redisClient)
	if err != nil {
		log.Fatal("Failed to set up storage:", err)
	}
	logger.Info("storage ready", zap.String("backend", cfg.StorageBackend))

	var productCache catalog.ProductCache
	if redisClient != nil {
		productCache = catalog.NewRedisCache(redisClient)
	} else {
		productCache = catalog.NewMemoryCache()
	}
	catalogService := catalog.NewService(productCache, logger)

	gateway := payment.NewSimulatedGateway()
	if cfg.InstantSimulation {
		gateway.ChargeDelayMin = 0
		gateway.ChargeDelayMax = 0
		gateway.RefundDelay = 0
	}

	cartStore := cart.NewStore(kv, logger)
	cartStore.Hydrate(ctx)

	paymentStore := payment.NewStore(kv, gateway, logger)
	paymentStore.Hydrate(ctx)

	authService := auth.NewService(kv, logger)
	if cfg.InstantSimulation {
		authService.Delay = 0
	}
	authService.Hydrate(ctx)

	router := api.NewRouter(
		logger,
		api.NewCatalogHandler(catalogService, logger),
		api.NewCartHandler(cartStore, catalogService, logger),
		api.NewPaymentHandler(paymentStore, logger),
		api.NewAuthHandler(authService, logger),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("storefront listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down storefront")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	logger.Info("storefront stopped")
}

func buildStorage(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (storage.KV, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.DataDir)
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("redis backend selected but REDIS_ADDR is empty")
		}
		return storage.NewRedisStore(redisClient), nil
	case "mongo":
		db, err := storage.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return storage.NewMongoStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
