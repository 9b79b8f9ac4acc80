package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/config"
	"github.com/moktrading/tax-service/internal/events"
	"github.com/moktrading/tax-service/internal/handlers"
	"github.com/moktrading/tax-service/internal/repository"
	"github.com/moktrading/tax-service/internal/repository/migrations"
	"github.com/moktrading/tax-service/internal/server"
	"github.com/moktrading/tax-service/internal/service"
	"github.com/moktrading/tax-service/internal/tax"

	_ "github.com/lib/pq"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Starting tax-service", zap.Int("port", cfg.Server.Port))

	db, err := initDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	productRepo := repository.NewPostgresProductRepository(db, logger)
	productCache := repository.NewRedisProductCache(cfg.Redis, logger)
	defer productCache.Close()

	publisher := events.NewKafkaPublisher(cfg.Kafka, logger)
	defer publisher.Close()

	quoteService := service.NewQuoteService(
		productRepo,
		productCache,
		tax.New(),
		publisher,
		logger,
	)

	h := handlers.NewHandlers(quoteService, []handlers.ReadyCheck{
		{Name: "database", Ping: db.PingContext},
		{Name: "redis", Ping: productCache.Ping},
	}, logger)

	srv := server.New(h, cfg)

	go func() {
		logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Evict cached products when the catalog changes.
	consumer := events.NewKafkaConsumer(cfg.Kafka, productCache, logger)
	go func() {
		if err := consumer.Start(context.Background()); err != nil && err != context.Canceled {
			logger.Error("Catalog event consumer failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	consumer.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func initDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrations.Run(context.Background(), db); err != nil {
		return nil, err
	}

	logger.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("name", cfg.Database.Name))

	return db, nil
}
