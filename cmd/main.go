package main

import (
	"context"
	"net/http"
	"time"

	userapp "github.com/houzze/houzze-api/application/user"
	vacancyapp "github.com/houzze/houzze-api/application/vacancy"
	"github.com/houzze/houzze-api/cmd/config"
	mongoclient "github.com/houzze/houzze-api/cmd/mongo"
	redisclient "github.com/houzze/houzze-api/cmd/redis"
	_ "github.com/houzze/houzze-api/docs"
	redisRepo "github.com/houzze/houzze-api/repository/redis"
	userRepo "github.com/houzze/houzze-api/repository/user"
	vacancyRepo "github.com/houzze/houzze-api/repository/vacancy"
	"github.com/houzze/houzze-api/thirdparty/rabbitmq"
	"github.com/houzze/houzze-api/transport"
	"github.com/houzze/houzze-api/utils/logger"
	"go.uber.org/zap"
)

// @title HOUZZE API
// @version 1.0
// @description Rental vacancy marketplace API
// @host localhost:4000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to MongoDB
	db, err := mongoclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	VacancyRepo := vacancyRepo.NewVacancyRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Create indexes before serving requests
	indexCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if m, ok := UserRepo.(*userRepo.Mongo); ok {
		if err := m.EnsureIndexes(indexCtx); err != nil {
			logger.Fatal("err ensure user indexes", zap.Error(err))
		}
	}
	if m, ok := VacancyRepo.(*vacancyRepo.Mongo); ok {
		if err := m.EnsureIndexes(indexCtx); err != nil {
			logger.Fatal("err ensure vacancy indexes", zap.Error(err))
		}
	}

	// Connect to RabbitMQ for the expiration schedule
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// Initialize application layers
	VacancyApp := vacancyapp.NewVacancyApp(cfg, VacancyRepo, publisher)
	UserApp := userapp.NewUserApp(cfg, UserRepo, VacancyRepo, RedisRepo)

	httpTransport := transport.NewTransport(UserApp, VacancyApp, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
