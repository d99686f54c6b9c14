package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/houzze/houzze-api/cmd/config"
	"github.com/houzze/houzze-api/thirdparty/rabbitmq"
	"github.com/houzze/houzze-api/utils/logger"
	"go.uber.org/zap"
)

// Consumes delayed vacancy-expiration messages and removes the vacancies
// through the API's internal endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.Rabbit.Host,
		cfg.Rabbit.Port,
		cfg.Rabbit.User,
		cfg.Rabbit.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Expiration worker running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Expiration worker shutting down")
}
