package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ANAVHEOBA/africgo-frontend/internal/api"
	"github.com/ANAVHEOBA/africgo-frontend/internal/app"
	"github.com/ANAVHEOBA/africgo-frontend/internal/config"
	"github.com/ANAVHEOBA/africgo-frontend/internal/handler"
	"github.com/ANAVHEOBA/africgo-frontend/internal/session"
	"github.com/ANAVHEOBA/africgo-frontend/pkg/utils"

	"github.com/joho/godotenv"
)

const loginPath = "/login"

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	storage, closeStorage, err := newSessionStorage(conf.Session)
	panicIfErr("failed to init session storage", err)
	defer closeStorage()

	sessions := session.NewManager(logger, storage, conf.Session.TTL)

	backend := api.New(logger, sessions, api.Config{
		BaseURL: conf.Backend.BaseURL,
		Timeout: conf.Backend.Timeout,
		ReadRetry: utils.RetryConfig{
			MaxAttempts:  conf.Backend.RetryAttempts,
			InitialDelay: conf.Backend.RetryDelay,
			MaxDelay:     conf.Backend.RetryMaxDelay,
		},
	})

	authHandler := handler.NewAuthHandler(logger, backend, sessions)
	consumerHandler := handler.NewConsumerHandler(logger, backend, sessions, loginPath)
	merchantHandler := handler.NewMerchantHandler(logger, backend, sessions, loginPath)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(authHandler, consumerHandler, merchantHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newSessionStorage(cfg config.Session) (session.Storage, func(), error) {
	if cfg.Storage == "redis" {
		storage := session.NewRedisStorage(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err := storage.Ping(context.Background()); err != nil {
			return nil, nil, err
		}
		return storage, func() { storage.Close() }, nil
	}
	return session.NewMemoryStorage(), func() {}, nil
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
