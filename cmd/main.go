package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gigdesk/backend/internal/api/handler"
	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/localization"
	"gigdesk/backend/internal/logger"
	"gigdesk/backend/internal/notify"
	"gigdesk/backend/internal/seed"
	"gigdesk/backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// setupNotifier обирає Redis pub/sub, якщо задано REDIS_ADDR, інакше in-process fan-out
func setupNotifier(cfg *config.Config, log zerolog.Logger) (notify.Notifier, func(), error) {
	if !cfg.UseRedis() {
		log.Info().Msg("toasts: in-process notifier")
		return notify.NewLocalNotifier(log), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	n := notify.NewRedisNotifier(rdb, log)

	// Перевірка з'єднання Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Ping(ctx); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("toasts: redis notifier")
	return n, func() { _ = rdb.Close() }, nil
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		bootLog := logger.New(os.Stderr, "info", false)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogPretty)
	log.Info().Msg("Starting gigdesk backend...")

	// 1. Дані та стан сесій
	fixtures, err := seed.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load fixtures")
	}
	sessions := session.NewManager(fixtures, cfg.SessionIdleTTL, log)

	loc, err := localization.NewDefaultLocalizer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load locales")
	}

	notifier, closeNotifier, err := setupNotifier(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect Redis")
	}
	defer closeNotifier()

	// 2. Фонове прибирання неактивних сесій
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sessions.Run(ctx, cfg.SessionSweepInterval)

	// 3. Налаштування Gin та роутингу
	if !cfg.LogPretty {
		gin.SetMode(gin.ReleaseMode)
	}
	h := handler.NewHandler(sessions, notifier, loc, cfg.DefaultLang, log)
	router, err := h.Router()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
