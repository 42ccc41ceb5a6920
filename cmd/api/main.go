package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"marketplace/internal/app"
	"marketplace/internal/config"
	"marketplace/internal/database"
	"marketplace/internal/domain/notification"
	"marketplace/internal/logger"
	"marketplace/internal/pkg/mq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := db.AutoMigrate(app.Models()...); err != nil {
		log.Fatal().Err(err).Msg("auto-migration failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var events notification.EventPublisher
	if cfg.AMQPURL != "" {
		pub, err := mq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
		if err != nil {
			// notifications still reach the database and websocket clients
			log.Error().Err(err).Msg("rabbitmq unavailable, events will not be published")
		} else {
			defer pub.Close()
			events = pub
			log.Info().Str("exchange", cfg.AMQPExchange).Msg("publishing notification events")
		}
	}

	a := app.New(app.Deps{Config: cfg, DB: db, Log: log, Events: events})

	if err := a.Catalog.SeedCategories(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed categories")
	}

	a.Cleanup.Schedule(ctx, notification.CleanupConfig{
		Retention: cfg.NotificationRetention,
		Interval:  cfg.NotificationCleanupInterval,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
