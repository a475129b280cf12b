package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/axcelcuno/tienda/internal/app"
	"github.com/axcelcuno/tienda/internal/config"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}

	application := app.NewApp(cfg, db)
	if err := application.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("failed to migrate database")
	}

	if rep, err := application.Seed(context.Background()); err != nil {
		zlog.Warn().Err(err).Msg("seed from landing page failed, starting anyway")
	} else if rep.Inserted+rep.Skipped+rep.Failed > 0 {
		zlog.Info().
			Int("inserted", rep.Inserted).
			Int("skipped", rep.Skipped).
			Int("failed", rep.Failed).
			Msg("catalog seed")
	}

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: application.HTTPHandler()}

	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Str("frontend", cfg.FrontendDir).Msg("serving")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}
