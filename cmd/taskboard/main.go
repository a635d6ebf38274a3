package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/joho/godotenv"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/httpapi"
	"taskboard/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(logLevel(cfg.Log.Level)),
		glog.WithName("taskboard"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	db, err := store.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	lgr.Info("syncing database schema", "driver", cfg.Database.Driver)
	if err := store.CreateSchema(ctx, db); err != nil {
		log.Fatalf("Failed to sync database schema: %v", err)
	}

	repo := store.NewRepositoryManager(db)
	repo.MustValidate()

	auther := auth.NewAuthenticator(repo.Users(), cfg).
		WithLogger(lgr.GetLogger("auth"))
	gate := auth.NewAccessGate(auther.TokenService(), repo.Users()).
		WithLogger(lgr.GetLogger("gate"))

	srv := httpapi.New(repo, auther, gate,
		httpapi.WithLogger(lgr.GetLogger("http")),
	)

	go func() {
		lgr.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.Listen(cfg.Server.Addr); err != nil {
			lgr.Error("http server stopped", "error", err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	s := <-signals
	lgr.Info("received signal, shutting down", "signal", s.String())

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		lgr.Error("error during shutdown", "error", err)
	}
}

func logLevel(level string) string {
	switch level {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "warn":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return glog.Info
	}
}
