package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	store := newHistoryStore(cfg)

	genService := service.NewGeneratorService(generator.New(nil), store)
	historyService := service.NewHistoryService(store)

	genHandler := handler.NewGeneratorHandler(genService)
	historyHandler := handler.NewHistoryHandler(historyService)
	statsHandler := handler.NewStatsHandler(historyService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Get("/api/v1/history", historyHandler.HandleList)
	r.Delete("/api/v1/history", historyHandler.HandleClear)
	r.Delete("/api/v1/history/{id}", historyHandler.HandleDelete)
	r.Get("/api/v1/stats", statsHandler.HandleStats)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newHistoryStore opens the configured history backend. When the database
// cannot be used the server degrades to the in-memory store instead of
// refusing to start.
func newHistoryStore(cfg config.Config) service.HistoryStore {
	if cfg.DBDriver == "memory" {
		slog.Info("using in-memory history store")
		return repository.NewMemoryHistoryRepository(cfg.HistoryLimit)
	}

	db, err := repository.NewDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		slog.Warn("database connection failed — falling back to in-memory history", "error", err)
		return repository.NewMemoryHistoryRepository(cfg.HistoryLimit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.NewHistoryRepository(ctx, db, cfg.HistoryLimit)
	if err != nil {
		slog.Warn("history table setup failed — falling back to in-memory history", "error", err)
		return repository.NewMemoryHistoryRepository(cfg.HistoryLimit)
	}

	slog.Info("history store ready", "driver", cfg.DBDriver, "limit", cfg.HistoryLimit)
	return repo
}
