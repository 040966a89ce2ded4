package handler_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

// brokenStore simulates unavailable history storage.
type brokenStore struct{}

func (brokenStore) Record(context.Context, *model.HistoryItem) error {
	return errors.New("storage down")
}
func (brokenStore) List(context.Context, int) ([]model.HistoryItem, error) {
	return nil, errors.New("storage down")
}
func (brokenStore) Delete(context.Context, string) error { return errors.New("storage down") }
func (brokenStore) Clear(context.Context) error          { return errors.New("storage down") }

// newTestRouter wires the full API surface over the given store.
func newTestRouter(store service.HistoryStore) *chi.Mux {
	genService := service.NewGeneratorService(generator.New(nil), store)
	historyService := service.NewHistoryService(store)

	genHandler := handler.NewGeneratorHandler(genService)
	historyHandler := handler.NewHistoryHandler(historyService)
	statsHandler := handler.NewStatsHandler(historyService)

	r := chi.NewRouter()
	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Get("/api/v1/history", historyHandler.HandleList)
	r.Delete("/api/v1/history", historyHandler.HandleClear)
	r.Delete("/api/v1/history/{id}", historyHandler.HandleDelete)
	r.Get("/api/v1/stats", statsHandler.HandleStats)
	return r
}

func newMemoryRouter() *chi.Mux {
	return newTestRouter(repository.NewMemoryHistoryRepository(0))
}

func doRequest(t *testing.T, router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
