package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
)

var ErrHistoryUnavailable = errors.New("history storage unavailable")

// HistoryStore is the persistence contract the services rely on. Both the
// SQL-backed and the in-memory repositories satisfy it.
type HistoryStore interface {
	Record(ctx context.Context, item *model.HistoryItem) error
	List(ctx context.Context, limit int) ([]model.HistoryItem, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen   *generator.Generator
	store HistoryStore
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *generator.Generator, store HistoryStore) *GeneratorService {
	return &GeneratorService{gen: gen, store: store}
}

// Generate produces a password based on the given request, scores its
// strength and records the outcome in history. Generation and the history
// append form one unit: a password is returned only once it was recorded.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := generator.Options{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = generator.DefaultLength
	}

	result, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	strength := generator.Evaluate(result.Password, result.PoolSize)

	item := model.HistoryItem{
		ID:       uuid.NewString(),
		Password: result.Password,
		Strength: string(strength),
		Length:   len(result.Password),
		Options: model.Options{
			Uppercase: opts.Uppercase,
			Lowercase: opts.Lowercase,
			Numbers:   opts.Numbers,
			Symbols:   opts.Symbols,
		},
		ResponseTime: result.Elapsed,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Record(ctx, &item); err != nil {
		slog.Error("recording history item failed", "error", err)
		return model.GenerateResponse{}, ErrHistoryUnavailable
	}

	return model.GenerateResponse{
		ID:             item.ID,
		Password:       item.Password,
		Strength:       item.Strength,
		Length:         item.Length,
		PoolSize:       result.PoolSize,
		ResponseTimeMS: durationToMillis(item.ResponseTime),
	}, nil
}

// durationToMillis converts a duration to fractional milliseconds for JSON.
func durationToMillis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
