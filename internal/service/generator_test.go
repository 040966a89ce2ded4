package service

import (
	"context"
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

func boolPtr(b bool) *bool { return &b }

// recordFailStore simulates unavailable history storage.
type recordFailStore struct{}

func (recordFailStore) Record(context.Context, *model.HistoryItem) error {
	return errors.New("db down")
}
func (recordFailStore) List(context.Context, int) ([]model.HistoryItem, error) { return nil, nil }
func (recordFailStore) Delete(context.Context, string) error                   { return nil }
func (recordFailStore) Clear(context.Context) error                            { return nil }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(generator.New(nil), repository.NewMemoryHistoryRepository(0))
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.ID == "" {
		t.Error("expected non-empty id")
	}
	if resp.PoolSize != 88 {
		t.Errorf("expected pool size 88, got %d", resp.PoolSize)
	}
	if resp.Strength != "strong" {
		t.Errorf("expected strength strong, got %q", resp.Strength)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(generator.New(nil), repository.NewMemoryHistoryRepository(0))
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	if resp.PoolSize != 52 {
		t.Errorf("expected pool size 52, got %d", resp.PoolSize)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_ShortLengthAllowed(t *testing.T) {
	svc := NewGeneratorService(generator.New(nil), repository.NewMemoryHistoryRepository(0))
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Length: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 3 {
		t.Errorf("expected length 3, got %d", resp.Length)
	}
	if resp.Strength != "weak" {
		t.Errorf("expected strength weak for 3 characters, got %q", resp.Strength)
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	svc := NewGeneratorService(generator.New(nil), repository.NewMemoryHistoryRepository(0))
	_, err := svc.Generate(context.Background(), model.GenerateRequest{Length: -1})
	if !errors.Is(err, generator.ErrLengthInvalid) {
		t.Fatalf("expected ErrLengthInvalid, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	store := repository.NewMemoryHistoryRepository(0)
	svc := NewGeneratorService(generator.New(nil), store)
	_, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, generator.ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}

	// A failed generation must not leave a history record behind.
	items, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty history after failed generation, got %d items", len(items))
	}
}

func TestGenerate_RecordsHistory(t *testing.T) {
	store := repository.NewMemoryHistoryRepository(0)
	svc := NewGeneratorService(generator.New(nil), store)

	first, err := svc.Generate(context.Background(), model.GenerateRequest{Length: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:  12,
		Symbols: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 history items, got %d", len(items))
	}

	// Most recent first.
	if items[0].ID != second.ID {
		t.Errorf("expected newest item %q first, got %q", second.ID, items[0].ID)
	}
	if items[1].ID != first.ID {
		t.Errorf("expected oldest item %q last, got %q", first.ID, items[1].ID)
	}
	if items[0].Password != second.Password {
		t.Errorf("history password = %q, want %q", items[0].Password, second.Password)
	}
	if items[0].Options.Symbols {
		t.Error("expected symbols disabled in recorded options")
	}
	if !items[0].Options.Uppercase {
		t.Error("expected uppercase enabled by default in recorded options")
	}
	if items[0].CreatedAt.IsZero() {
		t.Error("expected recorded creation timestamp")
	}
}

func TestGenerate_StoreFailure(t *testing.T) {
	svc := NewGeneratorService(generator.New(nil), recordFailStore{})
	_, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if !errors.Is(err, ErrHistoryUnavailable) {
		t.Fatalf("expected ErrHistoryUnavailable, got %v", err)
	}
}
