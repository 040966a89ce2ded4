package service

import (
	"context"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var ErrItemNotFound = errors.New("history item not found")

// HistoryService handles history listing and statistics business logic.
type HistoryService struct {
	store HistoryStore
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns retained history records, most recent first. A limit <= 0
// returns everything retained.
func (s *HistoryService) List(ctx context.Context, limit int) ([]model.HistoryItemResponse, error) {
	items, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return itemsToResponse(items), nil
}

// Delete removes a single history record by its ID.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, repository.ErrItemNotFound) {
		return ErrItemNotFound
	}
	return err
}

// Clear wipes the whole history.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Stats recomputes summary statistics over the retained history.
func (s *HistoryService) Stats(ctx context.Context) (model.Stats, error) {
	items, err := s.store.List(ctx, 0)
	if err != nil {
		return model.Stats{}, err
	}
	return ComputeStats(items, time.Now().UTC()), nil
}

// itemsToResponse converts a slice of HistoryItem to a slice of HistoryItemResponse.
func itemsToResponse(items []model.HistoryItem) []model.HistoryItemResponse {
	result := make([]model.HistoryItemResponse, len(items))
	for i, item := range items {
		result[i] = model.HistoryItemResponse{
			ID:             item.ID,
			Password:       item.Password,
			Strength:       item.Strength,
			Length:         item.Length,
			Options:        item.Options,
			ResponseTimeMS: durationToMillis(item.ResponseTime),
			CreatedAt:      item.CreatedAt,
		}
	}
	return result
}
