package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrItemNotFound = errors.New("history item not found")

// DefaultHistoryLimit caps how many generated passwords are retained.
const DefaultHistoryLimit = 20

// historyItemModel maps the history_items table for bun queries. The seq
// column preserves insert order; id is the caller-generated UUID.
type historyItemModel struct {
	bun.BaseModel `bun:"table:history_items"`

	Seq          int64     `bun:"seq,pk,autoincrement"`
	ID           string    `bun:"id,notnull,unique,type:varchar(36)"`
	Password     string    `bun:"password,notnull,type:text"`
	Strength     string    `bun:"strength,notnull,type:varchar(16)"`
	Length       int       `bun:"length,notnull"`
	Uppercase    bool      `bun:"uppercase,notnull"`
	Lowercase    bool      `bun:"lowercase,notnull"`
	Numbers      bool      `bun:"numbers,notnull"`
	Symbols      bool      `bun:"symbols,notnull"`
	ResponseTime int64     `bun:"response_time_us,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
}

func rowFromItem(item *model.HistoryItem) historyItemModel {
	return historyItemModel{
		ID:           item.ID,
		Password:     item.Password,
		Strength:     item.Strength,
		Length:       item.Length,
		Uppercase:    item.Options.Uppercase,
		Lowercase:    item.Options.Lowercase,
		Numbers:      item.Options.Numbers,
		Symbols:      item.Options.Symbols,
		ResponseTime: item.ResponseTime.Microseconds(),
		CreatedAt:    item.CreatedAt,
	}
}

func itemFromRow(row historyItemModel) model.HistoryItem {
	return model.HistoryItem{
		ID:       row.ID,
		Password: row.Password,
		Strength: row.Strength,
		Length:   row.Length,
		Options: model.Options{
			Uppercase: row.Uppercase,
			Lowercase: row.Lowercase,
			Numbers:   row.Numbers,
			Symbols:   row.Symbols,
		},
		ResponseTime: time.Duration(row.ResponseTime) * time.Microsecond,
		CreatedAt:    row.CreatedAt,
	}
}

// HistoryRepository handles generated password history persistence.
type HistoryRepository struct {
	db    *bun.DB
	limit int
}

// NewHistoryRepository creates a HistoryRepository retaining at most limit
// items (DefaultHistoryLimit when limit <= 0) and ensures the backing table
// exists.
func NewHistoryRepository(ctx context.Context, db *bun.DB, limit int) (*HistoryRepository, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	if _, err := db.NewCreateTable().Model((*historyItemModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return nil, fmt.Errorf("create history table: %w", err)
	}

	return &HistoryRepository{db: db, limit: limit}, nil
}

// Record inserts a history item and evicts the oldest rows beyond the
// retention cap. Insert and eviction run in one transaction, so a failed
// append leaves the history untouched.
func (r *HistoryRepository) Record(ctx context.Context, item *model.HistoryItem) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		row := rowFromItem(item)
		if _, err := tx.NewInsert().Model(&row).Exec(ctx); err != nil {
			return fmt.Errorf("insert history item: %w", err)
		}

		count, err := tx.NewSelect().Model((*historyItemModel)(nil)).Count(ctx)
		if err != nil {
			return fmt.Errorf("count history items: %w", err)
		}
		if count <= r.limit {
			return nil
		}

		var evict []int64
		err = tx.NewSelect().Model((*historyItemModel)(nil)).
			Column("seq").
			Order("seq ASC").
			Limit(count - r.limit).
			Scan(ctx, &evict)
		if err != nil {
			return fmt.Errorf("select eviction candidates: %w", err)
		}

		if _, err := tx.NewDelete().Model((*historyItemModel)(nil)).
			Where("seq IN (?)", bun.In(evict)).
			Exec(ctx); err != nil {
			return fmt.Errorf("evict old history items: %w", err)
		}
		return nil
	})
}

// List retrieves retained history items, most recent first. A limit <= 0
// returns everything retained.
func (r *HistoryRepository) List(ctx context.Context, limit int) ([]model.HistoryItem, error) {
	var rows []historyItemModel
	q := r.db.NewSelect().Model(&rows).Order("seq DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list history items: %w", err)
	}

	items := make([]model.HistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, itemFromRow(row))
	}
	return items, nil
}

// Delete removes a single history item by its ID.
func (r *HistoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.NewDelete().Model((*historyItemModel)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete history item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Clear removes every retained history item.
func (r *HistoryRepository) Clear(ctx context.Context) error {
	// Bun refuses DELETE without a WHERE clause, so issue it raw.
	if _, err := r.db.ExecContext(ctx, "DELETE FROM history_items"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
