package repository

import (
	"context"
	"database/sql"
	"time"

	"inkatlas/backend/internal/model"
	"inkatlas/backend/internal/snowflake"
)

// HistoryRepository defines the interface for search history storage.
type HistoryRepository interface {
	// Insert stores a settled search. A zero ID is replaced with a
	// freshly generated snowflake ID.
	Insert(ctx context.Context, rec model.SearchRecord) error
	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]model.SearchRecord, error)
	// DeleteOlderThan removes records created before the cutoff and
	// returns how many were deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type historyRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new search history repository.
func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Insert(ctx context.Context, rec model.SearchRecord) error {
	if rec.ID == 0 {
		rec.ID = snowflake.NextID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO search_history (id, city, provider, source, result_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.City, rec.Provider, rec.Source, rec.ResultCount, rec.CreatedAt.Format(time.RFC3339))
	return err
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, city, provider, source, result_count, created_at
		FROM search_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.SearchRecord
	for rows.Next() {
		var rec model.SearchRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.City, &rec.Provider, &rec.Source, &rec.ResultCount, &createdAt); err != nil {
			return nil, err
		}
		t, _ := time.Parse(time.RFC3339, createdAt)
		rec.CreatedAt = t
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *historyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM search_history WHERE created_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
