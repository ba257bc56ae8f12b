package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prajwalbharadwajbm/campaignconsole/internal/database"
	"github.com/prajwalbharadwajbm/campaignconsole/internal/store"
)

// PostgresRepository stores records in the storage_records table
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a new PostgreSQL record repository
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// GetRecord implements store.RecordRepository
func (r *PostgresRepository) GetRecord(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM storage_records
		WHERE key = $1
	`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query record %s: %w", key, err)
	}
	return []byte(value), nil
}

// PutRecord implements store.RecordRepository
func (r *PostgresRepository) PutRecord(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO storage_records (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, key, string(data)); err != nil {
		return fmt.Errorf("failed to upsert record %s: %w", key, err)
	}
	return nil
}
