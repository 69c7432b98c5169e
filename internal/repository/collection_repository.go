package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Storage keys. One fixed key per collection; the dashboard session lives
// under its own key in the sessions table.
const (
	KeyProducts     = "ecommerce_dashboard_products"
	KeyOrders       = "ecommerce_dashboard_orders"
	KeyCustomers    = "ecommerce_dashboard_customers"
	KeyTransactions = "ecommerce_dashboard_transactions"
	KeyContent      = "ecommerce_dashboard_content"
	KeyCampaigns    = "ecommerce_dashboard_campaigns"
	KeySession      = "ecommerce_dashboard_user"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrSessionNotFound    = errors.New("session not found")
)

// CollectionRepository is the key-value store every collection lives in.
// Values are JSON-serialized arrays written whole; concurrent writers are
// last-write-wins.
type CollectionRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, data json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

type collectionRepository struct {
	db *sql.DB
}

// NewCollectionRepository creates a new instance of CollectionRepository
func NewCollectionRepository(db *sql.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

// Get retrieves the raw JSON value stored under key
func (r *collectionRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	query := `SELECT data FROM collections WHERE key = $1`

	var data []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to get collection %q: %w", key, err)
	}

	return data, nil
}

// Put replaces the value stored under key
func (r *collectionRepository) Put(ctx context.Context, key string, data json.RawMessage) error {
	query := `
		INSERT INTO collections (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, []byte(data), time.Now()); err != nil {
		return fmt.Errorf("failed to put collection %q: %w", key, err)
	}

	return nil
}

// Delete removes the value stored under key
func (r *collectionRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", key, err)
	}
	return nil
}
