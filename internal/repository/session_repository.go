package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"commerce-admin/internal/domain"
)

// SessionRepository persists the logged-in dashboard session under a fixed
// key, mirroring the collections store but in its own table.
type SessionRepository interface {
	Get(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context) error
}

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new instance of SessionRepository
func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Get(ctx context.Context) (*domain.User, error) {
	query := `SELECT data FROM sessions WHERE key = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, KeySession).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	user := &domain.User{}
	if err := json.Unmarshal(raw, user); err != nil {
		return nil, ErrSessionNotFound
	}
	return user, nil
}

func (r *sessionRepository) Save(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	query := `
		INSERT INTO sessions (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, KeySession, raw, time.Now()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE key = $1`, KeySession); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
