package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing practice sessions.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	FindByUser(ctx context.Context, userID string) ([]Session, error)
	FindByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Session, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts a new session.
func (r *DBRepository) Create(ctx context.Context, s *Session) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("session.Validate() > %w", err)
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (user_id, date, minutes, focus, issues, went_well, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.UserID, s.Date, s.Minutes, s.Focus, s.Issues, s.WentWell, s.Notes)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert session) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	s.ID = id
	return nil
}

// FindByUser returns all sessions logged by a user, most recent first.
func (r *DBRepository) FindByUser(ctx context.Context, userID string) ([]Session, error) {
	var sessions []Session
	if err := r.db.SelectContext(ctx, &sessions,
		"SELECT * FROM sessions WHERE user_id = ? ORDER BY date DESC",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(sessions by user) > %w", err)
	}
	return sessions, nil
}

// FindByUserBetween returns a user's sessions within [from, to], most recent first.
func (r *DBRepository) FindByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Session, error) {
	var sessions []Session
	if err := r.db.SelectContext(ctx, &sessions,
		"SELECT * FROM sessions WHERE user_id = ? AND date >= ? AND date <= ? ORDER BY date DESC",
		userID, from, to); err != nil {
		return nil, fmt.Errorf("db.SelectContext(sessions by user and range) > %w", err)
	}
	return sessions, nil
}
