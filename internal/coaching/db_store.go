package coaching

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBStore persists one user's progress in MySQL. The completed-module set is
// a keyed table, so membership writes are idempotent and concurrent writers
// can only grow the set.
type DBStore struct {
	db     *sqlx.DB
	userID string
}

// NewDBStore creates a DBStore scoped to one user.
func NewDBStore(db *sqlx.DB, userID string) *DBStore {
	return &DBStore{db: db, userID: userID}
}

type progressRow struct {
	CurrentLevelID    string `db:"current_level_id"`
	WeeklyMinutesGoal int    `db:"weekly_minutes_goal"`
}

// Load reads the persisted progress for the store's user.
func (s *DBStore) Load(ctx context.Context) (UserProgress, bool, error) {
	var row progressRow
	err := s.db.GetContext(ctx, &row,
		"SELECT current_level_id, weekly_minutes_goal FROM user_progress WHERE user_id = ?",
		s.userID)
	if errors.Is(err, sql.ErrNoRows) {
		return UserProgress{}, false, nil
	}
	if err != nil {
		return UserProgress{}, false, fmt.Errorf("db.GetContext(user_progress) > %w", err)
	}

	var completed []string
	if err := s.db.SelectContext(ctx, &completed,
		"SELECT module_id FROM completed_modules WHERE user_id = ? ORDER BY module_id",
		s.userID); err != nil {
		return UserProgress{}, false, fmt.Errorf("db.SelectContext(completed_modules) > %w", err)
	}
	if completed == nil {
		completed = []string{}
	}
	return UserProgress{
		CurrentLevelID:     row.CurrentLevelID,
		CompletedModuleIDs: completed,
		WeeklyMinutesGoal:  row.WeeklyMinutesGoal,
	}, true, nil
}

// Save upserts the progress row and inserts any new completed module ids.
// Completed ids are never deleted: the set only grows, so overlapping writers
// converge on the union.
func (s *DBStore) Save(ctx context.Context, progress UserProgress) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO user_progress (user_id, current_level_id, weekly_minutes_goal)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE current_level_id = VALUES(current_level_id), weekly_minutes_goal = VALUES(weekly_minutes_goal)`,
		s.userID, progress.CurrentLevelID, progress.WeeklyMinutesGoal); err != nil {
		return fmt.Errorf("tx.ExecContext(upsert user_progress) > %w", err)
	}

	for _, moduleID := range progress.CompletedModuleIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO completed_modules (user_id, module_id) VALUES (?, ?)",
			s.userID, moduleID); err != nil {
			return fmt.Errorf("tx.ExecContext(insert completed_modules) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
