package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing per-skill practice totals.
type Repository interface {
	Totals(ctx context.Context, userID string) (map[ID]Totals, error)
	ApplyEntries(ctx context.Context, userID string, entries []PracticeEntry) (map[ID]Totals, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db               *sqlx.DB
	maxRetryAttempts uint
}

// DefaultMaxRetryAttempts bounds how often a conflicting merge transaction is
// retried before the failure is surfaced.
const DefaultMaxRetryAttempts = 3

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db, maxRetryAttempts: DefaultMaxRetryAttempts}
}

type totalsRow struct {
	SkillID string `db:"skill_id"`
	XP      int    `db:"xp"`
	Minutes int    `db:"minutes"`
	Level   int    `db:"level"`
}

// Totals returns all accumulated skill totals for a user. Skills never
// practiced have no row and no map entry.
func (r *DBRepository) Totals(ctx context.Context, userID string) (map[ID]Totals, error) {
	var rows []totalsRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT skill_id, xp, minutes, level FROM skill_totals WHERE user_id = ?",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(skill_totals) > %w", err)
	}
	totals := make(map[ID]Totals, len(rows))
	for _, row := range rows {
		totals[ID(row.SkillID)] = Totals{XP: row.XP, Minutes: row.Minutes, Level: row.Level}
	}
	return totals, nil
}

// ApplyEntries merges a batch of practice entries into the user's totals as a
// single read-modify-write transaction. The current rows are read under a row
// lock, the merge is computed in memory, and the result is upserted before
// commit, so two concurrent submissions for the same user both land instead
// of one overwriting the other. Transactions that lose a lock race are
// retried a bounded number of times.
func (r *DBRepository) ApplyEntries(ctx context.Context, userID string, entries []PracticeEntry) (map[ID]Totals, error) {
	if len(entries) == 0 {
		return r.Totals(ctx, userID)
	}
	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	var merged map[ID]Totals
	if err := retry.Do(
		func() error {
			result, err := r.applyEntriesOnce(ctx, userID, entries)
			if err != nil {
				if !isRetryableDBError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			merged = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.maxRetryAttempts+1),
	); err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *DBRepository) applyEntriesOnce(ctx context.Context, userID string, entries []PracticeEntry) (map[ID]Totals, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var rows []totalsRow
	if err := tx.SelectContext(ctx, &rows,
		"SELECT skill_id, xp, minutes, level FROM skill_totals WHERE user_id = ? FOR UPDATE",
		userID); err != nil {
		return nil, fmt.Errorf("tx.SelectContext(skill_totals for update) > %w", err)
	}
	totals := make(map[ID]Totals, len(rows))
	for _, row := range rows {
		totals[ID(row.SkillID)] = Totals{XP: row.XP, Minutes: row.Minutes, Level: row.Level}
	}

	merged, err := ApplyPracticeEntries(totals, entries)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		t := merged[entry.SkillID]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO skill_totals (user_id, skill_id, xp, minutes, level)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE xp = VALUES(xp), minutes = VALUES(minutes), level = VALUES(level)`,
			userID, string(entry.SkillID), t.XP, t.Minutes, t.Level); err != nil {
			return nil, fmt.Errorf("tx.ExecContext(upsert skill_totals) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("tx.Commit() > %w", err)
	}
	return merged, nil
}

// isRetryableDBError reports whether the merge transaction failed because of
// a lock conflict that a fresh attempt can win.
func isRetryableDBError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	// 1205: lock wait timeout, 1213: deadlock victim.
	return mysqlErr.Number == 1205 || mysqlErr.Number == 1213
}
