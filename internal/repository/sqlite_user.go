package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dkarlsen/fitquest/internal/db"
	"github.com/dkarlsen/fitquest/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database. Scalar
// progress fields map to columns; composite fields (baseline, goals,
// streaks, mission lists) are stored as JSON text.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	row, err := encodeUser(u)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (id, name, level, xp, coins, last_active, baseline, goals,
		streaks, category_counts, completed_missions, unlocked, responses, missions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Progress.Level, u.Progress.XP, u.Progress.Coins,
		nullableTimeToString(u.Progress.LastActive),
		row.baseline, row.goals, row.streaks, row.categoryCounts,
		row.completedMissions, row.unlocked, row.responses, row.missions,
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, level, xp, coins, last_active, baseline, goals,
		streaks, category_counts, completed_missions, unlocked, responses, missions, created_at
		FROM users WHERE id = ?`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	row, err := encodeUser(u)
	if err != nil {
		return err
	}

	query := `UPDATE users SET name = ?, level = ?, xp = ?, coins = ?, last_active = ?,
		baseline = ?, goals = ?, streaks = ?, category_counts = ?,
		completed_missions = ?, unlocked = ?, responses = ?, missions = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		u.Name, u.Progress.Level, u.Progress.XP, u.Progress.Coins,
		nullableTimeToString(u.Progress.LastActive),
		row.baseline, row.goals, row.streaks, row.categoryCounts,
		row.completedMissions, row.unlocked, row.responses, row.missions,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT id, name, level, xp, coins, last_active, baseline, goals,
		streaks, category_counts, completed_missions, unlocked, responses, missions, created_at
		FROM users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *SQLiteUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}
