package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = `id, name, description, type, required_level,
	exp_reward, gold_reward, item_reward, target_count, reset_daily`

type TaskInsert struct {
	Name          string
	Description   *string
	Type          string
	RequiredLevel int
	ExpReward     int64
	GoldReward    int64
	ItemReward    *string
	TargetCount   int
	ResetDaily    bool
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (
			name, description, type, required_level,
			exp_reward, gold_reward, item_reward, target_count, reset_daily
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.Description, in.Type, in.RequiredLevel,
		in.ExpReward, in.GoldReward, in.ItemReward, in.TargetCount, boolToInt(in.ResetDaily))
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id ASC`)
}

// ListForLevel returns catalog entries whose required level is within reach.
func (r *TaskRepo) ListForLevel(ctx context.Context, level int) ([]Task, error) {
	return r.list(ctx, `SELECT `+taskColumns+` FROM tasks WHERE required_level <= ? ORDER BY id ASC`, level)
}

func (r *TaskRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task count: %w", err)
	}
	return n, nil
}

func (r *TaskRepo) list(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task rows: %w", err)
	}
	return out, nil
}

func scanTask(row scanner) (*Task, error) {
	var (
		t          Task
		desc       sql.NullString
		itemReward sql.NullString
		resetDaily int
	)
	if err := row.Scan(
		&t.ID, &t.Name, &desc, &t.Type, &t.RequiredLevel,
		&t.ExpReward, &t.GoldReward, &itemReward, &t.TargetCount, &resetDaily,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	if desc.Valid {
		v := desc.String
		t.Description = &v
	}
	if itemReward.Valid {
		v := itemReward.String
		t.ItemReward = &v
	}
	t.ResetDaily = resetDaily != 0
	return &t, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
