package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type CharacterTaskRepo struct {
	db *sql.DB
}

func NewCharacterTaskRepo(db *sql.DB) *CharacterTaskRepo {
	return &CharacterTaskRepo{db: db}
}

const characterTaskColumns = `id, character_id, task_id, status, progress,
	accepted_at, completed_at, rewarded_at`

func (r *CharacterTaskRepo) Insert(ctx context.Context, characterID, taskID int64, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO character_tasks (character_id, task_id, status, progress) VALUES (?, ?, ?, 0)
	`, characterID, taskID, status)
	if err != nil {
		return 0, fmt.Errorf("character task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("character task last insert id: %w", err)
	}
	return id, nil
}

func (r *CharacterTaskRepo) Get(ctx context.Context, id int64) (*CharacterTask, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+characterTaskColumns+` FROM character_tasks WHERE id = ?
	`, id)
	return scanCharacterTask(row)
}

func (r *CharacterTaskRepo) GetByCharacterAndTask(ctx context.Context, characterID, taskID int64) (*CharacterTask, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+characterTaskColumns+` FROM character_tasks WHERE character_id = ? AND task_id = ?
	`, characterID, taskID)
	return scanCharacterTask(row)
}

func (r *CharacterTaskRepo) ListByCharacter(ctx context.Context, characterID int64) ([]CharacterTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+characterTaskColumns+` FROM character_tasks WHERE character_id = ? ORDER BY id ASC
	`, characterID)
	if err != nil {
		return nil, fmt.Errorf("character task list: %w", err)
	}
	defer rows.Close()

	var out []CharacterTask
	for rows.Next() {
		ct, err := scanCharacterTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("character task rows: %w", err)
	}
	return out, nil
}

// ListRewardedDaily returns the character's rewarded records whose task
// definition is a daily with the reset flag set, i.e. the reset candidates.
func (r *CharacterTaskRepo) ListRewardedDaily(ctx context.Context, characterID int64) ([]CharacterTask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ct.id, ct.character_id, ct.task_id, ct.status, ct.progress,
			ct.accepted_at, ct.completed_at, ct.rewarded_at
		FROM character_tasks ct
		JOIN tasks t ON t.id = ct.task_id
		WHERE ct.character_id = ? AND ct.rewarded_at IS NOT NULL
			AND t.type = 'daily' AND t.reset_daily = 1
		ORDER BY ct.id ASC
	`, characterID)
	if err != nil {
		return nil, fmt.Errorf("character task daily list: %w", err)
	}
	defer rows.Close()

	var out []CharacterTask
	for rows.Next() {
		ct, err := scanCharacterTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("character task daily rows: %w", err)
	}
	return out, nil
}

// Update persists status, progress and the three lifecycle timestamps.
func (r *CharacterTaskRepo) Update(ctx context.Context, ct *CharacterTask) error {
	return characterTaskUpdate(ctx, r.db, ct)
}

// UpdateTx is Update running inside a caller-owned transaction.
func (r *CharacterTaskRepo) UpdateTx(ctx context.Context, tx *sql.Tx, ct *CharacterTask) error {
	return characterTaskUpdate(ctx, tx, ct)
}

func characterTaskUpdate(ctx context.Context, ex execer, ct *CharacterTask) error {
	_, err := ex.ExecContext(ctx, `
		UPDATE character_tasks
		SET status = ?, progress = ?, accepted_at = ?, completed_at = ?, rewarded_at = ?
		WHERE id = ?
	`, ct.Status, ct.Progress, ct.AcceptedAt, ct.CompletedAt, ct.RewardedAt, ct.ID)
	if err != nil {
		return fmt.Errorf("character task update: %w", err)
	}
	return nil
}

func scanCharacterTask(row scanner) (*CharacterTask, error) {
	var (
		ct          CharacterTask
		acceptedAt  sql.NullTime
		completedAt sql.NullTime
		rewardedAt  sql.NullTime
	)
	if err := row.Scan(
		&ct.ID, &ct.CharacterID, &ct.TaskID, &ct.Status, &ct.Progress,
		&acceptedAt, &completedAt, &rewardedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("character task scan: %w", err)
	}
	ct.AcceptedAt = nullTimePtr(acceptedAt)
	ct.CompletedAt = nullTimePtr(completedAt)
	ct.RewardedAt = nullTimePtr(rewardedAt)
	return &ct, nil
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
