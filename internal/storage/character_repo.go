package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CharacterRepo struct {
	db *sql.DB
}

func NewCharacterRepo(db *sql.DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

const characterColumns = `id, user_id, name, class_type, level, exp,
	strength, agility, intelligence, vitality,
	hp, mp, attack, defense, created_at`

type CharacterInsert struct {
	UserID int64
	Name   string
	Class  string

	Strength     int
	Agility      int
	Intelligence int
	Vitality     int

	HP      int
	MP      int
	Attack  int
	Defense int
}

func (r *CharacterRepo) Insert(ctx context.Context, in CharacterInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO characters (
			user_id, name, class_type, level, exp,
			strength, agility, intelligence, vitality,
			hp, mp, attack, defense
		) VALUES (?, ?, ?, 1, 0, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.UserID, in.Name, in.Class,
		in.Strength, in.Agility, in.Intelligence, in.Vitality,
		in.HP, in.MP, in.Attack, in.Defense)
	if err != nil {
		return 0, fmt.Errorf("character insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("character last insert id: %w", err)
	}
	return id, nil
}

func (r *CharacterRepo) Get(ctx context.Context, id int64) (*Character, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+characterColumns+` FROM characters WHERE id = ?`, id)
	return scanCharacter(row)
}

// GetOwned loads a character only when it belongs to the given user.
func (r *CharacterRepo) GetOwned(ctx context.Context, id, userID int64) (*Character, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+characterColumns+` FROM characters WHERE id = ? AND user_id = ?
	`, id, userID)
	return scanCharacter(row)
}

func (r *CharacterRepo) ListByUser(ctx context.Context, userID int64) ([]Character, error) {
	return r.list(ctx, `SELECT `+characterColumns+` FROM characters WHERE user_id = ? ORDER BY id ASC`, userID)
}

func (r *CharacterRepo) ListAll(ctx context.Context) ([]Character, error) {
	return r.list(ctx, `SELECT `+characterColumns+` FROM characters ORDER BY id ASC`)
}

func (r *CharacterRepo) list(ctx context.Context, query string, args ...any) ([]Character, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("character list: %w", err)
	}
	defer rows.Close()

	var out []Character
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("character rows: %w", err)
	}
	return out, nil
}

// Update persists level, experience and all attributes after a progression step.
func (r *CharacterRepo) Update(ctx context.Context, c *Character) error {
	return characterUpdate(ctx, r.db, c)
}

// UpdateTx is Update running inside a caller-owned transaction.
func (r *CharacterRepo) UpdateTx(ctx context.Context, tx *sql.Tx, c *Character) error {
	return characterUpdate(ctx, tx, c)
}

func characterUpdate(ctx context.Context, ex execer, c *Character) error {
	_, err := ex.ExecContext(ctx, `
		UPDATE characters
		SET level = ?, exp = ?,
			strength = ?, agility = ?, intelligence = ?, vitality = ?,
			hp = ?, mp = ?, attack = ?, defense = ?
		WHERE id = ?
	`, c.Level, c.Exp,
		c.Strength, c.Agility, c.Intelligence, c.Vitality,
		c.HP, c.MP, c.Attack, c.Defense, c.ID)
	if err != nil {
		return fmt.Errorf("character update: %w", err)
	}
	return nil
}

func (r *CharacterRepo) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE characters SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("character rename: %w", err)
	}
	return nil
}

// Delete removes the character along with its slot assignments, task records
// and learned skills.
func (r *CharacterRepo) Delete(ctx context.Context, id int64) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM equipment_slots WHERE character_id = ?`, id); err != nil {
			return fmt.Errorf("character delete slots: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM character_tasks WHERE character_id = ?`, id); err != nil {
			return fmt.Errorf("character delete tasks: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM character_skills WHERE character_id = ?`, id); err != nil {
			return fmt.Errorf("character delete skills: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id); err != nil {
			return fmt.Errorf("character delete: %w", err)
		}
		return nil
	})
}

func (r *CharacterRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters WHERE user_id = ?`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("character count: %w", err)
	}
	return n, nil
}

// NameExists reports whether the user already has a character with the name,
// ignoring excludeID (pass 0 to check all).
func (r *CharacterRepo) NameExists(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT 1 FROM characters WHERE user_id = ? AND name = ? AND id != ? LIMIT 1
	`, userID, name, excludeID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("character name exists: %w", err)
	}
	return true, nil
}

func scanCharacter(row scanner) (*Character, error) {
	var c Character
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Class, &c.Level, &c.Exp,
		&c.Strength, &c.Agility, &c.Intelligence, &c.Vitality,
		&c.HP, &c.MP, &c.Attack, &c.Defense, &c.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("character scan: %w", err)
	}
	return &c, nil
}

type scanner interface {
	Scan(dest ...any) error
}
