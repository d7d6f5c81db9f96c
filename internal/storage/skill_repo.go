package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type SkillRepo struct {
	db *sql.DB
}

func NewSkillRepo(db *sql.DB) *SkillRepo {
	return &SkillRepo{db: db}
}

const skillColumns = `id, name, description, type, rarity,
	base_damage, base_defense, base_healing,
	cooldown, required_level, mana_cost`

type SkillInsert struct {
	Name        string
	Description *string
	Type        string
	Rarity      string

	BaseDamage  float64
	BaseDefense float64
	BaseHealing float64

	Cooldown      int
	RequiredLevel int
	ManaCost      int
}

func (r *SkillRepo) Insert(ctx context.Context, in SkillInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO skills (
			name, description, type, rarity,
			base_damage, base_defense, base_healing,
			cooldown, required_level, mana_cost
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.Description, in.Type, in.Rarity,
		in.BaseDamage, in.BaseDefense, in.BaseHealing,
		in.Cooldown, in.RequiredLevel, in.ManaCost)
	if err != nil {
		return 0, fmt.Errorf("skill insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("skill last insert id: %w", err)
	}
	return id, nil
}

func (r *SkillRepo) Get(ctx context.Context, id int64) (*Skill, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = ?`, id)
	return scanSkill(row)
}

func (r *SkillRepo) ListAll(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("skill list: %w", err)
	}
	defer rows.Close()

	var out []Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("skill rows: %w", err)
	}
	return out, nil
}

func (r *SkillRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("skill count: %w", err)
	}
	return n, nil
}

func scanSkill(row scanner) (*Skill, error) {
	var (
		s    Skill
		desc sql.NullString
	)
	if err := row.Scan(
		&s.ID, &s.Name, &desc, &s.Type, &s.Rarity,
		&s.BaseDamage, &s.BaseDefense, &s.BaseHealing,
		&s.Cooldown, &s.RequiredLevel, &s.ManaCost,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("skill scan: %w", err)
	}
	if desc.Valid {
		v := desc.String
		s.Description = &v
	}
	return &s, nil
}
