package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type CharacterSkillRepo struct {
	db *sql.DB
}

func NewCharacterSkillRepo(db *sql.DB) *CharacterSkillRepo {
	return &CharacterSkillRepo{db: db}
}

// Insert records a freshly learned skill at level 1 with zero experience.
func (r *CharacterSkillRepo) Insert(ctx context.Context, characterID, skillID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO character_skills (character_id, skill_id, skill_level, experience) VALUES (?, ?, 1, 0)
	`, characterID, skillID)
	if err != nil {
		return 0, fmt.Errorf("character skill insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("character skill last insert id: %w", err)
	}
	return id, nil
}

func (r *CharacterSkillRepo) Get(ctx context.Context, id int64) (*CharacterSkill, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, character_id, skill_id, skill_level, experience FROM character_skills WHERE id = ?
	`, id)
	return scanCharacterSkill(row)
}

func (r *CharacterSkillRepo) GetByCharacterAndSkill(ctx context.Context, characterID, skillID int64) (*CharacterSkill, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, character_id, skill_id, skill_level, experience
		FROM character_skills WHERE character_id = ? AND skill_id = ?
	`, characterID, skillID)
	return scanCharacterSkill(row)
}

// ListByCharacter returns the character's learned skills joined with their
// catalog definitions. A dangling skill reference yields a nil Skill rather
// than an error.
func (r *CharacterSkillRepo) ListByCharacter(ctx context.Context, characterID int64) ([]CharacterSkillWithSkill, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cs.id, cs.character_id, cs.skill_id, cs.skill_level, cs.experience,
			s.id, s.name, s.description, s.type, s.rarity,
			s.base_damage, s.base_defense, s.base_healing,
			s.cooldown, s.required_level, s.mana_cost
		FROM character_skills cs
		LEFT JOIN skills s ON s.id = cs.skill_id
		WHERE cs.character_id = ?
		ORDER BY cs.id ASC
	`, characterID)
	if err != nil {
		return nil, fmt.Errorf("character skill list: %w", err)
	}
	defer rows.Close()

	var out []CharacterSkillWithSkill
	for rows.Next() {
		var cs CharacterSkill
		var (
			skillID     sql.NullInt64
			name        sql.NullString
			desc        sql.NullString
			typ         sql.NullString
			rarity      sql.NullString
			baseDamage  sql.NullFloat64
			baseDefense sql.NullFloat64
			baseHealing sql.NullFloat64
			cooldown    sql.NullInt64
			reqLevel    sql.NullInt64
			manaCost    sql.NullInt64
		)
		if err := rows.Scan(
			&cs.ID, &cs.CharacterID, &cs.SkillID, &cs.SkillLevel, &cs.Experience,
			&skillID, &name, &desc, &typ, &rarity,
			&baseDamage, &baseDefense, &baseHealing,
			&cooldown, &reqLevel, &manaCost,
		); err != nil {
			return nil, fmt.Errorf("character skill join scan: %w", err)
		}

		item := CharacterSkillWithSkill{Record: cs}
		if skillID.Valid {
			s := &Skill{
				ID:            skillID.Int64,
				Name:          name.String,
				Type:          typ.String,
				Rarity:        rarity.String,
				BaseDamage:    baseDamage.Float64,
				BaseDefense:   baseDefense.Float64,
				BaseHealing:   baseHealing.Float64,
				Cooldown:      int(cooldown.Int64),
				RequiredLevel: int(reqLevel.Int64),
				ManaCost:      int(manaCost.Int64),
			}
			if desc.Valid {
				v := desc.String
				s.Description = &v
			}
			item.Skill = s
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("character skill rows: %w", err)
	}
	return out, nil
}

// Update persists the skill level and experience after an upgrade.
func (r *CharacterSkillRepo) Update(ctx context.Context, cs *CharacterSkill) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE character_skills SET skill_level = ?, experience = ? WHERE id = ?
	`, cs.SkillLevel, cs.Experience, cs.ID)
	if err != nil {
		return fmt.Errorf("character skill update: %w", err)
	}
	return nil
}

func scanCharacterSkill(row scanner) (*CharacterSkill, error) {
	var cs CharacterSkill
	if err := row.Scan(&cs.ID, &cs.CharacterID, &cs.SkillID, &cs.SkillLevel, &cs.Experience); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("character skill scan: %w", err)
	}
	return &cs, nil
}
