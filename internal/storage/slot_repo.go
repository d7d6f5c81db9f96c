package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type SlotRepo struct {
	db *sql.DB
}

func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Assign places the equipment into the character's slot, replacing whatever
// occupied it. The delete+insert pair runs in one transaction so the
// one-assignment-per-slot invariant holds even if the call races a reader.
func (r *SlotRepo) Assign(ctx context.Context, characterID, equipmentID int64, slotType string) (int64, error) {
	var id int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM equipment_slots WHERE character_id = ? AND slot_type = ?
		`, characterID, slotType); err != nil {
			return fmt.Errorf("slot replace delete: %w", err)
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO equipment_slots (character_id, equipment_id, slot_type) VALUES (?, ?, ?)
		`, characterID, equipmentID, slotType)
		if err != nil {
			return fmt.Errorf("slot insert: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("slot last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SlotRepo) Get(ctx context.Context, id int64) (*EquipmentSlot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, character_id, equipment_id, slot_type FROM equipment_slots WHERE id = ?
	`, id)
	var s EquipmentSlot
	if err := row.Scan(&s.ID, &s.CharacterID, &s.EquipmentID, &s.SlotType); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("slot scan: %w", err)
	}
	return &s, nil
}

func (r *SlotRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM equipment_slots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("slot delete: %w", err)
	}
	return nil
}

// ListByCharacter returns the character's slot assignments joined with their
// equipment definitions. A dangling equipment reference yields a nil
// Equipment rather than an error.
func (r *SlotRepo) ListByCharacter(ctx context.Context, characterID int64) ([]SlotWithEquipment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.character_id, s.equipment_id, s.slot_type,
			e.id, e.name, e.type, e.level, e.rarity,
			e.attack, e.defense, e.strength, e.agility, e.intelligence, e.vitality,
			e.durability, e.price
		FROM equipment_slots s
		LEFT JOIN equipment e ON e.id = s.equipment_id
		WHERE s.character_id = ?
		ORDER BY s.id ASC
	`, characterID)
	if err != nil {
		return nil, fmt.Errorf("slot list: %w", err)
	}
	defer rows.Close()

	var out []SlotWithEquipment
	for rows.Next() {
		var s EquipmentSlot
		var (
			eqID         sql.NullInt64
			name         sql.NullString
			typ          sql.NullString
			level        sql.NullInt64
			rarity       sql.NullString
			attack       sql.NullInt64
			defense      sql.NullInt64
			strength     sql.NullInt64
			agility      sql.NullInt64
			intelligence sql.NullInt64
			vitality     sql.NullInt64
			durability   sql.NullInt64
			price        sql.NullInt64
		)
		if err := rows.Scan(
			&s.ID, &s.CharacterID, &s.EquipmentID, &s.SlotType,
			&eqID, &name, &typ, &level, &rarity,
			&attack, &defense, &strength, &agility, &intelligence, &vitality,
			&durability, &price,
		); err != nil {
			return nil, fmt.Errorf("slot join scan: %w", err)
		}

		item := SlotWithEquipment{Slot: s}
		if eqID.Valid {
			item.Equipment = &Equipment{
				ID:           eqID.Int64,
				Name:         name.String,
				Type:         typ.String,
				Level:        int(level.Int64),
				Rarity:       rarity.String,
				Attack:       int(attack.Int64),
				Defense:      int(defense.Int64),
				Strength:     int(strength.Int64),
				Agility:      int(agility.Int64),
				Intelligence: int(intelligence.Int64),
				Vitality:     int(vitality.Int64),
				Durability:   int(durability.Int64),
				Price:        int(price.Int64),
			}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("slot rows: %w", err)
	}
	return out, nil
}
