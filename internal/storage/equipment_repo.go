package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type EquipmentRepo struct {
	db *sql.DB
}

func NewEquipmentRepo(db *sql.DB) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

const equipmentColumns = `id, name, type, level, rarity,
	attack, defense, strength, agility, intelligence, vitality,
	durability, price`

type EquipmentInsert struct {
	Name   string
	Type   string
	Level  int
	Rarity string

	Attack       int
	Defense      int
	Strength     int
	Agility      int
	Intelligence int
	Vitality     int

	Durability int
	Price      int
}

func (r *EquipmentRepo) Insert(ctx context.Context, in EquipmentInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO equipment (
			name, type, level, rarity,
			attack, defense, strength, agility, intelligence, vitality,
			durability, price
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Name, in.Type, in.Level, in.Rarity,
		in.Attack, in.Defense, in.Strength, in.Agility, in.Intelligence, in.Vitality,
		in.Durability, in.Price)
	if err != nil {
		return 0, fmt.Errorf("equipment insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("equipment last insert id: %w", err)
	}
	return id, nil
}

func (r *EquipmentRepo) Get(ctx context.Context, id int64) (*Equipment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`, id)
	return scanEquipment(row)
}

func (r *EquipmentRepo) ListAll(ctx context.Context) ([]Equipment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("equipment list: %w", err)
	}
	defer rows.Close()

	var out []Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("equipment rows: %w", err)
	}
	return out, nil
}

func (r *EquipmentRepo) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM equipment`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("equipment count: %w", err)
	}
	return n, nil
}

func scanEquipment(row scanner) (*Equipment, error) {
	var e Equipment
	if err := row.Scan(
		&e.ID, &e.Name, &e.Type, &e.Level, &e.Rarity,
		&e.Attack, &e.Defense, &e.Strength, &e.Agility, &e.Intelligence, &e.Vitality,
		&e.Durability, &e.Price,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("equipment scan: %w", err)
	}
	return &e, nil
}
