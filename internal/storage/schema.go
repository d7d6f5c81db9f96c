package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS characters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			class_type TEXT NOT NULL,

			level INTEGER DEFAULT 1,
			exp INTEGER DEFAULT 0,

			strength INTEGER DEFAULT 10,
			agility INTEGER DEFAULT 10,
			intelligence INTEGER DEFAULT 10,
			vitality INTEGER DEFAULT 10,

			hp INTEGER DEFAULT 100,
			mp INTEGER DEFAULT 50,
			attack INTEGER DEFAULT 10,
			defense INTEGER DEFAULT 5,

			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS equipment (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			level INTEGER DEFAULT 1,
			rarity TEXT NOT NULL,

			attack INTEGER DEFAULT 0,
			defense INTEGER DEFAULT 0,
			strength INTEGER DEFAULT 0,
			agility INTEGER DEFAULT 0,
			intelligence INTEGER DEFAULT 0,
			vitality INTEGER DEFAULT 0,

			durability INTEGER DEFAULT 100,
			price INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS equipment_slots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			character_id INTEGER NOT NULL,
			equipment_id INTEGER NOT NULL,
			slot_type TEXT NOT NULL,

			FOREIGN KEY(character_id) REFERENCES characters(id),
			FOREIGN KEY(equipment_id) REFERENCES equipment(id),
			UNIQUE(character_id, slot_type)
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			type TEXT NOT NULL,
			required_level INTEGER DEFAULT 1,
			exp_reward INTEGER DEFAULT 0,
			gold_reward INTEGER DEFAULT 0,
			item_reward TEXT,
			target_count INTEGER DEFAULT 1,
			reset_daily INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS character_tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			character_id INTEGER NOT NULL,
			task_id INTEGER NOT NULL,
			status TEXT DEFAULT 'available',
			progress INTEGER DEFAULT 0,
			accepted_at DATETIME,
			completed_at DATETIME,
			rewarded_at DATETIME,

			FOREIGN KEY(character_id) REFERENCES characters(id),
			FOREIGN KEY(task_id) REFERENCES tasks(id),
			UNIQUE(character_id, task_id)
		);`,
		`CREATE TABLE IF NOT EXISTS skills (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			type TEXT NOT NULL,
			rarity TEXT NOT NULL,

			base_damage REAL DEFAULT 0,
			base_defense REAL DEFAULT 0,
			base_healing REAL DEFAULT 0,

			cooldown INTEGER DEFAULT 0,
			required_level INTEGER DEFAULT 1,
			mana_cost INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS character_skills (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			character_id INTEGER NOT NULL,
			skill_id INTEGER NOT NULL,
			skill_level INTEGER DEFAULT 1,
			experience INTEGER DEFAULT 0,

			FOREIGN KEY(character_id) REFERENCES characters(id),
			FOREIGN KEY(skill_id) REFERENCES skills(id),
			UNIQUE(character_id, skill_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_characters_user_id ON characters(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_character_skills_character_id ON character_skills(character_id);`,
		`CREATE INDEX IF NOT EXISTS idx_equipment_slots_character_id ON equipment_slots(character_id);`,
		`CREATE INDEX IF NOT EXISTS idx_character_tasks_character_id ON character_tasks(character_id);`,
		`CREATE INDEX IF NOT EXISTS idx_character_tasks_status ON character_tasks(status);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
