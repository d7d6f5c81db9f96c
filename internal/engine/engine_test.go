package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"levelforge/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func newTestUser(t *testing.T, svc *Service, username string) int64 {
	t.Helper()
	ctx := context.Background()
	id, err := svc.users.Insert(ctx, username, username+"@example.com", "x")
	if err != nil {
		t.Fatalf("insert user %s: %v", username, err)
	}
	return id
}

func newTestCharacter(t *testing.T, svc *Service, userID int64, name string, class Archetype) *storage.Character {
	t.Helper()
	c, err := svc.CreateCharacter(context.Background(), userID, CharacterInput{Name: name, Class: class})
	if err != nil {
		t.Fatalf("create character %s: %v", name, err)
	}
	return c
}

func setCharacterLevel(t *testing.T, svc *Service, c *storage.Character, level int) {
	t.Helper()
	c.Level = level
	if err := svc.characters.Update(context.Background(), c); err != nil {
		t.Fatalf("update character %d: %v", c.ID, err)
	}
}

func newTestTask(t *testing.T, svc *Service, in TaskInput) *storage.Task {
	t.Helper()
	def, err := svc.CreateTask(context.Background(), in)
	if err != nil {
		t.Fatalf("create task %s: %v", in.Name, err)
	}
	return def
}

func newTestEquipment(t *testing.T, svc *Service, in EquipmentInput) *storage.Equipment {
	t.Helper()
	e, err := svc.CreateEquipment(context.Background(), in)
	if err != nil {
		t.Fatalf("create equipment %s: %v", in.Name, err)
	}
	return e
}

func uniqueName(prefix string, i int) string {
	return fmt.Sprintf("%s%d", prefix, i)
}
