package engine

import (
	"context"
	"testing"
)

func TestCreateCharacterSeedsAttributes(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	uid := newTestUser(t, svc, "ada")

	cases := []struct {
		class               Archetype
		str, agi, intl, vit int
	}{
		{ArchetypeWarrior, 15, 10, 8, 12},
		{ArchetypeMage, 8, 10, 15, 8},
		{ArchetypeArcher, 10, 15, 10, 10},
	}
	for i, tc := range cases {
		c := newTestCharacter(t, svc, uid, uniqueName("hero", i), tc.class)
		if c.Level != 1 || c.Exp != 0 {
			t.Fatalf("%s: level=%d exp=%d, want 1/0", tc.class, c.Level, c.Exp)
		}
		if c.Strength != tc.str || c.Agility != tc.agi || c.Intelligence != tc.intl || c.Vitality != tc.vit {
			t.Fatalf("%s: attrs %d/%d/%d/%d, want %d/%d/%d/%d", tc.class,
				c.Strength, c.Agility, c.Intelligence, c.Vitality, tc.str, tc.agi, tc.intl, tc.vit)
		}
		if c.HP != 100+c.Vitality*10 {
			t.Fatalf("%s: hp=%d, want %d", tc.class, c.HP, 100+c.Vitality*10)
		}
	}
}

func TestCreateCharacterRejectsUnknownClass(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	if _, err := svc.CreateCharacter(ctx, uid, CharacterInput{Name: "X", Class: "necromancer"}); !IsValidation(err) {
		t.Fatalf("unknown class: got %v, want validation error", err)
	}
	if _, err := svc.CreateCharacter(ctx, uid, CharacterInput{Name: "  ", Class: ArchetypeMage}); !IsValidation(err) {
		t.Fatalf("blank name: got %v, want validation error", err)
	}
}

func TestCreateCharacterCap(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	for i := 0; i < MaxCharactersPerUser; i++ {
		newTestCharacter(t, svc, uid, uniqueName("hero", i), ArchetypeThief)
	}

	_, err := svc.CreateCharacter(ctx, uid, CharacterInput{Name: "one too many", Class: ArchetypeThief})
	if !IsValidation(err) {
		t.Fatalf("over cap: got %v, want capacity error", err)
	}

	// Another user is unaffected by the first user's cap.
	other := newTestUser(t, svc, "bob")
	newTestCharacter(t, svc, other, "fresh", ArchetypePriest)
}

func TestCreateCharacterDuplicateName(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	if _, err := svc.CreateCharacter(ctx, uid, CharacterInput{Name: "Conan", Class: ArchetypeMage}); !IsValidation(err) {
		t.Fatalf("duplicate name: got %v, want validation error", err)
	}

	// Same name under a different user is fine.
	other := newTestUser(t, svc, "bob")
	newTestCharacter(t, svc, other, "Conan", ArchetypeWarrior)
}

func TestRenameCharacter(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)
	other := newTestCharacter(t, svc, uid, "Merlin", ArchetypeMage)

	renamed, err := svc.RenameCharacter(ctx, uid, c.ID, "Kull")
	if err != nil {
		t.Fatalf("RenameCharacter: %v", err)
	}
	if renamed.Name != "Kull" {
		t.Fatalf("name=%q, want Kull", renamed.Name)
	}

	if _, err := svc.RenameCharacter(ctx, uid, other.ID, "Kull"); !IsValidation(err) {
		t.Fatalf("rename onto taken name: got %v, want validation error", err)
	}
}

func TestDeleteCharacterRemovesState(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	eq := newTestEquipment(t, svc, EquipmentInput{Name: "Sword", Type: "weapon", Level: 1})
	if _, err := svc.Equip(ctx, uid, c.ID, eq.ID, SlotWeapon); err != nil {
		t.Fatalf("Equip: %v", err)
	}

	if err := svc.DeleteCharacter(ctx, uid, c.ID); err != nil {
		t.Fatalf("DeleteCharacter: %v", err)
	}
	if _, err := svc.GetCharacter(ctx, uid, c.ID); !IsNotFound(err) {
		t.Fatalf("get after delete: got %v, want not found", err)
	}
}
