package engine

import (
	"context"
	"testing"
)

func TestExpRequiredCurve(t *testing.T) {
	if got := ExpRequired(1); got != 1000 {
		t.Fatalf("ExpRequired(1)=%d, want 1000", got)
	}
	if got := ExpRequired(2); got != 1500 {
		t.Fatalf("ExpRequired(2)=%d, want 1500", got)
	}
	if got := ExpRequired(3); got != 2250 {
		t.Fatalf("ExpRequired(3)=%d, want 2250", got)
	}
	// Out-of-range input clamps to level 1.
	if got := ExpRequired(0); got != 1000 {
		t.Fatalf("ExpRequired(0)=%d, want 1000", got)
	}

	// The curve must keep growing within the range a balance can reach.
	prev := ExpRequired(1)
	for level := 2; level <= 90; level++ {
		cur := ExpRequired(level)
		if cur <= prev {
			t.Fatalf("ExpRequired(%d)=%d not greater than ExpRequired(%d)=%d", level, cur, level-1, prev)
		}
		prev = cur
	}
}

func TestGrantExperienceSingleLevelUp(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	res, err := svc.GrantExperience(ctx, uid, c.ID, 1000)
	if err != nil {
		t.Fatalf("GrantExperience: %v", err)
	}
	if res.Level != 2 || res.Exp != 0 {
		t.Fatalf("level=%d exp=%d, want level 2 exp 0", res.Level, res.Exp)
	}
	if !res.LevelUp || res.LevelsGained != 1 {
		t.Fatalf("levelUp=%v gained=%d, want levelUp with 1 level", res.LevelUp, res.LevelsGained)
	}
	if res.NextLevelExp != 1500 {
		t.Fatalf("nextLevelExp=%d, want 1500", res.NextLevelExp)
	}

	got, err := svc.GetCharacter(ctx, uid, c.ID)
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if got.Strength != 18 || got.Agility != 11 || got.Intelligence != 9 || got.Vitality != 14 {
		t.Fatalf("attrs str=%d agi=%d int=%d vit=%d, want 18/11/9/14",
			got.Strength, got.Agility, got.Intelligence, got.Vitality)
	}
	if got.HP != 240 || got.MP != 122 || got.Attack != 51 || got.Defense != 28 {
		t.Fatalf("derived hp=%d mp=%d atk=%d def=%d, want 240/122/51/28",
			got.HP, got.MP, got.Attack, got.Defense)
	}
}

func TestGrantExperienceMultiLevel(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Merlin", ArchetypeMage)

	res, err := svc.GrantExperience(ctx, uid, c.ID, 2500)
	if err != nil {
		t.Fatalf("GrantExperience: %v", err)
	}
	if res.Level != 3 || res.Exp != 0 {
		t.Fatalf("level=%d exp=%d, want level 3 exp 0", res.Level, res.Exp)
	}
	if res.LevelsGained != 2 {
		t.Fatalf("gained=%d, want 2", res.LevelsGained)
	}
}

func TestGrantExperiencePartialProgress(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Robin", ArchetypeArcher)

	res, err := svc.GrantExperience(ctx, uid, c.ID, 999)
	if err != nil {
		t.Fatalf("GrantExperience: %v", err)
	}
	if res.Level != 1 || res.Exp != 999 {
		t.Fatalf("level=%d exp=%d, want level 1 exp 999", res.Level, res.Exp)
	}
	if res.LevelUp {
		t.Fatalf("did not expect a level up")
	}
}

func TestGrantExperienceValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	if _, err := svc.GrantExperience(ctx, uid, c.ID, 0); !IsValidation(err) {
		t.Fatalf("zero grant: got %v, want validation error", err)
	}
	if _, err := svc.GrantExperience(ctx, uid, c.ID, -5); !IsValidation(err) {
		t.Fatalf("negative grant: got %v, want validation error", err)
	}
	if _, err := svc.GrantExperience(ctx, uid, c.ID, MaxExpPerGrant+1); !IsValidation(err) {
		t.Fatalf("oversized grant: got %v, want validation error", err)
	}

	// Rejected grants leave the character untouched.
	got, err := svc.GetCharacter(ctx, uid, c.ID)
	if err != nil {
		t.Fatalf("GetCharacter: %v", err)
	}
	if got.Level != 1 || got.Exp != 0 {
		t.Fatalf("level=%d exp=%d after rejected grants, want 1/0", got.Level, got.Exp)
	}
}

func TestGrantExperienceOwnership(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	owner := newTestUser(t, svc, "ada")
	other := newTestUser(t, svc, "bob")
	c := newTestCharacter(t, svc, owner, "Conan", ArchetypeWarrior)

	if _, err := svc.GrantExperience(ctx, other, c.ID, 100); !IsNotFound(err) {
		t.Fatalf("foreign grant: got %v, want not found", err)
	}
}

func TestLevelCapZeroesExperience(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)
	setCharacterLevel(t, svc, c, MaxLevel)

	res, err := svc.GrantExperience(ctx, uid, c.ID, MaxExpPerGrant)
	if err != nil {
		t.Fatalf("GrantExperience: %v", err)
	}
	if res.Level != MaxLevel || res.Exp != 0 {
		t.Fatalf("level=%d exp=%d at cap, want %d/0", res.Level, res.Exp, MaxLevel)
	}
	if res.LevelUp {
		t.Fatalf("did not expect a level up at the cap")
	}
}
