package engine

import (
	"context"
	"testing"

	"levelforge/internal/storage"
)

func newTestSkill(t *testing.T, svc *Service, in SkillInput) *storage.Skill {
	t.Helper()
	sk, err := svc.CreateSkill(context.Background(), in)
	if err != nil {
		t.Fatalf("create skill %s: %v", in.Name, err)
	}
	return sk
}

func TestCreateSkillValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.CreateSkill(ctx, SkillInput{Name: "  ", Kind: SkillAttack, Rarity: RarityCommon}); !IsValidation(err) {
		t.Fatalf("blank name: got %v, want validation error", err)
	}
	if _, err := svc.CreateSkill(ctx, SkillInput{Name: "Bad", Kind: "summon", Rarity: RarityCommon}); !IsValidation(err) {
		t.Fatalf("unknown kind: got %v, want validation error", err)
	}
	if _, err := svc.CreateSkill(ctx, SkillInput{Name: "Bad", Kind: SkillAttack, Rarity: "mythic"}); !IsValidation(err) {
		t.Fatalf("unknown rarity: got %v, want validation error", err)
	}

	sk := newTestSkill(t, svc, SkillInput{Name: "Power Strike", Kind: SkillAttack, Rarity: RarityCommon, BaseDamage: 15})
	if sk.RequiredLevel != 1 {
		t.Fatalf("required level=%d, want default 1", sk.RequiredLevel)
	}
}

func TestLearnSkill(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)
	sk := newTestSkill(t, svc, SkillInput{Name: "Power Strike", Kind: SkillAttack, Rarity: RarityCommon, RequiredLevel: 1})

	view, err := svc.LearnSkill(ctx, uid, c.ID, sk.ID)
	if err != nil {
		t.Fatalf("LearnSkill: %v", err)
	}
	if view.Record.SkillLevel != 1 || view.Record.Experience != 0 {
		t.Fatalf("record=%+v, want level 1 with zero experience", view.Record)
	}
	if view.Skill.ID != sk.ID {
		t.Fatalf("skill id=%d, want %d", view.Skill.ID, sk.ID)
	}

	// Learning the same skill twice is rejected.
	if _, err := svc.LearnSkill(ctx, uid, c.ID, sk.ID); !IsValidation(err) {
		t.Fatalf("double learn: got %v, want validation error", err)
	}

	skills, err := svc.CharacterSkills(ctx, uid, c.ID)
	if err != nil {
		t.Fatalf("CharacterSkills: %v", err)
	}
	if len(skills) != 1 || skills[0].Skill.Name != "Power Strike" {
		t.Fatalf("skills=%+v, want the one learned skill", skills)
	}
}

func TestLearnSkillLevelGate(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)
	sk := newTestSkill(t, svc, SkillInput{Name: "Dragon's Wrath", Kind: SkillSpecial, Rarity: RarityLegendary, RequiredLevel: 20})

	if _, err := svc.LearnSkill(ctx, uid, c.ID, sk.ID); !IsValidation(err) {
		t.Fatalf("under-leveled learn: got %v, want validation error", err)
	}

	setCharacterLevel(t, svc, c, 20)
	if _, err := svc.LearnSkill(ctx, uid, c.ID, sk.ID); err != nil {
		t.Fatalf("learn at required level: %v", err)
	}
}

func TestLearnSkillNotFound(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	if _, err := svc.LearnSkill(ctx, uid, c.ID, 999); !IsNotFound(err) {
		t.Fatalf("unknown skill: got %v, want not found", err)
	}

	// Another user's character is indistinguishable from a missing one.
	sk := newTestSkill(t, svc, SkillInput{Name: "Power Strike", Kind: SkillAttack, Rarity: RarityCommon})
	other := newTestUser(t, svc, "bob")
	if _, err := svc.LearnSkill(ctx, other, c.ID, sk.ID); !IsNotFound(err) {
		t.Fatalf("foreign character: got %v, want not found", err)
	}
}

func TestUpgradeSkill(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)
	sk := newTestSkill(t, svc, SkillInput{Name: "Power Strike", Kind: SkillAttack, Rarity: RarityCommon})

	learned, err := svc.LearnSkill(ctx, uid, c.ID, sk.ID)
	if err != nil {
		t.Fatalf("LearnSkill: %v", err)
	}

	// At character level 1 the skill is already at the cap.
	if _, err := svc.UpgradeSkill(ctx, uid, c.ID, learned.Record.ID); !IsValidation(err) {
		t.Fatalf("upgrade at cap: got %v, want validation error", err)
	}

	setCharacterLevel(t, svc, c, 3)
	view, err := svc.UpgradeSkill(ctx, uid, c.ID, learned.Record.ID)
	if err != nil {
		t.Fatalf("UpgradeSkill: %v", err)
	}
	if view.Record.SkillLevel != 2 || view.Record.Experience != 0 {
		t.Fatalf("record=%+v, want level 2 with reset experience", view.Record)
	}

	// Two more upgrades hit the character-level cap again.
	if _, err := svc.UpgradeSkill(ctx, uid, c.ID, learned.Record.ID); err != nil {
		t.Fatalf("UpgradeSkill to 3: %v", err)
	}
	if _, err := svc.UpgradeSkill(ctx, uid, c.ID, learned.Record.ID); !IsValidation(err) {
		t.Fatalf("upgrade past character level: got %v, want validation error", err)
	}
}

func TestUpgradeSkillNotFound(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	if _, err := svc.UpgradeSkill(ctx, uid, c.ID, 999); !IsNotFound(err) {
		t.Fatalf("unknown record: got %v, want not found", err)
	}

	// A record belonging to another character is not reachable either.
	sk := newTestSkill(t, svc, SkillInput{Name: "Power Strike", Kind: SkillAttack, Rarity: RarityCommon})
	otherChar := newTestCharacter(t, svc, uid, "Merlin", ArchetypeMage)
	learned, err := svc.LearnSkill(ctx, uid, otherChar.ID, sk.ID)
	if err != nil {
		t.Fatalf("LearnSkill: %v", err)
	}
	if _, err := svc.UpgradeSkill(ctx, uid, c.ID, learned.Record.ID); !IsNotFound(err) {
		t.Fatalf("foreign record: got %v, want not found", err)
	}
}
