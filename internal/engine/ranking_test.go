package engine

import (
	"context"
	"testing"
)

func TestLevelRankingOrder(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	ada := newTestUser(t, svc, "ada")
	bob := newTestUser(t, svc, "bob")

	a1 := newTestCharacter(t, svc, ada, "Conan", ArchetypeWarrior)
	a2 := newTestCharacter(t, svc, ada, "Merlin", ArchetypeMage)
	b1 := newTestCharacter(t, svc, bob, "Robin", ArchetypeArcher)

	setCharacterLevel(t, svc, a1, 10)
	setCharacterLevel(t, svc, a2, 5)
	setCharacterLevel(t, svc, b1, 10)

	// b1 outranks a1 at equal level through equipment power.
	eq := newTestEquipment(t, svc, EquipmentInput{Name: "Bow", Type: "weapon", Level: 1, Attack: 10})
	if _, err := svc.Equip(ctx, bob, b1.ID, eq.ID, SlotWeapon); err != nil {
		t.Fatalf("Equip: %v", err)
	}

	rk, err := svc.LevelRanking(ctx, ada)
	if err != nil {
		t.Fatalf("LevelRanking: %v", err)
	}
	if len(rk.Entries) != 3 {
		t.Fatalf("entry count=%d, want 3", len(rk.Entries))
	}

	wantOrder := []int64{b1.ID, a1.ID, a2.ID}
	for i, want := range wantOrder {
		if rk.Entries[i].CharacterID != want {
			t.Fatalf("rank %d is character %d, want %d", i+1, rk.Entries[i].CharacterID, want)
		}
		if rk.Entries[i].Rank != i+1 {
			t.Fatalf("rank field=%d, want %d", rk.Entries[i].Rank, i+1)
		}
	}
	if rk.Entries[0].Username != "bob" {
		t.Fatalf("top username=%q, want bob", rk.Entries[0].Username)
	}
	if rk.PersonalRank != 2 {
		t.Fatalf("personal rank=%d for ada, want 2", rk.PersonalRank)
	}
}

func TestPowerRankingReflectsEquipment(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	ada := newTestUser(t, svc, "ada")
	bob := newTestUser(t, svc, "bob")

	a1 := newTestCharacter(t, svc, ada, "Conan", ArchetypeWarrior)
	b1 := newTestCharacter(t, svc, bob, "Robin", ArchetypeArcher)
	setCharacterLevel(t, svc, a1, 10)
	setCharacterLevel(t, svc, b1, 5)

	rk, err := svc.PowerRanking(ctx, bob)
	if err != nil {
		t.Fatalf("PowerRanking: %v", err)
	}
	if rk.Entries[0].CharacterID != a1.ID {
		t.Fatalf("top character=%d before equip, want %d", rk.Entries[0].CharacterID, a1.ID)
	}
	if rk.PersonalRank != 2 {
		t.Fatalf("personal rank=%d for bob, want 2", rk.PersonalRank)
	}

	// A big enough bonus flips the order.
	eq := newTestEquipment(t, svc, EquipmentInput{Name: "Relic Bow", Type: "weapon", Level: 1, Attack: 50, Agility: 20})
	slot, err := svc.Equip(ctx, bob, b1.ID, eq.ID, SlotWeapon)
	if err != nil {
		t.Fatalf("Equip: %v", err)
	}

	rk, err = svc.PowerRanking(ctx, bob)
	if err != nil {
		t.Fatalf("PowerRanking: %v", err)
	}
	if rk.Entries[0].CharacterID != b1.ID {
		t.Fatalf("top character=%d after equip, want %d", rk.Entries[0].CharacterID, b1.ID)
	}
	if rk.Entries[0].Power != 100+5*10+70 {
		t.Fatalf("top power=%d, want %d", rk.Entries[0].Power, 100+5*10+70)
	}
	if rk.PersonalRank != 1 {
		t.Fatalf("personal rank=%d after equip, want 1", rk.PersonalRank)
	}

	// Unequipping restores the old order.
	if err := svc.Unequip(ctx, bob, slot.Slot.ID); err != nil {
		t.Fatalf("Unequip: %v", err)
	}
	rk, err = svc.PowerRanking(ctx, bob)
	if err != nil {
		t.Fatalf("PowerRanking: %v", err)
	}
	if rk.Entries[0].CharacterID != a1.ID {
		t.Fatalf("top character=%d after unequip, want %d", rk.Entries[0].CharacterID, a1.ID)
	}
}

func TestRankingTieBreaksByCharacterID(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	ada := newTestUser(t, svc, "ada")
	first := newTestCharacter(t, svc, ada, "Twin A", ArchetypeWarrior)
	second := newTestCharacter(t, svc, ada, "Twin B", ArchetypeWarrior)

	rk, err := svc.LevelRanking(ctx, ada)
	if err != nil {
		t.Fatalf("LevelRanking: %v", err)
	}
	if rk.Entries[0].CharacterID != first.ID || rk.Entries[1].CharacterID != second.ID {
		t.Fatalf("tie order %d,%d, want %d,%d",
			rk.Entries[0].CharacterID, rk.Entries[1].CharacterID, first.ID, second.ID)
	}
	if rk.PersonalRank != 1 {
		t.Fatalf("personal rank=%d, want 1", rk.PersonalRank)
	}
}

func TestRankingTruncatesToBoardLimit(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// 34 users with 3 characters each put 102 level-2 characters on the
	// board, two past the cutoff.
	for u := 0; u < 34; u++ {
		uid := newTestUser(t, svc, uniqueName("user", u))
		for i := 0; i < 3; i++ {
			c := newTestCharacter(t, svc, uid, uniqueName("Hero", u*3+i), ArchetypeWarrior)
			setCharacterLevel(t, svc, c, 2)
		}
	}

	// One last level-1 character ranks below every level-2 one and, with
	// the highest id, loses every tie break too.
	casey := newTestUser(t, svc, "casey")
	weak := newTestCharacter(t, svc, casey, "Latecomer", ArchetypeThief)

	rk, err := svc.PowerRanking(ctx, casey)
	if err != nil {
		t.Fatalf("PowerRanking: %v", err)
	}
	if len(rk.Entries) != rankingLimit {
		t.Fatalf("entry count=%d, want %d", len(rk.Entries), rankingLimit)
	}
	if last := rk.Entries[len(rk.Entries)-1]; last.Rank != rankingLimit {
		t.Fatalf("last rank=%d, want %d", last.Rank, rankingLimit)
	}
	for _, e := range rk.Entries {
		if e.CharacterID == weak.ID {
			t.Fatalf("character %d on the board, want it truncated", weak.ID)
		}
	}
	// The personal rank still reflects the full ordering.
	if rk.PersonalRank != 103 {
		t.Fatalf("personal rank=%d, want 103", rk.PersonalRank)
	}
}

func TestRankingEmptyBoard(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	rk, err := svc.PowerRanking(ctx, 42)
	if err != nil {
		t.Fatalf("PowerRanking: %v", err)
	}
	if len(rk.Entries) != 0 || rk.PersonalRank != 0 {
		t.Fatalf("entries=%d personal=%d on empty board, want 0/0", len(rk.Entries), rk.PersonalRank)
	}
}
