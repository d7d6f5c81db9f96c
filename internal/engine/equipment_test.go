package engine

import (
	"context"
	"testing"
)

func TestEquipAndPower(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	base, err := svc.CharacterPower(ctx, c.ID)
	if err != nil {
		t.Fatalf("CharacterPower: %v", err)
	}
	if base != 110 {
		t.Fatalf("base power=%d, want 110", base)
	}

	eq := newTestEquipment(t, svc, EquipmentInput{
		Name: "Sword", Type: "weapon", Level: 1,
		Attack: 5, Strength: 2,
	})
	slot, err := svc.Equip(ctx, uid, c.ID, eq.ID, SlotWeapon)
	if err != nil {
		t.Fatalf("Equip: %v", err)
	}
	if slot.Slot.SlotType != string(SlotWeapon) || slot.Equipment.ID != eq.ID {
		t.Fatalf("slot=%+v, want weapon slot holding equipment %d", slot, eq.ID)
	}

	power, err := svc.CharacterPower(ctx, c.ID)
	if err != nil {
		t.Fatalf("CharacterPower: %v", err)
	}
	if power != base+7 {
		t.Fatalf("power=%d, want %d", power, base+7)
	}
}

func TestEquipReplacesSlot(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)

	first := newTestEquipment(t, svc, EquipmentInput{Name: "Old Sword", Type: "weapon", Level: 1, Attack: 2})
	second := newTestEquipment(t, svc, EquipmentInput{Name: "New Sword", Type: "weapon", Level: 1, Attack: 9})

	if _, err := svc.Equip(ctx, uid, c.ID, first.ID, SlotWeapon); err != nil {
		t.Fatalf("equip first: %v", err)
	}
	if _, err := svc.Equip(ctx, uid, c.ID, second.ID, SlotWeapon); err != nil {
		t.Fatalf("equip second: %v", err)
	}

	slots, err := svc.CharacterEquipment(ctx, uid, c.ID)
	if err != nil {
		t.Fatalf("CharacterEquipment: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("slot count=%d, want 1", len(slots))
	}
	if slots[0].Slot.EquipmentID != second.ID {
		t.Fatalf("slot holds %d, want %d", slots[0].Slot.EquipmentID, second.ID)
	}
}

func TestEquipValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)
	eq := newTestEquipment(t, svc, EquipmentInput{Name: "Sword", Type: "weapon", Level: 1})
	strong := newTestEquipment(t, svc, EquipmentInput{Name: "Greatsword", Type: "weapon", Level: 10})

	if _, err := svc.Equip(ctx, uid, c.ID, eq.ID, SlotType("ring")); !IsValidation(err) {
		t.Fatalf("invalid slot: got %v, want validation error", err)
	}
	if _, err := svc.Equip(ctx, uid, c.ID, strong.ID, SlotWeapon); !IsValidation(err) {
		t.Fatalf("level gate: got %v, want validation error", err)
	}
	if _, err := svc.Equip(ctx, uid, c.ID, 9999, SlotWeapon); !IsNotFound(err) {
		t.Fatalf("missing equipment: got %v, want not found", err)
	}

	other := newTestUser(t, svc, "bob")
	if _, err := svc.Equip(ctx, other, c.ID, eq.ID, SlotWeapon); !IsNotFound(err) {
		t.Fatalf("foreign character: got %v, want not found", err)
	}
}

func TestUnequip(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	uid := newTestUser(t, svc, "ada")
	c := newTestCharacter(t, svc, uid, "Conan", ArchetypeWarrior)
	eq := newTestEquipment(t, svc, EquipmentInput{Name: "Sword", Type: "weapon", Level: 1, Attack: 5})

	slot, err := svc.Equip(ctx, uid, c.ID, eq.ID, SlotWeapon)
	if err != nil {
		t.Fatalf("Equip: %v", err)
	}

	other := newTestUser(t, svc, "bob")
	if err := svc.Unequip(ctx, other, slot.Slot.ID); !IsNotFound(err) {
		t.Fatalf("foreign unequip: got %v, want not found", err)
	}

	if err := svc.Unequip(ctx, uid, slot.Slot.ID); err != nil {
		t.Fatalf("Unequip: %v", err)
	}
	if err := svc.Unequip(ctx, uid, slot.Slot.ID); !IsNotFound(err) {
		t.Fatalf("double unequip: got %v, want not found", err)
	}

	slots, err := svc.CharacterEquipment(ctx, uid, c.ID)
	if err != nil {
		t.Fatalf("CharacterEquipment: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slot count=%d after unequip, want 0", len(slots))
	}
}
