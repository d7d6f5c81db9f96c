package engine

import (
	"context"
	"strings"

	"levelforge/internal/storage"
)

type EquipmentInput struct {
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

// CreateEquipment adds a catalog entry. Definitions are immutable once
// referenced by a slot; there is no update path.
func (s *Service) CreateEquipment(ctx context.Context, in EquipmentInput) (*storage.Equipment, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("equipment name is required")
	}
	if in.Level < 1 {
		in.Level = 1
	}
	if in.Durability <= 0 {
		in.Durability = 100
	}

	id, err := s.equipment.Insert(ctx, storage.EquipmentInsert{
		Name:         strings.TrimSpace(in.Name),
		Type:         in.Type,
		Level:        in.Level,
		Rarity:       in.Rarity,
		Attack:       in.Attack,
		Defense:      in.Defense,
		Strength:     in.Strength,
		Agility:      in.Agility,
		Intelligence: in.Intelligence,
		Vitality:     in.Vitality,
		Durability:   in.Durability,
		Price:        in.Price,
	})
	if err != nil {
		return nil, err
	}
	return s.equipment.Get(ctx, id)
}

func (s *Service) EquipmentCatalog(ctx context.Context) ([]storage.Equipment, error) {
	return s.equipment.ListAll(ctx)
}

func (s *Service) GetEquipment(ctx context.Context, id int64) (*storage.Equipment, error) {
	e, err := s.equipment.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, NotFoundError{Entity: "equipment", ID: id}
	}
	return e, nil
}

// Equip places equipment into one of the character's slots. An occupied slot
// is replaced implicitly; the prior occupant is discarded, not returned to
// an inventory (none exists).
func (s *Service) Equip(ctx context.Context, userID, characterID, equipmentID int64, slot SlotType) (*storage.SlotWithEquipment, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	c, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	eq, err := s.equipment.Get(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, NotFoundError{Entity: "equipment", ID: equipmentID}
	}

	if !slot.IsValid() {
		return nil, validationf("invalid slot type %q", string(slot))
	}
	if eq.Level > c.Level {
		return nil, validationf("equipment requires level %d, character is level %d", eq.Level, c.Level)
	}

	id, err := s.slots.Assign(ctx, characterID, equipmentID, string(slot))
	if err != nil {
		return nil, err
	}

	return &storage.SlotWithEquipment{
		Slot: storage.EquipmentSlot{
			ID:          id,
			CharacterID: characterID,
			EquipmentID: equipmentID,
			SlotType:    string(slot),
		},
		Equipment: eq,
	}, nil
}

// Unequip removes a slot assignment. It has no effect on character
// attributes; equipment bonuses only ever feed the power score.
func (s *Service) Unequip(ctx context.Context, userID, slotID int64) error {
	slot, err := s.slots.Get(ctx, slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return NotFoundError{Entity: "equipment slot", ID: slotID}
	}

	unlock := s.locks.lock(slot.CharacterID)
	defer unlock()

	if _, err := s.getOwnedCharacter(ctx, userID, slot.CharacterID); err != nil {
		return err
	}
	return s.slots.Delete(ctx, slotID)
}

func (s *Service) CharacterEquipment(ctx context.Context, userID, characterID int64) ([]storage.SlotWithEquipment, error) {
	if _, err := s.getOwnedCharacter(ctx, userID, characterID); err != nil {
		return nil, err
	}
	return s.slots.ListByCharacter(ctx, characterID)
}
