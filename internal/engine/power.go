package engine

import (
	"context"

	"levelforge/internal/storage"
)

const (
	basePower     = 100
	powerPerLevel = 10
)

// powerOf aggregates base, level and equipment power. Slots whose equipment
// definition is gone contribute nothing.
func powerOf(level int, slots []storage.SlotWithEquipment) int {
	power := basePower + level*powerPerLevel
	for _, s := range slots {
		if s.Equipment == nil {
			continue
		}
		power += s.Equipment.BonusSum()
	}
	return power
}

// CharacterPower computes the character's current power score. Nothing is
// cached; every call reflects the slots as stored.
func (s *Service) CharacterPower(ctx context.Context, characterID int64) (int, error) {
	c, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, NotFoundError{Entity: "character", ID: characterID}
	}
	slots, err := s.slots.ListByCharacter(ctx, characterID)
	if err != nil {
		return 0, err
	}
	return powerOf(c.Level, slots), nil
}
