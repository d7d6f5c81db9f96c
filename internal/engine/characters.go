package engine

import (
	"context"
	"strings"

	"levelforge/internal/storage"
)

// MaxCharactersPerUser caps how many characters one account may own.
const MaxCharactersPerUser = 3

type CharacterInput struct {
	Name  string
	Class Archetype
}

// CreateCharacter creates a level-1 character with archetype-seeded base
// attributes and freshly derived attributes.
func (s *Service) CreateCharacter(ctx context.Context, userID int64, in CharacterInput) (*storage.Character, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, validationf("character name is required")
	}
	if !in.Class.IsValid() {
		return nil, validationf("unknown class %q", string(in.Class))
	}

	count, err := s.characters.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= MaxCharactersPerUser {
		return nil, CapacityError{Resource: "characters", Limit: MaxCharactersPerUser}
	}

	taken, err := s.characters.NameExists(ctx, userID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationf("character name %q already exists", name)
	}

	attrs := SeedAttributes(in.Class)
	c := &storage.Character{
		UserID:       userID,
		Name:         name,
		Class:        string(in.Class),
		Level:        1,
		Strength:     attrs.Strength,
		Agility:      attrs.Agility,
		Intelligence: attrs.Intelligence,
		Vitality:     attrs.Vitality,
	}
	DeriveAttributes(c)

	id, err := s.characters.Insert(ctx, storage.CharacterInsert{
		UserID:       userID,
		Name:         name,
		Class:        string(in.Class),
		Strength:     c.Strength,
		Agility:      c.Agility,
		Intelligence: c.Intelligence,
		Vitality:     c.Vitality,
		HP:           c.HP,
		MP:           c.MP,
		Attack:       c.Attack,
		Defense:      c.Defense,
	})
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

func (s *Service) Characters(ctx context.Context, userID int64) ([]storage.Character, error) {
	return s.characters.ListByUser(ctx, userID)
}

func (s *Service) GetCharacter(ctx context.Context, userID, characterID int64) (*storage.Character, error) {
	return s.getOwnedCharacter(ctx, userID, characterID)
}

func (s *Service) RenameCharacter(ctx context.Context, userID, characterID int64, name string) (*storage.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("character name is required")
	}

	c, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	taken, err := s.characters.NameExists(ctx, userID, name, characterID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationf("character name %q already exists", name)
	}

	if err := s.characters.Rename(ctx, characterID, name); err != nil {
		return nil, err
	}
	c.Name = name
	return c, nil
}

func (s *Service) DeleteCharacter(ctx context.Context, userID, characterID int64) error {
	unlock := s.locks.lock(characterID)
	defer unlock()

	if _, err := s.getOwnedCharacter(ctx, userID, characterID); err != nil {
		return err
	}
	return s.characters.Delete(ctx, characterID)
}
