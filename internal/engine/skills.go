package engine

import (
	"context"
	"strings"

	"levelforge/internal/storage"
)

type SkillInput struct {
	Name        string
	Description string
	Kind        SkillKind
	Rarity      SkillRarity

	BaseDamage  float64
	BaseDefense float64
	BaseHealing float64

	Cooldown      int
	RequiredLevel int
	ManaCost      int
}

// CreateSkill adds a skill definition to the catalog.
func (s *Service) CreateSkill(ctx context.Context, in SkillInput) (*storage.Skill, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("skill name is required")
	}
	if !in.Kind.IsValid() {
		return nil, validationf("unknown skill type %q", string(in.Kind))
	}
	if !in.Rarity.IsValid() {
		return nil, validationf("unknown skill rarity %q", string(in.Rarity))
	}
	if in.RequiredLevel < 1 {
		in.RequiredLevel = 1
	}

	var desc *string
	if d := strings.TrimSpace(in.Description); d != "" {
		desc = &d
	}

	id, err := s.skills.Insert(ctx, storage.SkillInsert{
		Name:          strings.TrimSpace(in.Name),
		Description:   desc,
		Type:          string(in.Kind),
		Rarity:        string(in.Rarity),
		BaseDamage:    in.BaseDamage,
		BaseDefense:   in.BaseDefense,
		BaseHealing:   in.BaseHealing,
		Cooldown:      in.Cooldown,
		RequiredLevel: in.RequiredLevel,
		ManaCost:      in.ManaCost,
	})
	if err != nil {
		return nil, err
	}
	return s.skills.Get(ctx, id)
}

func (s *Service) SkillCatalog(ctx context.Context) ([]storage.Skill, error) {
	return s.skills.ListAll(ctx)
}

// CharacterSkillView joins a learned-skill record with its catalog definition.
type CharacterSkillView struct {
	Record storage.CharacterSkill
	Skill  storage.Skill
}

// CharacterSkills returns the character's learned skills joined with their
// definitions.
func (s *Service) CharacterSkills(ctx context.Context, userID, characterID int64) ([]CharacterSkillView, error) {
	if _, err := s.getOwnedCharacter(ctx, userID, characterID); err != nil {
		return nil, err
	}

	rows, err := s.charSkills.ListByCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	out := make([]CharacterSkillView, 0, len(rows))
	for _, row := range rows {
		if row.Skill == nil {
			// Dangling definition; nothing sensible to show.
			continue
		}
		out = append(out, CharacterSkillView{Record: row.Record, Skill: *row.Skill})
	}
	return out, nil
}

// LearnSkill teaches the character a catalog skill. The character must meet
// the skill's required level, and each skill can be learned at most once.
func (s *Service) LearnSkill(ctx context.Context, userID, characterID, skillID int64) (*CharacterSkillView, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	c, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	def, err := s.skills.Get(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, NotFoundError{Entity: "skill", ID: skillID}
	}
	if c.Level < def.RequiredLevel {
		return nil, validationf("skill requires level %d, character is level %d", def.RequiredLevel, c.Level)
	}

	existing, err := s.charSkills.GetByCharacterAndSkill(ctx, characterID, skillID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, validationf("skill %q is already learned", def.Name)
	}

	id, err := s.charSkills.Insert(ctx, characterID, skillID)
	if err != nil {
		return nil, err
	}
	rec, err := s.charSkills.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CharacterSkillView{Record: *rec, Skill: *def}, nil
}

// UpgradeSkill raises a learned skill one level and resets its experience.
// A skill's level can never exceed the owning character's level.
func (s *Service) UpgradeSkill(ctx context.Context, userID, characterID, recordID int64) (*CharacterSkillView, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	c, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	rec, err := s.charSkills.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CharacterID != characterID {
		return nil, NotFoundError{Entity: "character skill", ID: recordID}
	}

	def, err := s.skills.Get(ctx, rec.SkillID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, NotFoundError{Entity: "skill", ID: rec.SkillID}
	}

	if rec.SkillLevel >= c.Level {
		return nil, validationf("skill level %d cannot exceed character level %d", rec.SkillLevel, c.Level)
	}

	rec.SkillLevel++
	rec.Experience = 0
	if err := s.charSkills.Update(ctx, rec); err != nil {
		return nil, err
	}
	return &CharacterSkillView{Record: *rec, Skill: *def}, nil
}
