package engine

import (
	"context"
	"math"

	"levelforge/internal/storage"
)

const (
	// MaxLevel is the hard level cap; experience is forced to zero there.
	MaxLevel = 100

	// MaxExpPerGrant is a single-call throttle, not a rolling daily counter.
	MaxExpPerGrant = 5000

	baseExpRequired = 1000.0
	expGrowthRate   = 1.5

	baseGrowth      = 2.0
	growthLevelRate = 0.05
)

// ExpRequired returns the experience needed to clear the given level:
// floor(1000 × 1.5^(level−1)). The curve leaves int64 range near the cap,
// so values are clamped to MaxInt64; experience balances can never reach
// them because of the per-grant throttle.
func ExpRequired(level int) int64 {
	if level < 1 {
		level = 1
	}
	req := math.Floor(baseExpRequired * math.Pow(expGrowthRate, float64(level-1)))
	if req >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(req)
}

// growthDelta is the base-attribute increase for one level-up, using the
// post-increment level: trunc(2 × (1 + (level−1) × 0.05) × bonus).
func growthDelta(level int, bonus float64) int {
	levelFactor := 1 + float64(level-1)*growthLevelRate
	return int(baseGrowth * levelFactor * bonus)
}

// applyGrowthStep raises the base attributes for the level the character
// just reached and recomputes the derived attributes.
func applyGrowthStep(c *storage.Character) {
	bonus := GrowthFor(Archetype(c.Class))
	c.Strength += growthDelta(c.Level, bonus.Strength)
	c.Agility += growthDelta(c.Level, bonus.Agility)
	c.Intelligence += growthDelta(c.Level, bonus.Intelligence)
	c.Vitality += growthDelta(c.Level, bonus.Vitality)
	DeriveAttributes(c)
}

// GrantResult reports the outcome of an experience grant.
type GrantResult struct {
	CharacterID  int64
	Name         string
	Level        int
	Exp          int64
	NextLevelExp int64
	LevelUp      bool
	LevelsGained int
}

// GrantExperience adds experience to an owned character, applying as many
// level-ups as the new balance clears. Validation happens before any state
// change; on error the character is untouched.
func (s *Service) GrantExperience(ctx context.Context, userID, characterID int64, amount int64) (*GrantResult, error) {
	if amount <= 0 {
		return nil, validationf("experience grant must be positive")
	}
	if amount > MaxExpPerGrant {
		return nil, validationf("a single grant cannot exceed %d experience", MaxExpPerGrant)
	}

	unlock := s.locks.lock(characterID)
	defer unlock()

	c, err := s.characters.GetOwned(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundError{Entity: "character", ID: characterID}
	}

	gained := s.applyExperience(c, amount)
	if err := s.characters.Update(ctx, c); err != nil {
		return nil, err
	}

	return &GrantResult{
		CharacterID:  c.ID,
		Name:         c.Name,
		Level:        c.Level,
		Exp:          c.Exp,
		NextLevelExp: ExpRequired(c.Level),
		LevelUp:      gained > 0,
		LevelsGained: gained,
	}, nil
}

// applyExperience mutates the character in memory and returns the number of
// levels gained. Each cleared threshold is subtracted using the level it
// belonged to, then growth is applied at the post-increment level.
func (s *Service) applyExperience(c *storage.Character, amount int64) int {
	c.Exp += amount

	gained := 0
	for c.Level < MaxLevel && c.Exp >= ExpRequired(c.Level) {
		c.Exp -= ExpRequired(c.Level)
		c.Level++
		applyGrowthStep(c)
		gained++
	}
	if c.Level >= MaxLevel {
		c.Exp = 0
	}
	return gained
}
