package engine

import "levelforge/internal/storage"

// Derived-attribute bases. Derived attributes are never authored directly;
// they are recomputed from the base attributes after every mutation.
const (
	baseHP      = 100
	baseMP      = 50
	baseAttack  = 10
	baseDefense = 5
)

// DeriveAttributes recomputes hp/mp/attack/defense from the base attributes.
// Fractional contributions are truncated.
func DeriveAttributes(c *storage.Character) {
	c.HP = baseHP + c.Vitality*10
	c.MP = baseMP + c.Intelligence*8
	c.Attack = int(baseAttack + float64(c.Strength)*2 + float64(c.Agility)*0.5)
	c.Defense = int(baseDefense + float64(c.Vitality) + float64(c.Strength)*0.5)
}

// BaseAttributes is the strength/agility/intelligence/vitality quad.
type BaseAttributes struct {
	Strength     int
	Agility      int
	Intelligence int
	Vitality     int
}

var seedAttributes = map[Archetype]BaseAttributes{
	ArchetypeWarrior: {Strength: 15, Agility: 10, Intelligence: 8, Vitality: 12},
	ArchetypeMage:    {Strength: 8, Agility: 10, Intelligence: 15, Vitality: 8},
	ArchetypeArcher:  {Strength: 10, Agility: 15, Intelligence: 10, Vitality: 10},
	ArchetypeThief:   {Strength: 12, Agility: 14, Intelligence: 10, Vitality: 9},
	ArchetypePriest:  {Strength: 9, Agility: 9, Intelligence: 13, Vitality: 11},
}

// SeedAttributes returns the archetype's starting base attributes.
func SeedAttributes(a Archetype) BaseAttributes {
	if attrs, ok := seedAttributes[a]; ok {
		return attrs
	}
	return BaseAttributes{Strength: 10, Agility: 10, Intelligence: 10, Vitality: 10}
}

// GrowthBonus holds the per-archetype multipliers applied on level-up.
type GrowthBonus struct {
	Strength     float64
	Agility      float64
	Intelligence float64
	Vitality     float64
}

var growthTable = map[Archetype]GrowthBonus{
	ArchetypeWarrior: {Strength: 1.5, Agility: 0.8, Intelligence: 0.5, Vitality: 1.3},
	ArchetypeMage:    {Strength: 0.5, Agility: 0.8, Intelligence: 1.5, Vitality: 0.7},
	ArchetypeArcher:  {Strength: 1.0, Agility: 1.5, Intelligence: 0.7, Vitality: 0.8},
	ArchetypeThief:   {Strength: 0.9, Agility: 1.4, Intelligence: 0.9, Vitality: 0.8},
	ArchetypePriest:  {Strength: 0.6, Agility: 0.7, Intelligence: 1.3, Vitality: 1.1},
}

// GrowthFor returns the archetype's multipliers; unknown archetypes grow at
// the neutral 1.0 rate on all four attributes.
func GrowthFor(a Archetype) GrowthBonus {
	if b, ok := growthTable[a]; ok {
		return b
	}
	return GrowthBonus{Strength: 1.0, Agility: 1.0, Intelligence: 1.0, Vitality: 1.0}
}
