package storage

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Character struct {
	ID     int64
	UserID int64
	Name   string
	Class  string

	Level int
	Exp   int64

	// Base attributes, mutated only by level growth.
	Strength     int
	Agility      int
	Intelligence int
	Vitality     int

	// Derived attributes, always recomputed from the base attributes.
	HP      int
	MP      int
	Attack  int
	Defense int

	CreatedAt time.Time
}

type Equipment struct {
	ID     int64
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

// BonusSum is the total of the six attribute bonus fields, the equipment's
// contribution to character power.
func (e Equipment) BonusSum() int {
	return e.Attack + e.Defense + e.Strength + e.Agility + e.Intelligence + e.Vitality
}

type EquipmentSlot struct {
	ID          int64
	CharacterID int64
	EquipmentID int64
	SlotType    string
}

// SlotWithEquipment joins a slot assignment with its equipment definition.
// Equipment is nil when the referenced definition no longer exists.
type SlotWithEquipment struct {
	Slot      EquipmentSlot
	Equipment *Equipment
}

type Skill struct {
	ID          int64
	Name        string
	Description *string
	Type        string
	Rarity      string

	BaseDamage  float64
	BaseDefense float64
	BaseHealing float64

	Cooldown      int
	RequiredLevel int
	ManaCost      int
}

// CharacterSkill is a learned skill. SkillLevel is capped at the owning
// character's level by the engine, never here.
type CharacterSkill struct {
	ID          int64
	CharacterID int64
	SkillID     int64
	SkillLevel  int
	Experience  int64
}

// CharacterSkillWithSkill joins a learned skill with its catalog definition.
// Skill is nil when the referenced definition no longer exists.
type CharacterSkillWithSkill struct {
	Record CharacterSkill
	Skill  *Skill
}

type Task struct {
	ID            int64
	Name          string
	Description   *string
	Type          string
	RequiredLevel int
	ExpReward     int64
	GoldReward    int64
	ItemReward    *string
	TargetCount   int
	ResetDaily    bool
}

type CharacterTask struct {
	ID          int64
	CharacterID int64
	TaskID      int64
	Status      string
	Progress    int
	AcceptedAt  *time.Time
	CompletedAt *time.Time
	RewardedAt  *time.Time
}
