package engine

// Archetype is a character's class, determining seed attributes and growth.
type Archetype string

const (
	ArchetypeWarrior Archetype = "warrior"
	ArchetypeMage    Archetype = "mage"
	ArchetypeArcher  Archetype = "archer"
	ArchetypeThief   Archetype = "thief"
	ArchetypePriest  Archetype = "priest"
)

func (a Archetype) IsValid() bool {
	switch a {
	case ArchetypeWarrior, ArchetypeMage, ArchetypeArcher, ArchetypeThief, ArchetypePriest:
		return true
	default:
		return false
	}
}

// SlotType is a named equipment-bearing position; at most one item per slot.
type SlotType string

const (
	SlotWeapon     SlotType = "weapon"
	SlotHelmet     SlotType = "helmet"
	SlotChest      SlotType = "chest"
	SlotGloves     SlotType = "gloves"
	SlotBoots      SlotType = "boots"
	SlotAccessory1 SlotType = "accessory1"
	SlotAccessory2 SlotType = "accessory2"
)

func (s SlotType) IsValid() bool {
	switch s {
	case SlotWeapon, SlotHelmet, SlotChest, SlotGloves, SlotBoots, SlotAccessory1, SlotAccessory2:
		return true
	default:
		return false
	}
}

type TaskCategory string

const (
	TaskMain  TaskCategory = "main"
	TaskDaily TaskCategory = "daily"
	TaskSide  TaskCategory = "side"
)

func (c TaskCategory) IsValid() bool {
	switch c {
	case TaskMain, TaskDaily, TaskSide:
		return true
	default:
		return false
	}
}

// SkillKind buckets a skill by what it does in combat.
type SkillKind string

const (
	SkillAttack  SkillKind = "attack"
	SkillDefense SkillKind = "defense"
	SkillSupport SkillKind = "support"
	SkillSpecial SkillKind = "special"
)

func (k SkillKind) IsValid() bool {
	switch k {
	case SkillAttack, SkillDefense, SkillSupport, SkillSpecial:
		return true
	default:
		return false
	}
}

type SkillRarity string

const (
	RarityCommon    SkillRarity = "common"
	RarityUncommon  SkillRarity = "uncommon"
	RarityRare      SkillRarity = "rare"
	RarityEpic      SkillRarity = "epic"
	RarityLegendary SkillRarity = "legendary"
)

func (r SkillRarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// TaskStatus transitions forward through available → accepted → completed →
// rewarded; the daily reset is the only backward move.
type TaskStatus string

const (
	TaskAvailable TaskStatus = "available"
	TaskAccepted  TaskStatus = "accepted"
	TaskCompleted TaskStatus = "completed"
	TaskRewarded  TaskStatus = "rewarded"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskAvailable, TaskAccepted, TaskCompleted, TaskRewarded:
		return true
	default:
		return false
	}
}
