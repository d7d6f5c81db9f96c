package api

import (
	"time"

	"levelforge/internal/engine"
	"levelforge/internal/storage"
)

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// Read-only projections of the storage entities. Handlers never encode the
// entities themselves.

type userView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserView(u *storage.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email}
}

type characterView struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Class  string `json:"class_type"`

	Level int   `json:"level"`
	Exp   int64 `json:"exp"`

	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`

	HP      int `json:"hp"`
	MP      int `json:"mp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

func newCharacterView(c *storage.Character) characterView {
	return characterView{
		ID:           c.ID,
		UserID:       c.UserID,
		Name:         c.Name,
		Class:        c.Class,
		Level:        c.Level,
		Exp:          c.Exp,
		Strength:     c.Strength,
		Agility:      c.Agility,
		Intelligence: c.Intelligence,
		Vitality:     c.Vitality,
		HP:           c.HP,
		MP:           c.MP,
		Attack:       c.Attack,
		Defense:      c.Defense,
	}
}

type equipmentView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Level  int    `json:"level"`
	Rarity string `json:"rarity"`

	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`

	Durability int `json:"durability"`
	Price      int `json:"price"`
}

func newEquipmentView(e *storage.Equipment) equipmentView {
	return equipmentView{
		ID:           e.ID,
		Name:         e.Name,
		Type:         e.Type,
		Level:        e.Level,
		Rarity:       e.Rarity,
		Attack:       e.Attack,
		Defense:      e.Defense,
		Strength:     e.Strength,
		Agility:      e.Agility,
		Intelligence: e.Intelligence,
		Vitality:     e.Vitality,
		Durability:   e.Durability,
		Price:        e.Price,
	}
}

type slotView struct {
	ID          int64          `json:"id"`
	CharacterID int64          `json:"character_id"`
	EquipmentID int64          `json:"equipment_id"`
	SlotType    string         `json:"slot_type"`
	Equipment   *equipmentView `json:"equipment,omitempty"`
}

func newSlotView(s *storage.SlotWithEquipment) slotView {
	v := slotView{
		ID:          s.Slot.ID,
		CharacterID: s.Slot.CharacterID,
		EquipmentID: s.Slot.EquipmentID,
		SlotType:    s.Slot.SlotType,
	}
	if s.Equipment != nil {
		eq := newEquipmentView(s.Equipment)
		v.Equipment = &eq
	}
	return v
}

type taskView struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	RequiredLevel int    `json:"required_level"`
	ExpReward     int64  `json:"exp_reward"`
	GoldReward    int64  `json:"gold_reward"`
	ItemReward    string `json:"item_reward"`
	TargetCount   int    `json:"target_count"`
	ResetDaily    bool   `json:"reset_daily"`
}

func newTaskView(t *storage.Task) taskView {
	v := taskView{
		ID:            t.ID,
		Name:          t.Name,
		Type:          t.Type,
		RequiredLevel: t.RequiredLevel,
		ExpReward:     t.ExpReward,
		GoldReward:    t.GoldReward,
		TargetCount:   t.TargetCount,
		ResetDaily:    t.ResetDaily,
	}
	if t.Description != nil {
		v.Description = *t.Description
	}
	if t.ItemReward != nil {
		v.ItemReward = *t.ItemReward
	}
	return v
}

type characterTaskView struct {
	ID          int64    `json:"id"`
	CharacterID int64    `json:"character_id"`
	TaskID      int64    `json:"task_id"`
	Status      string   `json:"status"`
	Progress    int      `json:"progress"`
	AcceptedAt  *string  `json:"accepted_at"`
	CompletedAt *string  `json:"completed_at"`
	RewardedAt  *string  `json:"rewarded_at"`
	Task        taskView `json:"task"`
}

func newCharacterTaskView(v *engine.CharacterTaskView) characterTaskView {
	return characterTaskView{
		ID:          v.Record.ID,
		CharacterID: v.Record.CharacterID,
		TaskID:      v.Record.TaskID,
		Status:      v.Record.Status,
		Progress:    v.Record.Progress,
		AcceptedAt:  timeString(v.Record.AcceptedAt),
		CompletedAt: timeString(v.Record.CompletedAt),
		RewardedAt:  timeString(v.Record.RewardedAt),
		Task:        newTaskView(&v.Task),
	}
}

type skillView struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Type          string  `json:"type"`
	Rarity        string  `json:"rarity"`
	BaseDamage    float64 `json:"base_damage"`
	BaseDefense   float64 `json:"base_defense"`
	BaseHealing   float64 `json:"base_healing"`
	Cooldown      int     `json:"cooldown"`
	RequiredLevel int     `json:"required_level"`
	ManaCost      int     `json:"mana_cost"`
}

func newSkillView(sk *storage.Skill) skillView {
	v := skillView{
		ID:            sk.ID,
		Name:          sk.Name,
		Type:          sk.Type,
		Rarity:        sk.Rarity,
		BaseDamage:    sk.BaseDamage,
		BaseDefense:   sk.BaseDefense,
		BaseHealing:   sk.BaseHealing,
		Cooldown:      sk.Cooldown,
		RequiredLevel: sk.RequiredLevel,
		ManaCost:      sk.ManaCost,
	}
	if sk.Description != nil {
		v.Description = *sk.Description
	}
	return v
}

type characterSkillView struct {
	ID          int64     `json:"id"`
	CharacterID int64     `json:"character_id"`
	SkillID     int64     `json:"skill_id"`
	SkillLevel  int       `json:"skill_level"`
	Experience  int64     `json:"experience"`
	Skill       skillView `json:"skill"`
}

func newCharacterSkillView(v *engine.CharacterSkillView) characterSkillView {
	return characterSkillView{
		ID:          v.Record.ID,
		CharacterID: v.Record.CharacterID,
		SkillID:     v.Record.SkillID,
		SkillLevel:  v.Record.SkillLevel,
		Experience:  v.Record.Experience,
		Skill:       newSkillView(&v.Skill),
	}
}

type rankingEntryView struct {
	Rank          int    `json:"rank"`
	CharacterID   int64  `json:"character_id"`
	CharacterName string `json:"character_name"`
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
	Level         int    `json:"level"`
	Power         int    `json:"power"`
}

type rankingView struct {
	Ranking      []rankingEntryView `json:"ranking"`
	PersonalRank int                `json:"personal_rank"`
}

func newRankingView(rk *engine.Ranking) rankingView {
	entries := make([]rankingEntryView, 0, len(rk.Entries))
	for _, e := range rk.Entries {
		entries = append(entries, rankingEntryView{
			Rank:          e.Rank,
			CharacterID:   e.CharacterID,
			CharacterName: e.CharacterName,
			UserID:        e.UserID,
			Username:      e.Username,
			Level:         e.Level,
			Power:         e.Power,
		})
	}
	return rankingView{Ranking: entries, PersonalRank: rk.PersonalRank}
}
