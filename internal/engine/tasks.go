package engine

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"levelforge/internal/storage"
)

// dailyResetAfter is how long after a reward a daily task becomes available
// again.
const dailyResetAfter = 24 * time.Hour

type TaskInput struct {
	Name          string
	Description   string
	Category      TaskCategory
	RequiredLevel int
	ExpReward     int64
	GoldReward    int64
	ItemReward    string
	TargetCount   int
	ResetDaily    bool
}

// CreateTask adds a task definition to the catalog.
func (s *Service) CreateTask(ctx context.Context, in TaskInput) (*storage.Task, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("task name is required")
	}
	if !in.Category.IsValid() {
		return nil, validationf("unknown task category %q", string(in.Category))
	}
	if in.RequiredLevel < 1 {
		in.RequiredLevel = 1
	}
	if in.TargetCount < 1 {
		in.TargetCount = 1
	}

	var desc *string
	if d := strings.TrimSpace(in.Description); d != "" {
		desc = &d
	}
	var item *string
	if it := strings.TrimSpace(in.ItemReward); it != "" {
		item = &it
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Name:          strings.TrimSpace(in.Name),
		Description:   desc,
		Type:          string(in.Category),
		RequiredLevel: in.RequiredLevel,
		ExpReward:     in.ExpReward,
		GoldReward:    in.GoldReward,
		ItemReward:    item,
		TargetCount:   in.TargetCount,
		ResetDaily:    in.ResetDaily,
	})
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

func (s *Service) TaskCatalog(ctx context.Context) ([]storage.Task, error) {
	return s.tasks.ListAll(ctx)
}

// CharacterTaskView joins a task record with its catalog definition.
type CharacterTaskView struct {
	Record storage.CharacterTask
	Task   storage.Task
}

// CharacterTasks runs the daily reset, then lazy materialization, then
// returns the character's task records joined with their definitions.
func (s *Service) CharacterTasks(ctx context.Context, userID, characterID int64) ([]CharacterTaskView, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	c, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	if err := s.resetDailyTasks(ctx, characterID); err != nil {
		return nil, err
	}
	if err := s.materializeTasks(ctx, c); err != nil {
		return nil, err
	}

	records, err := s.charTasks.ListByCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	defs, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	defByID := make(map[int64]storage.Task, len(defs))
	for _, d := range defs {
		defByID[d.ID] = d
	}

	out := make([]CharacterTaskView, 0, len(records))
	for _, rec := range records {
		def, ok := defByID[rec.TaskID]
		if !ok {
			// Dangling definition; nothing sensible to show.
			continue
		}
		out = append(out, CharacterTaskView{Record: rec, Task: def})
	}
	return out, nil
}

// resetDailyTasks rewinds rewarded daily records whose reward is at least
// 24h old back to available. The only backward transition in the machine.
func (s *Service) resetDailyTasks(ctx context.Context, characterID int64) error {
	records, err := s.charTasks.ListRewardedDaily(ctx, characterID)
	if err != nil {
		return err
	}

	now := s.now()
	for i := range records {
		rec := records[i]
		if rec.RewardedAt == nil || now.Sub(*rec.RewardedAt) < dailyResetAfter {
			continue
		}
		rec.Status = string(TaskAvailable)
		rec.Progress = 0
		rec.AcceptedAt = nil
		rec.CompletedAt = nil
		rec.RewardedAt = nil
		if err := s.charTasks.Update(ctx, &rec); err != nil {
			return err
		}
	}
	return nil
}

// materializeTasks lazily creates an available record for every definition
// the character's level has unlocked. Exactly one record per (character,
// task) pair, ever.
func (s *Service) materializeTasks(ctx context.Context, c *storage.Character) error {
	defs, err := s.tasks.ListForLevel(ctx, c.Level)
	if err != nil {
		return err
	}
	for _, def := range defs {
		existing, err := s.charTasks.GetByCharacterAndTask(ctx, c.ID, def.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := s.charTasks.Insert(ctx, c.ID, def.ID, string(TaskAvailable)); err != nil {
			return err
		}
	}
	return nil
}

// AcceptTask moves an available record to accepted.
func (s *Service) AcceptTask(ctx context.Context, userID, characterID, taskID int64) (*CharacterTaskView, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	c, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	def, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, NotFoundError{Entity: "task", ID: taskID}
	}
	if c.Level < def.RequiredLevel {
		return nil, validationf("task requires level %d, character is level %d", def.RequiredLevel, c.Level)
	}

	rec, err := s.charTasks.GetByCharacterAndTask(ctx, characterID, taskID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, NotFoundError{Entity: "character task", ID: taskID}
	}
	if rec.Status != string(TaskAvailable) {
		return nil, validationf("task is %s, only available tasks can be accepted", rec.Status)
	}

	now := s.now()
	rec.Status = string(TaskAccepted)
	rec.AcceptedAt = &now
	if err := s.charTasks.Update(ctx, rec); err != nil {
		return nil, err
	}
	return &CharacterTaskView{Record: *rec, Task: *def}, nil
}

// UpdateTaskProgress sets the record's progress, clamped to [0, target].
// Reaching the target while accepted auto-completes the task. Lowering
// progress is allowed; it serves as a correction path.
func (s *Service) UpdateTaskProgress(ctx context.Context, userID, characterID, recordID int64, progress int) (*CharacterTaskView, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	if _, err := s.getOwnedCharacter(ctx, userID, characterID); err != nil {
		return nil, err
	}

	rec, err := s.charTasks.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.CharacterID != characterID {
		return nil, NotFoundError{Entity: "character task", ID: recordID}
	}
	if rec.Status != string(TaskAccepted) && rec.Status != string(TaskCompleted) {
		return nil, validationf("task is %s, progress only applies to accepted or completed tasks", rec.Status)
	}

	def, err := s.tasks.Get(ctx, rec.TaskID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, NotFoundError{Entity: "task", ID: rec.TaskID}
	}

	if progress < 0 {
		progress = 0
	}
	if progress > def.TargetCount {
		progress = def.TargetCount
	}
	rec.Progress = progress

	if rec.Progress >= def.TargetCount && rec.Status == string(TaskAccepted) {
		now := s.now()
		rec.Status = string(TaskCompleted)
		rec.CompletedAt = &now
	}

	if err := s.charTasks.Update(ctx, rec); err != nil {
		return nil, err
	}
	return &CharacterTaskView{Record: *rec, Task: *def}, nil
}

// CompleteTask explicitly completes an accepted task whose progress reached
// the target. Redundant with auto-completion; both paths are supported.
func (s *Service) CompleteTask(ctx context.Context, userID, characterID, taskID int64) (*CharacterTaskView, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	if _, err := s.getOwnedCharacter(ctx, userID, characterID); err != nil {
		return nil, err
	}

	rec, err := s.charTasks.GetByCharacterAndTask(ctx, characterID, taskID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, NotFoundError{Entity: "character task", ID: taskID}
	}
	if rec.Status != string(TaskAccepted) {
		return nil, validationf("task is %s, only accepted tasks can be completed", rec.Status)
	}

	def, err := s.tasks.Get(ctx, rec.TaskID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, NotFoundError{Entity: "task", ID: rec.TaskID}
	}
	if rec.Progress < def.TargetCount {
		return nil, validationf("task progress %d/%d is not enough to complete", rec.Progress, def.TargetCount)
	}

	now := s.now()
	rec.Status = string(TaskCompleted)
	rec.CompletedAt = &now
	if err := s.charTasks.Update(ctx, rec); err != nil {
		return nil, err
	}
	return &CharacterTaskView{Record: *rec, Task: *def}, nil
}

// ClaimTaskReward grants the definition's experience reward through the
// progression engine and marks the record rewarded. Gold and item rewards
// are stored on the definition but not yet granted.
func (s *Service) ClaimTaskReward(ctx context.Context, userID, characterID, taskID int64) (*CharacterTaskView, error) {
	unlock := s.locks.lock(characterID)
	defer unlock()

	c, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}

	rec, err := s.charTasks.GetByCharacterAndTask(ctx, characterID, taskID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, NotFoundError{Entity: "character task", ID: taskID}
	}
	if rec.Status != string(TaskCompleted) {
		return nil, validationf("task is %s, only completed tasks can be rewarded", rec.Status)
	}

	def, err := s.tasks.Get(ctx, rec.TaskID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, NotFoundError{Entity: "task", ID: rec.TaskID}
	}
	if def.ExpReward > MaxExpPerGrant {
		return nil, validationf("task reward %d exceeds the %d experience grant limit", def.ExpReward, MaxExpPerGrant)
	}

	if def.ExpReward > 0 {
		s.applyExperience(c, def.ExpReward)
	}
	now := s.now()
	rec.Status = string(TaskRewarded)
	rec.RewardedAt = &now

	// The exp grant and the status flip must land together: a banked grant
	// with a still-COMPLETED record would pass the status gate again on
	// retry and pay the reward twice.
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if def.ExpReward > 0 {
			if err := s.characters.UpdateTx(ctx, tx, c); err != nil {
				return err
			}
		}
		return s.charTasks.UpdateTx(ctx, tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return &CharacterTaskView{Record: *rec, Task: *def}, nil
}
