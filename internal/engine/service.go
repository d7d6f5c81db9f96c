package engine

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"levelforge/internal/storage"
)

// Service owns the progression, equipment, task and ranking operations. All
// character mutations go through a per-character lock: the store gives
// row-level atomicity but no cross-request isolation, so concurrent grants,
// equips or daily resets on the same character must be serialized here.
type Service struct {
	db         *sql.DB
	users      *storage.UserRepo
	characters *storage.CharacterRepo
	equipment  *storage.EquipmentRepo
	slots      *storage.SlotRepo
	tasks      *storage.TaskRepo
	charTasks  *storage.CharacterTaskRepo
	skills     *storage.SkillRepo
	charSkills *storage.CharacterSkillRepo

	now   func() time.Time
	locks *charLocks
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:         db,
		users:      storage.NewUserRepo(db),
		characters: storage.NewCharacterRepo(db),
		equipment:  storage.NewEquipmentRepo(db),
		slots:      storage.NewSlotRepo(db),
		tasks:      storage.NewTaskRepo(db),
		charTasks:  storage.NewCharacterTaskRepo(db),
		skills:     storage.NewSkillRepo(db),
		charSkills: storage.NewCharacterSkillRepo(db),
		now:        func() time.Time { return time.Now().UTC() },
		locks:      newCharLocks(),
	}
}

func (s *Service) UserRepo() *storage.UserRepo           { return s.users }
func (s *Service) CharacterRepo() *storage.CharacterRepo { return s.characters }
func (s *Service) EquipmentRepo() *storage.EquipmentRepo { return s.equipment }
func (s *Service) TaskRepo() *storage.TaskRepo           { return s.tasks }
func (s *Service) SkillRepo() *storage.SkillRepo         { return s.skills }

// getOwnedCharacter resolves a character the user owns. Ownership mismatch
// is indistinguishable from absence on purpose.
func (s *Service) getOwnedCharacter(ctx context.Context, userID, characterID int64) (*storage.Character, error) {
	c, err := s.characters.GetOwned(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NotFoundError{Entity: "character", ID: characterID}
	}
	return c, nil
}

// charLocks hands out one mutex per character id.
type charLocks struct {
	mu sync.Mutex
	m  map[int64]*sync.Mutex
}

func newCharLocks() *charLocks {
	return &charLocks{m: map[int64]*sync.Mutex{}}
}

func (l *charLocks) lock(id int64) (unlock func()) {
	l.mu.Lock()
	cm, ok := l.m[id]
	if !ok {
		cm = &sync.Mutex{}
		l.m[id] = cm
	}
	l.mu.Unlock()

	cm.Lock()
	return cm.Unlock
}
