package engine

import (
	"context"
	"sort"
)

// rankingLimit caps the public leaderboard; the requester's own position is
// still computed against the full ordering.
const rankingLimit = 100

type RankingEntry struct {
	Rank          int
	CharacterID   int64
	CharacterName string
	UserID        int64
	Username      string
	Level         int
	Power         int
}

type Ranking struct {
	Entries []RankingEntry
	// PersonalRank is the requesting user's best character's position in the
	// full ordering; 0 when the user has no characters.
	PersonalRank int
}

// LevelRanking orders all characters by level, then power, both descending.
func (s *Service) LevelRanking(ctx context.Context, userID int64) (*Ranking, error) {
	return s.assembleRanking(ctx, userID, func(a, b RankingEntry) bool {
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.Power != b.Power {
			return a.Power > b.Power
		}
		return a.CharacterID < b.CharacterID
	})
}

// PowerRanking orders all characters by power descending.
func (s *Service) PowerRanking(ctx context.Context, userID int64) (*Ranking, error) {
	return s.assembleRanking(ctx, userID, func(a, b RankingEntry) bool {
		if a.Power != b.Power {
			return a.Power > b.Power
		}
		return a.CharacterID < b.CharacterID
	})
}

// assembleRanking is a read-only pass over the full character set: snapshot
// reads, no isolation beyond what the store provides. Character id is the
// final sort key so equal (level, power) pairs order deterministically.
func (s *Service) assembleRanking(ctx context.Context, userID int64, less func(a, b RankingEntry) bool) (*Ranking, error) {
	characters, err := s.characters.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	usernames, err := s.users.UsernamesByID(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(characters))
	for _, c := range characters {
		slots, err := s.slots.ListByCharacter(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, RankingEntry{
			CharacterID:   c.ID,
			CharacterName: c.Name,
			UserID:        c.UserID,
			Username:      usernames[c.UserID],
			Level:         c.Level,
			Power:         powerOf(c.Level, slots),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return less(entries[i], entries[j]) })

	personal := 0
	for i := range entries {
		entries[i].Rank = i + 1
		if personal == 0 && entries[i].UserID == userID {
			personal = i + 1
		}
	}

	board := entries
	if len(board) > rankingLimit {
		board = board[:rankingLimit]
	}
	return &Ranking{Entries: board, PersonalRank: personal}, nil
}
