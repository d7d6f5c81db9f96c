package api

import (
	"net/http"

	"levelforge/internal/engine"
)

type levelInfoResponse struct {
	CharacterID  int64  `json:"character_id"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
	Exp          int64  `json:"exp"`
	NextLevelExp int64  `json:"next_level_exp"`
	Power        int    `json:"power"`
}

func (s *Server) handleLevelInfo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := s.svc.GetCharacter(r.Context(), userIDFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	power, err := s.svc.CharacterPower(r.Context(), c.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, levelInfoResponse{
		CharacterID:  c.ID,
		Name:         c.Name,
		Level:        c.Level,
		Exp:          c.Exp,
		NextLevelExp: engine.ExpRequired(c.Level),
		Power:        power,
	})
}

type gainExpRequest struct {
	CharacterID int64 `json:"character_id"`
	Exp         int64 `json:"exp"`
}

type gainExpResponse struct {
	CharacterID  int64  `json:"character_id"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
	Exp          int64  `json:"exp"`
	NextLevelExp int64  `json:"next_level_exp"`
	LevelUp      bool   `json:"level_up"`
	LevelsGained int    `json:"levels_gained"`
}

func (s *Server) handleGainExp(w http.ResponseWriter, r *http.Request) {
	var req gainExpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.svc.GrantExperience(r.Context(), userIDFrom(r), req.CharacterID, req.Exp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gainExpResponse{
		CharacterID:  res.CharacterID,
		Name:         res.Name,
		Level:        res.Level,
		Exp:          res.Exp,
		NextLevelExp: res.NextLevelExp,
		LevelUp:      res.LevelUp,
		LevelsGained: res.LevelsGained,
	})
}
