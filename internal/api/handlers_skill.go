package api

import (
	"net/http"

	"levelforge/internal/engine"
)

type createSkillRequest struct {
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

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var req createSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sk, err := s.svc.CreateSkill(r.Context(), engine.SkillInput{
		Name:          req.Name,
		Description:   req.Description,
		Kind:          engine.SkillKind(req.Type),
		Rarity:        engine.SkillRarity(req.Rarity),
		BaseDamage:    req.BaseDamage,
		BaseDefense:   req.BaseDefense,
		BaseHealing:   req.BaseHealing,
		Cooldown:      req.Cooldown,
		RequiredLevel: req.RequiredLevel,
		ManaCost:      req.ManaCost,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSkillView(sk))
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.svc.SkillCatalog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]skillView, 0, len(skills))
	for i := range skills {
		views = append(views, newSkillView(&skills[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCharacterSkills(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	skills, err := s.svc.CharacterSkills(r.Context(), userIDFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]characterSkillView, 0, len(skills))
	for i := range skills {
		views = append(views, newCharacterSkillView(&skills[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

type learnSkillRequest struct {
	SkillID int64 `json:"skill_id"`
}

func (s *Server) handleLearnSkill(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req learnSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.svc.LearnSkill(r.Context(), userIDFrom(r), characterID, req.SkillID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCharacterSkillView(view))
}

type upgradeSkillRequest struct {
	RecordID int64 `json:"record_id"`
}

func (s *Server) handleUpgradeSkill(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req upgradeSkillRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.svc.UpgradeSkill(r.Context(), userIDFrom(r), characterID, req.RecordID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCharacterSkillView(view))
}
