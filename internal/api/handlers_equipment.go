package api

import (
	"net/http"

	"levelforge/internal/engine"
)

type createEquipmentRequest struct {
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

func (s *Server) handleCreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	e, err := s.svc.CreateEquipment(r.Context(), engine.EquipmentInput{
		Name:         req.Name,
		Type:         req.Type,
		Level:        req.Level,
		Rarity:       req.Rarity,
		Attack:       req.Attack,
		Defense:      req.Defense,
		Strength:     req.Strength,
		Agility:      req.Agility,
		Intelligence: req.Intelligence,
		Vitality:     req.Vitality,
		Durability:   req.Durability,
		Price:        req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newEquipmentView(e))
}

func (s *Server) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.EquipmentCatalog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]equipmentView, 0, len(items))
	for i := range items {
		views = append(views, newEquipmentView(&items[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	e, err := s.svc.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newEquipmentView(e))
}

type equipRequest struct {
	CharacterID int64  `json:"character_id"`
	EquipmentID int64  `json:"equipment_id"`
	SlotType    string `json:"slot_type"`
}

func (s *Server) handleEquip(w http.ResponseWriter, r *http.Request) {
	var req equipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	slot, err := s.svc.Equip(r.Context(), userIDFrom(r), req.CharacterID, req.EquipmentID, engine.SlotType(req.SlotType))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSlotView(slot))
}

func (s *Server) handleUnequip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.svc.Unequip(r.Context(), userIDFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCharacterEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	slots, err := s.svc.CharacterEquipment(r.Context(), userIDFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]slotView, 0, len(slots))
	for i := range slots {
		views = append(views, newSlotView(&slots[i]))
	}
	writeJSON(w, http.StatusOK, views)
}
