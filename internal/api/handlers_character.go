package api

import (
	"net/http"

	"levelforge/internal/engine"
)

type createCharacterRequest struct {
	Name  string `json:"name"`
	Class string `json:"class_type"`
}

func (s *Server) handleCreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := s.svc.CreateCharacter(r.Context(), userIDFrom(r), engine.CharacterInput{
		Name:  req.Name,
		Class: engine.Archetype(req.Class),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCharacterView(c))
}

func (s *Server) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := s.svc.Characters(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]characterView, 0, len(characters))
	for i := range characters {
		views = append(views, newCharacterView(&characters[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, newCharacterView(c))
}

type renameCharacterRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleRenameCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req renameCharacterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := s.svc.RenameCharacter(r.Context(), userIDFrom(r), id, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCharacterView(c))
}

func (s *Server) handleDeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.svc.DeleteCharacter(r.Context(), userIDFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
