package api

import (
	"net/http"

	"levelforge/internal/engine"
)

type createTaskRequest struct {
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

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	t, err := s.svc.CreateTask(r.Context(), engine.TaskInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      engine.TaskCategory(req.Type),
		RequiredLevel: req.RequiredLevel,
		ExpReward:     req.ExpReward,
		GoldReward:    req.GoldReward,
		ItemReward:    req.ItemReward,
		TargetCount:   req.TargetCount,
		ResetDaily:    req.ResetDaily,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newTaskView(t))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.svc.TaskCatalog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]taskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, newTaskView(&tasks[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleCharacterTasks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	tasks, err := s.svc.CharacterTasks(r.Context(), userIDFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]characterTaskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, newCharacterTaskView(&tasks[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

type taskActionRequest struct {
	TaskID int64 `json:"task_id"`
}

func (s *Server) handleAcceptTask(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req taskActionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.svc.AcceptTask(r.Context(), userIDFrom(r), characterID, req.TaskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCharacterTaskView(view))
}

type taskProgressRequest struct {
	RecordID int64 `json:"record_id"`
	Progress int   `json:"progress"`
}

func (s *Server) handleTaskProgress(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req taskProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.svc.UpdateTaskProgress(r.Context(), userIDFrom(r), characterID, req.RecordID, req.Progress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCharacterTaskView(view))
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req taskActionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.svc.CompleteTask(r.Context(), userIDFrom(r), characterID, req.TaskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCharacterTaskView(view))
}

func (s *Server) handleClaimReward(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req taskActionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	view, err := s.svc.ClaimTaskReward(r.Context(), userIDFrom(r), characterID, req.TaskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCharacterTaskView(view))
}
