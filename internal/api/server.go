package api

import (
	"net/http"

	"levelforge/internal/auth"
	"levelforge/internal/engine"
)

// Server wires the engine and auth services to the HTTP surface.
type Server struct {
	svc  *engine.Service
	auth *auth.Service
}

func NewServer(svc *engine.Service, authSvc *auth.Service) *Server {
	return &Server{svc: svc, auth: authSvc}
}

// Handler builds the route table. Everything under /api except register and
// login requires a bearer token.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /api/user/register", s.handleRegister)
	mux.HandleFunc("POST /api/user/login", s.handleLogin)
	mux.Handle("GET /api/user/info", s.requireAuth(s.handleUserInfo))

	mux.Handle("GET /api/characters", s.requireAuth(s.handleListCharacters))
	mux.Handle("POST /api/characters", s.requireAuth(s.handleCreateCharacter))
	mux.Handle("GET /api/characters/{id}", s.requireAuth(s.handleGetCharacter))
	mux.Handle("PUT /api/characters/{id}", s.requireAuth(s.handleRenameCharacter))
	mux.Handle("DELETE /api/characters/{id}", s.requireAuth(s.handleDeleteCharacter))

	mux.Handle("GET /api/level/{id}", s.requireAuth(s.handleLevelInfo))
	mux.Handle("POST /api/level/gain-exp", s.requireAuth(s.handleGainExp))

	mux.Handle("GET /api/equipment", s.requireAuth(s.handleListEquipment))
	mux.Handle("POST /api/equipment", s.requireAuth(s.handleCreateEquipment))
	mux.Handle("GET /api/equipment/{id}", s.requireAuth(s.handleGetEquipment))
	mux.Handle("POST /api/equipment/equip", s.requireAuth(s.handleEquip))
	mux.Handle("DELETE /api/equipment/slots/{id}", s.requireAuth(s.handleUnequip))
	mux.Handle("GET /api/characters/{id}/equipment", s.requireAuth(s.handleCharacterEquipment))

	mux.Handle("GET /api/tasks", s.requireAuth(s.handleListTasks))
	mux.Handle("POST /api/tasks", s.requireAuth(s.handleCreateTask))
	mux.Handle("GET /api/characters/{id}/tasks", s.requireAuth(s.handleCharacterTasks))
	mux.Handle("POST /api/characters/{id}/tasks/accept", s.requireAuth(s.handleAcceptTask))
	mux.Handle("POST /api/characters/{id}/tasks/progress", s.requireAuth(s.handleTaskProgress))
	mux.Handle("POST /api/characters/{id}/tasks/complete", s.requireAuth(s.handleCompleteTask))
	mux.Handle("POST /api/characters/{id}/tasks/reward", s.requireAuth(s.handleClaimReward))

	mux.Handle("GET /api/skills", s.requireAuth(s.handleListSkills))
	mux.Handle("POST /api/skills", s.requireAuth(s.handleCreateSkill))
	mux.Handle("GET /api/characters/{id}/skills", s.requireAuth(s.handleCharacterSkills))
	mux.Handle("POST /api/characters/{id}/skills/learn", s.requireAuth(s.handleLearnSkill))
	mux.Handle("POST /api/characters/{id}/skills/upgrade", s.requireAuth(s.handleUpgradeSkill))

	mux.Handle("GET /api/ranking/level", s.requireAuth(s.handleLevelRanking))
	mux.Handle("GET /api/ranking/power", s.requireAuth(s.handlePowerRanking))

	return withRequestID(withAccessLog(mux))
}
