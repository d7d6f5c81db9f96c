package api

import "net/http"

func (s *Server) handleLevelRanking(w http.ResponseWriter, r *http.Request) {
	rk, err := s.svc.LevelRanking(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRankingView(rk))
}

func (s *Server) handlePowerRanking(w http.ResponseWriter, r *http.Request) {
	rk, err := s.svc.PowerRanking(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRankingView(rk))
}
