package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"levelforge/internal/auth"
	"levelforge/internal/engine"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeError maps engine and auth error kinds to HTTP statuses:
// not-found → 404, validation → 400, credential failures → 401.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case engine.IsNotFound(err):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	case engine.IsValidation(err):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		writeErrorMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUserExists), errors.Is(err, auth.ErrWeakPassword):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return engine.ValidationError{Msg: "invalid json body"}
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, engine.ValidationError{Msg: "invalid id in path"}
	}
	return id, nil
}
