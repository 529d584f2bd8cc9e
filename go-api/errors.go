package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

/* ---------- Service error taxonomy ---------- */

var (
	ErrProfileNotFound = errors.New("profile does not exist")
	ErrPostNotFound    = errors.New("post not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrCommentNotFound = errors.New("comment does not exist")

	// ErrNotAuthorized is an ownership violation on an existing record.
	ErrNotAuthorized = errors.New("user not authorized")

	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post has not yet been liked")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}

// FieldError is one validation violation, in the wire shape the client
// already understands: {"msg": ..., "param": ...}.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// ValidationErrors carries the full list of violations, not just the first.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return "validation failed: " + v[0].Msg
}

/* ---------- JSON response helpers ---------- */

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// serviceError maps a service failure to a status code. Unknown errors are
// logged with detail server-side and surfaced as a generic 500.
func serviceError(w http.ResponseWriter, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
	case isNotFound(err):
		errorJSON(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotAuthorized):
		errorJSON(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAlreadyLiked), errors.Is(err, ErrNotLiked):
		errorJSON(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[api] server error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "server error")
	}
}
