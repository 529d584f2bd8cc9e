package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// authHeader carries the token; the client sends it on every
// authenticated request.
const authHeader = "x-auth-token"

type ctxKeyUserID struct{}

// callerID returns the verified user id placed in the context by
// requireAuth. Empty means the route skipped the middleware.
func callerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKeyUserID{}).(string)
	return id
}

// requireAuth verifies the bearer token and short-circuits the pipeline on
// failure; downstream handlers only ever run with a verified identity in
// the request context.
func (s *apiServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(authHeader))
		if token == "" {
			errorJSON(w, http.StatusUnauthorized, "no token, authorization denied")
			return
		}
		claims, err := parseToken([]byte(s.cfg.JWTSecret), token)
		if err != nil || claims.UserID == "" {
			errorJSON(w, http.StatusUnauthorized, "token is not valid")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyUserID{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

/* ---------- DTOs ---------- */

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/* ---------- Handlers ---------- */

// POST /api/users
func (s *apiServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	var errs ValidationErrors
	if in.Name == "" {
		errs = append(errs, FieldError{Msg: "Name is required", Param: "name"})
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, FieldError{Msg: "Please include a valid email", Param: "email"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, FieldError{Msg: "Please enter a password with 6 or more characters", Param: "password"})
	}
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	if _, err := s.store.UserByEmail(in.Email); err == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"errors": ValidationErrors{{Msg: "User already exists", Param: "email"}},
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		serviceError(w, err)
		return
	}
	u := User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Avatar:       gravatarURL(in.Email),
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(&u); err != nil {
		serviceError(w, err)
		return
	}

	tok, err := signToken([]byte(s.cfg.JWTSecret), u.ID, s.cfg.TokenTTL)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

// POST /api/auth
func (s *apiServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	u, err := s.store.UserByEmail(in.Email)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		errorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	tok, err := signToken([]byte(s.cfg.JWTSecret), u.ID, s.cfg.TokenTTL)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

// GET /api/auth
func (s *apiServer) handleMe(w http.ResponseWriter, r *http.Request) {
	u, err := s.store.UserByID(callerID(r))
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, toDTO(*u))
}

/* ---------- utils ---------- */

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
