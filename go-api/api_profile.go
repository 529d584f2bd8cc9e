package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

/* ---------- Routes: /api/profile ---------- */

// GET /api/profile/me
func (s *apiServer) handleProfileMe(w http.ResponseWriter, r *http.Request) {
	dto, err := s.profiles.GetOwn(callerID(r))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// POST /api/profile
func (s *apiServer) handleProfileUpsert(w http.ResponseWriter, r *http.Request) {
	var in ProfileInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	dto, err := s.profiles.Upsert(callerID(r), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// GET /api/profile
func (s *apiServer) handleProfileList(w http.ResponseWriter, r *http.Request) {
	out, err := s.profiles.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/profile/user/{userID}
func (s *apiServer) handleProfileByUser(w http.ResponseWriter, r *http.Request) {
	dto, err := s.profiles.ByUserID(chi.URLParam(r, "userID"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// DELETE /api/profile
func (s *apiServer) handleAccountDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.DeleteAccount(callerID(r)); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "user deleted"})
}

// PUT /api/profile/experience
func (s *apiServer) handleExperienceAdd(w http.ResponseWriter, r *http.Request) {
	var in ExperienceInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	dto, err := s.profiles.AddExperience(callerID(r), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// DELETE /api/profile/experience/{id}
func (s *apiServer) handleExperienceRemove(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.RemoveExperience(callerID(r), chi.URLParam(r, "id")); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "experience deleted"})
}

// PUT /api/profile/education
func (s *apiServer) handleEducationAdd(w http.ResponseWriter, r *http.Request) {
	var in EducationInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	dto, err := s.profiles.AddEducation(callerID(r), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// DELETE /api/profile/education/{id}
func (s *apiServer) handleEducationRemove(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.RemoveEducation(callerID(r), chi.URLParam(r, "id")); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "education deleted"})
}
