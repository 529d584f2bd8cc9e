package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

/* ---------- Routes: /api/posts ---------- */

// POST /api/posts
func (s *apiServer) handlePostCreate(w http.ResponseWriter, r *http.Request) {
	var in PostInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := s.posts.Create(callerID(r), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GET /api/posts
func (s *apiServer) handlePostList(w http.ResponseWriter, r *http.Request) {
	out, err := s.posts.List()
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/posts/{id}
func (s *apiServer) handlePostGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.posts.ByID(chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DELETE /api/posts/{id}
func (s *apiServer) handlePostDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Delete(callerID(r), chi.URLParam(r, "id")); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "post removed"})
}

// PUT /api/posts/like/{id}
func (s *apiServer) handlePostLike(w http.ResponseWriter, r *http.Request) {
	likes, err := s.posts.Like(callerID(r), chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

// PUT /api/posts/unlike/{id}
func (s *apiServer) handlePostUnlike(w http.ResponseWriter, r *http.Request) {
	likes, err := s.posts.Unlike(callerID(r), chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, likes)
}

// POST /api/posts/comment/{id}
func (s *apiServer) handleCommentAdd(w http.ResponseWriter, r *http.Request) {
	var in PostInput
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	comments, err := s.posts.AddComment(callerID(r), chi.URLParam(r, "id"), in)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// DELETE /api/posts/comment/{id}/{commentID}
func (s *apiServer) handleCommentRemove(w http.ResponseWriter, r *http.Request) {
	comments, err := s.posts.RemoveComment(callerID(r), chi.URLParam(r, "id"), chi.URLParam(r, "commentID"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}
