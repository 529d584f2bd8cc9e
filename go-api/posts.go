package main

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// postService owns the post lifecycle: create with denormalized author
// fields, unique-per-user likes, and embedded comments.
type postService struct {
	store Store
}

type PostInput struct {
	Text string `json:"text"`
}

func (s *postService) Create(callerID string, in PostInput) (*Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, ValidationErrors{{Msg: "Text is required", Param: "text"}}
	}
	u, err := s.store.UserByID(callerID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	p := &Post{
		ID:        uuid.NewString(),
		UserID:    callerID,
		Text:      in.Text,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreatePost(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *postService) List() ([]Post, error) {
	return s.store.Posts()
}

func (s *postService) ByID(id string) (*Post, error) {
	return s.load(id)
}

// Delete removes a post; only its author may do so.
func (s *postService) Delete(callerID, postID string) error {
	p, err := s.load(postID)
	if err != nil {
		return err
	}
	if p.UserID != callerID {
		return ErrNotAuthorized
	}
	return s.store.DeletePost(postID)
}

// Like records the caller's like; a second like from the same caller is
// rejected, not duplicated. Returns the updated likes sequence.
func (s *postService) Like(callerID, postID string) ([]Like, error) {
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	for _, l := range p.Likes {
		if l.UserID == callerID {
			return nil, ErrAlreadyLiked
		}
	}
	p.Likes = append([]Like{{UserID: callerID}}, p.Likes...)
	if err := s.store.SavePost(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like; unliking a post the caller never liked
// is rejected.
func (s *postService) Unlike(callerID, postID string) ([]Like, error) {
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range p.Likes {
		if p.Likes[i].UserID == callerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotLiked
	}
	p.Likes = append(p.Likes[:idx], p.Likes[idx+1:]...)
	if err := s.store.SavePost(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// AddComment head-inserts a comment with the caller's denormalized name
// and avatar. Returns the updated comments sequence.
func (s *postService) AddComment(callerID, postID string, in PostInput) ([]Comment, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, ValidationErrors{{Msg: "Text is required", Param: "text"}}
	}
	u, err := s.store.UserByID(callerID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	c := Comment{
		ID:     newID(),
		UserID: callerID,
		Text:   in.Text,
		Name:   u.Name,
		Avatar: u.Avatar,
		Date:   time.Now().UTC(),
	}
	p.Comments = append([]Comment{c}, p.Comments...)
	if err := s.store.SavePost(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// RemoveComment deletes a comment; only the comment's author may do so.
func (s *postService) RemoveComment(callerID, postID, commentID string) ([]Comment, error) {
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if p.Comments[idx].UserID != callerID {
		return nil, ErrNotAuthorized
	}
	p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)
	if err := s.store.SavePost(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// load fetches a post, mapping malformed ids and absent records to the
// same not-found outcome.
func (s *postService) load(postID string) (*Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, ErrPostNotFound
	}
	p, err := s.store.PostByID(postID)
	if errors.Is(err, ErrStoreNotFound) {
		return nil, ErrPostNotFound
	} else if err != nil {
		return nil, err
	}
	return p, nil
}
