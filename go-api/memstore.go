package main

import (
	"sort"
	"strings"
	"sync"
)

// memStore keeps everything in process memory. It backs the API when no
// DATABASE_URL is configured (local demos) and the test suite. Records go
// in and out by value so callers never alias the stored state.
type memStore struct {
	mu       sync.Mutex
	users    map[string]User    // by id
	profiles map[string]Profile // by owner user id
	posts    map[string]Post    // by id
	postIDs  []string           // insertion order, oldest first
	nextSeq  uint
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]User{},
		profiles: map[string]Profile{},
		posts:    map[string]Post{},
	}
}

func (s *memStore) CreateUser(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
	return nil
}

func (s *memStore) UserByEmail(email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrStoreNotFound
}

func (s *memStore) UserByID(id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrStoreNotFound
	}
	cp := u
	return &cp, nil
}

func (s *memStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

func (s *memStore) ProfileByUserID(userID string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrStoreNotFound
	}
	return copyProfile(p), nil
}

func (s *memStore) Profiles() ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *copyProfile(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) SaveProfile(p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		s.nextSeq++
		p.ID = s.nextSeq
	}
	s.profiles[p.UserID] = *copyProfile(*p)
	return nil
}

func (s *memStore) DeleteProfileByUserID(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

func (s *memStore) CreatePost(p *Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = *copyPost(*p)
	s.postIDs = append(s.postIDs, p.ID)
	return nil
}

func (s *memStore) Posts() ([]Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Post, 0, len(s.postIDs))
	// newest first
	for i := len(s.postIDs) - 1; i >= 0; i-- {
		if p, ok := s.posts[s.postIDs[i]]; ok {
			out = append(out, *copyPost(p))
		}
	}
	return out, nil
}

func (s *memStore) PostByID(id string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrStoreNotFound
	}
	return copyPost(p), nil
}

func (s *memStore) SavePost(p *Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = *copyPost(*p)
	return nil
}

func (s *memStore) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}

func (s *memStore) DeletePostsByUserID(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.posts {
		if p.UserID == userID {
			delete(s.posts, id)
		}
	}
	return nil
}

func (s *memStore) Close() error { return nil }

/* ---------- value copies ---------- */

func copyProfile(p Profile) *Profile {
	cp := p
	cp.Skills = append(cp.Skills[:0:0], p.Skills...)
	cp.Experience = append(cp.Experience[:0:0], p.Experience...)
	cp.Education = append(cp.Education[:0:0], p.Education...)
	return &cp
}

func copyPost(p Post) *Post {
	cp := p
	cp.Likes = append(cp.Likes[:0:0], p.Likes...)
	cp.Comments = append(cp.Comments[:0:0], p.Comments...)
	return &cp
}
