package main

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStoreNotFound is the store-level sentinel for an absent record.
// Services translate it into the entity-specific not-found error.
var ErrStoreNotFound = errors.New("record not found")

// Store is the durable collection access used by the services. Both the
// Postgres-backed store and the in-memory fallback implement it; the handle
// is constructed in main and passed down, never held in package state.
type Store interface {
	// users
	CreateUser(u *User) error
	UserByEmail(email string) (*User, error)
	UserByID(id string) (*User, error)
	DeleteUser(id string) error

	// profiles
	ProfileByUserID(userID string) (*Profile, error)
	Profiles() ([]Profile, error)
	SaveProfile(p *Profile) error
	DeleteProfileByUserID(userID string) error

	// posts
	CreatePost(p *Post) error
	Posts() ([]Post, error)
	PostByID(id string) (*Post, error)
	SavePost(p *Post) error
	DeletePost(id string) error
	DeletePostsByUserID(userID string) error

	Close() error
}

/* ---------- gorm implementation ---------- */

type gormStore struct {
	db *gorm.DB
}

func newGormStore(db *gorm.DB) *gormStore {
	return &gormStore{db: db}
}

func (s *gormStore) CreateUser(u *User) error {
	return s.db.Create(u).Error
}

func (s *gormStore) UserByEmail(email string) (*User, error) {
	var u User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &u, nil
}

func (s *gormStore) UserByID(id string) (*User, error) {
	var u User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &u, nil
}

func (s *gormStore) DeleteUser(id string) error {
	return s.db.Where("id = ?", id).Delete(&User{}).Error
}

func (s *gormStore) ProfileByUserID(userID string) (*Profile, error) {
	var p Profile
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &p, nil
}

func (s *gormStore) Profiles() ([]Profile, error) {
	var out []Profile
	if err := s.db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore) SaveProfile(p *Profile) error {
	return s.db.Save(p).Error
}

func (s *gormStore) DeleteProfileByUserID(userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&Profile{}).Error
}

func (s *gormStore) CreatePost(p *Post) error {
	return s.db.Create(p).Error
}

func (s *gormStore) Posts() ([]Post, error) {
	var out []Post
	if err := s.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore) PostByID(id string) (*Post, error) {
	var p Post
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &p, nil
}

func (s *gormStore) SavePost(p *Post) error {
	return s.db.Save(p).Error
}

func (s *gormStore) DeletePost(id string) error {
	return s.db.Where("id = ?", id).Delete(&Post{}).Error
}

func (s *gormStore) DeletePostsByUserID(userID string) error {
	return s.db.Where("user_id = ?", userID).Delete(&Post{}).Error
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func mapGormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrStoreNotFound
	}
	return err
}
