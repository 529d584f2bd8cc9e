package main

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// User is the persisted auth user record.
// Handlers convert this to a lightweight DTO for the client.
type User struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:320;not null" json:"email"`
	Avatar       string    `gorm:"type:text" json:"avatar"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

// Social holds the optional profile links. Stored as prefixed columns,
// rendered as a nested object.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Experience is an embedded sub-record of Profile. The ID is generated at
// insert time and is the handle for later deletion. Dates stay as the
// strings the client supplied.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education is an embedded sub-record of Profile, same lifecycle as Experience.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy,omitempty"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// Profile is one-to-one with User (unique user_id). Experience and
// education are ordered jsonb sequences, newest entry first.
type Profile struct {
	ID             uint                            `gorm:"primaryKey" json:"-"`
	UserID         string                          `gorm:"uniqueIndex;type:text;not null" json:"user_id"`
	Company        string                          `gorm:"type:text" json:"company,omitempty"`
	Website        string                          `gorm:"type:text" json:"website,omitempty"`
	Location       string                          `gorm:"type:text" json:"location,omitempty"`
	Status         string                          `gorm:"type:text;not null" json:"status"`
	Bio            string                          `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string                          `gorm:"type:text" json:"githubusername,omitempty"`
	Skills         pq.StringArray                  `gorm:"type:text[]" json:"skills"`
	Social         Social                          `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     datatypes.JSONSlice[Experience] `gorm:"type:jsonb" json:"experience"`
	Education      datatypes.JSONSlice[Education]  `gorm:"type:jsonb" json:"education"`
	CreatedAt      time.Time                       `json:"-"`
	UpdatedAt      time.Time                       `json:"-"`
}

func (Profile) TableName() string { return "profiles" }

// Like marks one user's like on a post; at most one per user per post.
type Like struct {
	UserID string `json:"user"`
}

// Comment is an embedded sub-record of Post. Name and avatar are
// denormalized from the author at creation time.
type Comment struct {
	ID     string    `json:"id"`
	UserID string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// Post is an independent entity. Likes and comments are ordered jsonb
// sequences, newest first.
type Post struct {
	ID        string                       `gorm:"primaryKey;type:text" json:"id"`
	UserID    string                       `gorm:"index;type:text;not null" json:"user"`
	Text      string                       `gorm:"type:text;not null" json:"text"`
	Name      string                       `gorm:"type:text" json:"name"`
	Avatar    string                       `gorm:"type:text" json:"avatar"`
	Likes     datatypes.JSONSlice[Like]    `gorm:"type:jsonb" json:"likes"`
	Comments  datatypes.JSONSlice[Comment] `gorm:"type:jsonb" json:"comments"`
	CreatedAt time.Time                    `json:"date"`
	UpdatedAt time.Time                    `json:"-"`
}

func (Post) TableName() string { return "posts" }

/* ---------- Public DTOs ---------- */

type userDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func toDTO(u User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

// profileUser is the denormalized author block attached to profile responses.
type profileUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ProfileDTO is a Profile enriched with the owning user's name and avatar.
type ProfileDTO struct {
	Profile
	User profileUser `json:"user"`
}
