package models

import "time"

// User is an account profile. The ID is an opaque UUID string.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	SurfLevel SurfLevel `json:"surf_level"`
	Stance    string    `json:"stance,omitempty"`
	Location  string    `json:"location,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileUpdate carries the mutable profile fields; nil means "leave
// unchanged".
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	SurfLevel *string `json:"surf_level,omitempty"`
	Stance    *string `json:"stance,omitempty"`
	Location  *string `json:"location,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}
