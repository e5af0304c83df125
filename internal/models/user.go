// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a member of the Pulse network.
type User struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio"`
	AvatarURL      string    `json:"avatar_url"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	JoinedDate     time.Time `json:"joined_date"`
}

// RecordID returns the user's unique identifier.
func (u User) RecordID() uint { return u.ID }

// WithID returns a copy of the user with the given identifier.
func (u User) WithID(id uint) User { u.ID = id; return u }

// Clone returns a detached copy of the user.
func (u User) Clone() User { return u }
