// Package models contains data structures for the application's domain models.
package models

import (
	"slices"
	"time"
)

// Post represents a post in the Pulse feed.
//
// IsLiked is a single viewer-shared flag, not a per-viewer ledger: the
// application serves one demo viewer and the flag models that viewer's
// like state.
type Post struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Content       string    `json:"content"`
	ImageURLs     []string  `json:"image_urls,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	IsLiked       bool      `json:"is_liked"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordID returns the post's unique identifier.
func (p Post) RecordID() uint { return p.ID }

// WithID returns a copy of the post with the given identifier.
func (p Post) WithID(id uint) Post { p.ID = id; return p }

// Clone returns a detached copy of the post, including its image list.
func (p Post) Clone() Post {
	p.ImageURLs = slices.Clone(p.ImageURLs)
	return p
}
