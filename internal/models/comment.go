package models

import "time"

// Comment represents a comment on a post. Like posts, IsLiked is the demo
// viewer's like state rather than a per-viewer ledger.
type Comment struct {
	ID         uint      `json:"id"`
	PostID     uint      `json:"post_id"`
	UserID     uint      `json:"user_id"`
	Content    string    `json:"content"`
	LikesCount int       `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordID returns the comment's unique identifier.
func (c Comment) RecordID() uint { return c.ID }

// WithID returns a copy of the comment with the given identifier.
func (c Comment) WithID(id uint) Comment { c.ID = id; return c }

// Clone returns a detached copy of the comment.
func (c Comment) Clone() Comment { return c }
