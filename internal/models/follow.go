package models

import "time"

// Follow represents a directed follow edge from one user to another.
// The (FollowerID, FollowingID) pair is unique and self-edges are rejected.
type Follow struct {
	ID          uint      `json:"id"`
	FollowerID  uint      `json:"follower_id"`
	FollowingID uint      `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordID returns the edge's unique identifier.
func (f Follow) RecordID() uint { return f.ID }

// WithID returns a copy of the edge with the given identifier.
func (f Follow) WithID(id uint) Follow { f.ID = id; return f }

// Clone returns a detached copy of the edge.
func (f Follow) Clone() Follow { return f }
