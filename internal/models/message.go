package models

import "time"

// Conversation represents a direct-message thread between the demo viewer
// and another user. Unread is viewer-relative, consistent with Post.IsLiked.
type Conversation struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	LastMessage    string    `json:"last_message"`
	Unread         bool      `json:"unread"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// RecordID returns the conversation's unique identifier.
func (c Conversation) RecordID() uint { return c.ID }

// WithID returns a copy of the conversation with the given identifier.
func (c Conversation) WithID(id uint) Conversation { c.ID = id; return c }

// Clone returns a detached copy of the conversation.
func (c Conversation) Clone() Conversation { return c }

// Message represents a single message inside a conversation.
type Message struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordID returns the message's unique identifier.
func (m Message) RecordID() uint { return m.ID }

// WithID returns a copy of the message with the given identifier.
func (m Message) WithID(id uint) Message { m.ID = id; return m }

// Clone returns a detached copy of the message.
func (m Message) Clone() Message { return m }
