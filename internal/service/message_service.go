package service

import (
	"context"
	"strings"
	"time"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// MessageService manages direct-message conversations.
type MessageService struct {
	conversations repository.ConversationRepository
	messages      repository.MessageRepository
}

// SendMessageInput carries the fields for a new message.
type SendMessageInput struct {
	ConversationID uint
	SenderID       uint
	Content        string
}

// NewMessageService creates a new message service
func NewMessageService(
	conversations repository.ConversationRepository,
	messages repository.MessageRepository,
) *MessageService {
	return &MessageService{conversations: conversations, messages: messages}
}

// ListConversations returns every conversation, most recent activity first.
func (s *MessageService) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	return s.conversations.List(ctx)
}

// ListMessages returns the conversation's messages, oldest first. The
// conversation must exist. Reading a conversation clears its unread flag.
func (s *MessageService) ListMessages(ctx context.Context, conversationID uint) ([]models.Message, error) {
	conv, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.Unread {
		if _, err := s.conversations.Update(ctx, conversationID, func(c *models.Conversation) {
			c.Unread = false
		}); err != nil {
			return nil, err
		}
	}
	return s.messages.GetByConversationID(ctx, conversationID)
}

// SendMessage validates and stores a new message, updating the
// conversation's preview, activity timestamp, and unread flag. The unread
// flag is viewer-relative: it is set when the other participant sent the
// latest message.
func (s *MessageService) SendMessage(ctx context.Context, in SendMessageInput) (models.Message, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return models.Message{}, models.NewValidationError("Message content is required")
	}

	conv, err := s.conversations.GetByID(ctx, in.ConversationID)
	if err != nil {
		return models.Message{}, err
	}

	msg, err := s.messages.Create(ctx, models.Message{
		ConversationID: in.ConversationID,
		SenderID:       in.SenderID,
		Content:        content,
	})
	if err != nil {
		return models.Message{}, err
	}

	if _, err := s.conversations.Update(ctx, conv.ID, func(c *models.Conversation) {
		c.LastMessage = content
		c.LastActivityAt = time.Now().UTC()
		c.Unread = in.SenderID == c.UserID
	}); err != nil {
		return models.Message{}, err
	}

	return msg, nil
}
