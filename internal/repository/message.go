package repository

import (
	"context"
	"sort"
	"time"

	"pulse/internal/models"
	"pulse/internal/store"
)

// ConversationRepository defines the interface for conversation data operations
type ConversationRepository interface {
	List(ctx context.Context) ([]models.Conversation, error)
	GetByID(ctx context.Context, id uint) (models.Conversation, error)
	Create(ctx context.Context, conv models.Conversation) (models.Conversation, error)
	Update(ctx context.Context, id uint, mutate func(*models.Conversation)) (models.Conversation, error)
}

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	GetByConversationID(ctx context.Context, conversationID uint) ([]models.Message, error)
	Create(ctx context.Context, msg models.Message) (models.Message, error)
}

type conversationRepository struct {
	conversations *store.Collection[models.Conversation]
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(conversations *store.Collection[models.Conversation]) ConversationRepository {
	return &conversationRepository{conversations: conversations}
}

// List returns every conversation, most recent activity first.
func (r *conversationRepository) List(ctx context.Context) ([]models.Conversation, error) {
	convs, err := r.conversations.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(convs, func(i, j int) bool {
		if convs[i].LastActivityAt.Equal(convs[j].LastActivityAt) {
			return convs[i].ID > convs[j].ID
		}
		return convs[i].LastActivityAt.After(convs[j].LastActivityAt)
	})
	return convs, nil
}

func (r *conversationRepository) GetByID(ctx context.Context, id uint) (models.Conversation, error) {
	conv, err := r.conversations.Get(ctx, id)
	if err != nil {
		return models.Conversation{}, translateNotFound(err, "Conversation", id)
	}
	return conv, nil
}

func (r *conversationRepository) Create(ctx context.Context, conv models.Conversation) (models.Conversation, error) {
	if conv.LastActivityAt.IsZero() {
		conv.LastActivityAt = time.Now().UTC()
	}
	return r.conversations.Insert(ctx, conv)
}

func (r *conversationRepository) Update(ctx context.Context, id uint, mutate func(*models.Conversation)) (models.Conversation, error) {
	conv, err := r.conversations.Update(ctx, id, mutate)
	if err != nil {
		return models.Conversation{}, translateNotFound(err, "Conversation", id)
	}
	return conv, nil
}

type messageRepository struct {
	messages *store.Collection[models.Message]
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(messages *store.Collection[models.Message]) MessageRepository {
	return &messageRepository{messages: messages}
}

// GetByConversationID returns the conversation's messages, oldest first.
func (r *messageRepository) GetByConversationID(ctx context.Context, conversationID uint) ([]models.Message, error) {
	msgs, err := r.messages.Find(ctx, func(m models.Message) bool {
		return m.ConversationID == conversationID
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (r *messageRepository) Create(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.CreatedAt = time.Now().UTC()
	return r.messages.Insert(ctx, msg)
}
