package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/store"
)

type messageFixture struct {
	store         *store.Store
	conversations repository.ConversationRepository
	service       *MessageService
}

func newMessageFixture(conversations []models.Conversation, messages []models.Message) *messageFixture {
	st := store.New(0)
	st.Conversations.Seed(conversations)
	st.Messages.Seed(messages)

	convRepo := repository.NewConversationRepository(st.Conversations)
	return &messageFixture{
		store:         st,
		conversations: convRepo,
		service:       NewMessageService(convRepo, repository.NewMessageRepository(st.Messages)),
	}
}

func TestListConversationsMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newMessageFixture([]models.Conversation{
		{ID: 1, UserID: 2, LastActivityAt: base},
		{ID: 2, UserID: 3, LastActivityAt: base.Add(time.Hour)},
	}, nil)

	convs, err := f.service.ListConversations(context.Background())
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, uint(2), convs[0].ID)
}

func TestListMessagesClearsUnread(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newMessageFixture(
		[]models.Conversation{{ID: 1, UserID: 2, Unread: true, LastActivityAt: base}},
		[]models.Message{
			{ID: 1, ConversationID: 1, SenderID: 2, Content: "hey", CreatedAt: base},
			{ID: 2, ConversationID: 1, SenderID: 1, Content: "hi", CreatedAt: base.Add(time.Minute)},
		},
	)
	ctx := context.Background()

	msgs, err := f.service.ListMessages(ctx, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, uint(1), msgs[0].ID)

	conv, err := f.conversations.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, conv.Unread)
}

func TestSendMessageUpdatesConversation(t *testing.T) {
	f := newMessageFixture([]models.Conversation{{ID: 1, UserID: 2}}, nil)
	ctx := context.Background()

	msg, err := f.service.SendMessage(ctx, SendMessageInput{
		ConversationID: 1,
		SenderID:       1,
		Content:        "  hello there  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello there", msg.Content)

	conv, err := f.conversations.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "hello there", conv.LastMessage)
	assert.False(t, conv.LastActivityAt.IsZero())
	// The viewer sent the latest message, nothing unread for them.
	assert.False(t, conv.Unread)

	// A message from the other participant flips the unread marker.
	_, err = f.service.SendMessage(ctx, SendMessageInput{
		ConversationID: 1,
		SenderID:       2,
		Content:        "hi!",
	})
	require.NoError(t, err)

	conv, err = f.conversations.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, conv.Unread)
}

func TestSendMessageValidation(t *testing.T) {
	f := newMessageFixture([]models.Conversation{{ID: 1, UserID: 2}}, nil)
	ctx := context.Background()

	_, err := f.service.SendMessage(ctx, SendMessageInput{ConversationID: 1, SenderID: 1, Content: " "})
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)

	_, err = f.service.SendMessage(ctx, SendMessageInput{ConversationID: 9, SenderID: 1, Content: "hi"})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
