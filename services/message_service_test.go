package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository/memory"
)

type messageFixture struct {
	svc   *MessageService
	users *memory.UserRepository
	notes *memory.NotificationRepository
}

func newMessageFixture() *messageFixture {
	users := memory.NewUserRepository()
	notes := memory.NewNotificationRepository()
	return &messageFixture{
		svc:   NewMessageService(memory.NewMessageRepository(), users, NewNotificationService(notes)),
		users: users,
		notes: notes,
	}
}

func (f *messageFixture) addUser(t *testing.T, username string) primitive.ObjectID {
	t.Helper()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     username + "@x.com",
		Password:  "hash",
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.users.Create(context.Background(), &u))
	return u.ID
}

func TestSend_Validation(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	ctx := context.Background()
	a := f.addUser(t, "alice")
	b := f.addUser(t, "bob")

	_, err := f.svc.Send(ctx, a, b, "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Send(ctx, a, a, "hi me")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.svc.Send(ctx, a, primitive.NewObjectID(), "hi")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// Messages sent in either direction share one conversation and come back in
// ascending creation-time order.
func TestConversation_DirectionIndependent(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	ctx := context.Background()
	a := f.addUser(t, "alice")
	b := f.addUser(t, "bob")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	f.svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	m1, err := f.svc.Send(ctx, a, b, "hi bob")
	require.NoError(t, err)
	m2, err := f.svc.Send(ctx, b, a, "hi alice")
	require.NoError(t, err)
	_, err = f.svc.Send(ctx, a, b, "how are you")
	require.NoError(t, err)

	assert.Equal(t, m1.ConversationID, m2.ConversationID)
	assert.Equal(t, models.NewConversationID(b, a), m1.ConversationID)

	fromA, err := f.svc.Conversation(ctx, a, b)
	require.NoError(t, err)
	fromB, err := f.svc.Conversation(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, fromA, fromB)

	require.Len(t, fromA, 3)
	assert.Equal(t, "hi bob", fromA[0].Content)
	assert.Equal(t, "hi alice", fromA[1].Content)
	assert.Equal(t, "how are you", fromA[2].Content)
}

func TestSend_NotifiesRecipient(t *testing.T) {
	t.Parallel()

	f := newMessageFixture()
	ctx := context.Background()
	a := f.addUser(t, "alice")
	b := f.addUser(t, "bob")

	_, err := f.svc.Send(ctx, a, b, "hi")
	require.NoError(t, err)

	got, err := f.notes.ByRecipient(ctx, b, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.NotificationMessage, got[0].Type)
}
