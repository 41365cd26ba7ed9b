package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository"
)

// MessageService appends to and reads the two-party message log. Every
// message is stamped with the canonical conversation id at send time, and
// retrieval goes through that id alone.
type MessageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	notifier *NotificationService
	now      func() time.Time
}

func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, notifier *NotificationService) *MessageService {
	return &MessageService{messages: messages, users: users, notifier: notifier, now: time.Now}
}

// Send appends a message from sender to recipient.
func (s *MessageService) Send(ctx context.Context, sender, recipient primitive.ObjectID, content string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, apperrors.Validationf("content is required")
	}
	if sender == recipient {
		return models.Message{}, apperrors.Validationf("cannot message yourself")
	}
	if _, err := s.users.GetByID(ctx, recipient); err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		ID:             primitive.NewObjectID(),
		Sender:         sender,
		Recipient:      recipient,
		Content:        content,
		ConversationID: models.NewConversationID(sender, recipient),
		CreatedAt:      s.now().UTC(),
	}
	if err := s.messages.Create(ctx, &msg); err != nil {
		return models.Message{}, err
	}
	s.notifier.Notify(ctx, recipient, sender, models.NotificationMessage, "sent you a message")
	return msg, nil
}

// Conversation returns every message between the two users regardless of
// direction, oldest first.
func (s *MessageService) Conversation(ctx context.Context, userID, otherID primitive.ObjectID) ([]models.Message, error) {
	return s.messages.ByConversation(ctx, models.NewConversationID(userID, otherID))
}
