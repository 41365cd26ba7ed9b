package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/logger"
	"socialnet/models"
	"socialnet/repository"
)

// listLimit caps the notification list returned to a client.
const listLimit = 20

// NotificationService reads notifications and drives the one-way
// unread -> read transition. It also performs the fan-out writes for the
// other services; fan-out is best effort and never fails the primary
// operation.
type NotificationService struct {
	notifications repository.NotificationRepository
	now           func() time.Time
}

func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications, now: time.Now}
}

// List returns the caller's notifications, newest first, capped at 20.
func (s *NotificationService) List(ctx context.Context, recipient primitive.ObjectID) ([]models.Notification, error) {
	return s.notifications.ByRecipient(ctx, recipient, listLimit)
}

// MarkRead transitions one owned notification to read. Re-reading an
// already-read notification is a no-op, not an error.
func (s *NotificationService) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (models.Notification, error) {
	return s.notifications.MarkRead(ctx, id, recipient)
}

// MarkAllRead transitions every unread notification owned by recipient.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error) {
	return s.notifications.MarkAllRead(ctx, recipient)
}

// Notify records a notification for recipient unless the actor is notifying
// themselves. Failures are logged and swallowed.
func (s *NotificationService) Notify(ctx context.Context, recipient, sender primitive.ObjectID, typ, content string) {
	if recipient == sender {
		return
	}
	n := models.Notification{
		ID:        primitive.NewObjectID(),
		Recipient: recipient,
		Sender:    sender,
		Type:      typ,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.notifications.Create(ctx, &n); err != nil {
		logger.L().Warn().Err(err).Str("type", typ).Msg("notification fan-out failed")
	}
}
