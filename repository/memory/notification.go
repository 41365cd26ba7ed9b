package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
)

// NotificationRepository keeps notifications in insertion order; ByRecipient
// walks it backwards to return newest first.
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []*models.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *NotificationRepository) ByRecipient(_ context.Context, recipient primitive.ObjectID, limit int64) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Notification{}
	for i := len(r.notifications) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if r.notifications[i].Recipient == recipient {
			out = append(out, *r.notifications[i])
		}
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id, recipient primitive.ObjectID) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id && n.Recipient == recipient {
			n.IsRead = true
			return *n, nil
		}
	}
	return models.Notification{}, apperrors.NotFoundf("notification not found")
}

func (r *NotificationRepository) MarkAllRead(_ context.Context, recipient primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	for _, n := range r.notifications {
		if n.Recipient == recipient && !n.IsRead {
			n.IsRead = true
			changed++
		}
	}
	return changed, nil
}
