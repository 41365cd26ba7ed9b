package memory

import (
	"context"
	"sort"
	"sync"

	"socialnet/models"
)

// MessageRepository keeps the append-only message log in memory.
type MessageRepository struct {
	mu       sync.RWMutex
	messages []models.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(_ context.Context, msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, *msg)
	return nil
}

func (r *MessageRepository) ByConversation(_ context.Context, id models.ConversationID) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := []models.Message{}
	for _, m := range r.messages {
		if m.ConversationID == id {
			messages = append(messages, m)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}
