package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is append-only chat state between exactly two users.
type Message struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Sender         primitive.ObjectID `json:"sender" bson:"sender"`
	Recipient      primitive.ObjectID `json:"recipient" bson:"recipient"`
	Content        string             `json:"content" bson:"content"`
	ConversationID ConversationID     `json:"conversationId" bson:"conversationId"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}
