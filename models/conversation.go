package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ConversationID groups all messages between the same two users regardless
// of send direction. It is an opaque key, never parsed back apart.
type ConversationID string

// NewConversationID derives the canonical id for a participant pair: the two
// ids in sorted hex order joined by a colon, so the result is identical for
// (a, b) and (b, a).
func NewConversationID(a, b primitive.ObjectID) ConversationID {
	lo, hi := a.Hex(), b.Hex()
	if lo > hi {
		lo, hi = hi, lo
	}
	return ConversationID(lo + ":" + hi)
}
