// Package repository defines the persistence interfaces consumed by the
// service layer, plus their MongoDB implementations. Implementations report
// failures with the apperrors taxonomy so services can pass them through.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/models"
)

// ProfileUpdate carries the mutable profile fields of a user.
type ProfileUpdate struct {
	Username       string
	Bio            string
	ProfilePicture string
}

// UserRepository persists identity records and the follow graph.
type UserRepository interface {
	// Create inserts a new user. Returns a ConflictError if the email is
	// already registered.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetMany(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (models.User, error)
	SetAvatar(ctx context.Context, id primitive.ObjectID, url string) (models.User, error)

	// Follow inserts target into actor.following and actor into
	// target.followers as a single atomic unit. Returns a ConflictError if
	// actor already follows target, a NotFoundError if either id is unknown.
	Follow(ctx context.Context, actor, target primitive.ObjectID) error
	// Unfollow removes the membership symmetrically. Returns a ConflictError
	// if actor does not currently follow target.
	Unfollow(ctx context.Context, actor, target primitive.ObjectID) error

	// SearchByUsername matches usernames by case-insensitive substring.
	SearchByUsername(ctx context.Context, query string, limit int64) ([]models.User, error)
}

// PostRepository persists posts and their like/comment collections.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)

	// Like adds userID to the post's like set. Adding a user already in the
	// set is a ConflictError, and two concurrent likes by the same user
	// resolve to exactly one success.
	Like(ctx context.Context, postID, userID primitive.ObjectID) error
	// AddComment appends the comment to the post, preserving arrival order.
	AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) error

	// ByAuthors returns posts by any of the given authors, newest first,
	// ties in insertion order.
	ByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error)
	// SearchByContent matches post content by case-insensitive substring.
	SearchByContent(ctx context.Context, query string, limit int64) ([]models.Post, error)
}

// MessageRepository persists the append-only message log.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	// ByConversation returns all messages of a conversation, oldest first.
	ByConversation(ctx context.Context, id models.ConversationID) ([]models.Message, error)
}

// NotificationRepository persists notifications and their read flags.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	// ByRecipient returns the recipient's notifications, newest first,
	// capped at limit.
	ByRecipient(ctx context.Context, recipient primitive.ObjectID, limit int64) ([]models.Notification, error)
	// MarkRead flips IsRead on one notification owned by recipient.
	MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (models.Notification, error)
	// MarkAllRead flips IsRead on every unread notification owned by
	// recipient, returning how many changed.
	MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error)
}
