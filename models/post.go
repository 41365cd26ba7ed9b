package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is authored once; Likes and Comments are the only mutable parts.
// A user id appears in Likes at most once. Comments keep insertion order,
// which is also display order.
type Post struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id"`
	Author    primitive.ObjectID   `json:"author" bson:"author"`
	Content   string               `json:"content" bson:"content"`
	ImageURL  string               `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []Comment            `json:"comments" bson:"comments"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// FeedPost is a Post joined with the author fields the client renders,
// the explicit fetch step that replaces read-time population.
type FeedPost struct {
	Post
	AuthorName    string `json:"authorUsername"`
	AuthorPicture string `json:"authorProfilePicture"`
}
