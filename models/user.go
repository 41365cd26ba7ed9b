package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the identity record. Password holds the bcrypt hash, never the
// plaintext, and is stripped from every response via Public.
type User struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id"`
	Username       string               `json:"username" bson:"username" validate:"required"`
	Email          string               `json:"email" bson:"email" validate:"required,email"`
	Password       string               `json:"-" bson:"password" validate:"required"`
	Bio            string               `json:"bio" bson:"bio"`
	ProfilePicture string               `json:"profilePicture" bson:"profilePicture"`
	IsPrivate      bool                 `json:"isPrivate" bson:"isPrivate"`
	Followers      []primitive.ObjectID `json:"followers" bson:"followers"`
	Following      []primitive.ObjectID `json:"following" bson:"following"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the password-free projection returned by profile, search and
// member-list endpoints.
type PublicUser struct {
	ID             primitive.ObjectID   `json:"id"`
	Username       string               `json:"username"`
	Email          string               `json:"email"`
	Bio            string               `json:"bio"`
	ProfilePicture string               `json:"profilePicture"`
	IsPrivate      bool                 `json:"isPrivate"`
	Followers      []primitive.ObjectID `json:"followers"`
	Following      []primitive.ObjectID `json:"following"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		IsPrivate:      u.IsPrivate,
		Followers:      u.Followers,
		Following:      u.Following,
		CreatedAt:      u.CreatedAt,
	}
}

// IsFollowing reports whether id is in the user's following set.
func (u User) IsFollowing(id primitive.ObjectID) bool {
	for _, f := range u.Following {
		if f == id {
			return true
		}
	}
	return false
}
