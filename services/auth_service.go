// Package services implements the application logic between HTTP handlers
// and repositories: authentication, the follow graph, content and feed
// composition, messaging and notifications.
package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository"
	"socialnet/token"
)

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	users  repository.UserRepository
	tokens *token.Manager
	now    func() time.Time
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

// Register creates a user with a bcrypt-hashed password and empty follow
// sets, then issues a token bound to the new id.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return AuthResult{}, apperrors.Validationf("all fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
		CreatedAt: s.now().UTC(),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return AuthResult{}, err
	}

	tok, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: tok, User: user.Public()}, nil
}

// Login returns the identical AuthError for an unknown email and for a
// failed hash comparison so callers cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if email == "" || password == "" {
		return AuthResult{}, apperrors.Validationf("all fields are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, apperrors.Authf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResult{}, apperrors.Authf("invalid credentials")
	}

	tok, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: tok, User: user.Public()}, nil
}
