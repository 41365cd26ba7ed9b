package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository"
)

// SocialService owns profiles and the asymmetric follow graph. Symmetric
// bookkeeping of followers/following is delegated to the repository, which
// performs both updates atomically.
type SocialService struct {
	users    repository.UserRepository
	notifier *NotificationService
}

func NewSocialService(users repository.UserRepository, notifier *NotificationService) *SocialService {
	return &SocialService{users: users, notifier: notifier}
}

// Profile returns a user without the credential hash.
func (s *SocialService) Profile(ctx context.Context, id primitive.ObjectID) (models.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// UpdateProfile mutates the caller's own profile fields.
func (s *SocialService) UpdateProfile(ctx context.Context, caller, id primitive.ObjectID, upd repository.ProfileUpdate) (models.PublicUser, error) {
	if caller != id {
		return models.PublicUser{}, apperrors.Authf("cannot modify another user's profile")
	}
	if upd.Username == "" {
		return models.PublicUser{}, apperrors.Validationf("username is required")
	}
	user, err := s.users.UpdateProfile(ctx, id, upd)
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// SetAvatar stores the avatar URL on the caller's own profile.
func (s *SocialService) SetAvatar(ctx context.Context, caller, id primitive.ObjectID, url string) (models.PublicUser, error) {
	if caller != id {
		return models.PublicUser{}, apperrors.Authf("cannot modify another user's profile")
	}
	if url == "" {
		return models.PublicUser{}, apperrors.Validationf("avatar url is required")
	}
	user, err := s.users.SetAvatar(ctx, id, url)
	if err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// Follow subscribes actor to target's posts and notifies target.
func (s *SocialService) Follow(ctx context.Context, actor, target primitive.ObjectID) error {
	if actor == target {
		return apperrors.Validationf("cannot follow yourself")
	}
	if err := s.users.Follow(ctx, actor, target); err != nil {
		return err
	}
	s.notifier.Notify(ctx, target, actor, models.NotificationFollow, "started following you")
	return nil
}

// Unfollow removes the subscription symmetrically.
func (s *SocialService) Unfollow(ctx context.Context, actor, target primitive.ObjectID) error {
	if actor == target {
		return apperrors.Validationf("cannot unfollow yourself")
	}
	return s.users.Unfollow(ctx, actor, target)
}

// IsFollowing is a pure membership query.
func (s *SocialService) IsFollowing(ctx context.Context, a, b primitive.ObjectID) (bool, error) {
	user, err := s.users.GetByID(ctx, a)
	if err != nil {
		return false, err
	}
	return user.IsFollowing(b), nil
}

// Followers expands a user's follower id set into public profiles.
func (s *SocialService) Followers(ctx context.Context, id primitive.ObjectID) ([]models.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, user.Followers)
}

// Following expands a user's following id set into public profiles.
func (s *SocialService) Following(ctx context.Context, id primitive.ObjectID) ([]models.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, user.Following)
}

func (s *SocialService) expand(ctx context.Context, ids []primitive.ObjectID) ([]models.PublicUser, error) {
	users, err := s.users.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}
