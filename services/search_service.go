package services

import (
	"context"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository"
)

// SearchService runs capped case-insensitive substring searches over users
// and posts.
type SearchService struct {
	users repository.UserRepository
	posts repository.PostRepository
	limit int64
}

func NewSearchService(users repository.UserRepository, posts repository.PostRepository, limit int64) *SearchService {
	return &SearchService{users: users, posts: posts, limit: limit}
}

// Users matches usernames, returning password-free profiles.
func (s *SearchService) Users(ctx context.Context, query string) ([]models.PublicUser, error) {
	if query == "" {
		return nil, apperrors.Validationf("search query is required")
	}
	users, err := s.users.SearchByUsername(ctx, query, s.limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// Posts matches post content, joining author fields onto each hit.
func (s *SearchService) Posts(ctx context.Context, query string) ([]models.FeedPost, error) {
	if query == "" {
		return nil, apperrors.Validationf("search query is required")
	}
	posts, err := s.posts.SearchByContent(ctx, query, s.limit)
	if err != nil {
		return nil, err
	}
	return joinAuthors(ctx, s.users, posts)
}
