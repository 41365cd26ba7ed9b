package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
)

// PostRepository keeps posts in insertion order so feed tie-breaking matches
// the mongo implementation's secondary _id sort.
type PostRepository struct {
	mu    sync.RWMutex
	posts []*models.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *post
	r.posts = append(r.posts, &cp)
	return nil
}

func (r *PostRepository) GetByID(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.find(id)
	if p == nil {
		return models.Post{}, apperrors.NotFoundf("post not found")
	}
	return copyPost(p), nil
}

func (r *PostRepository) Like(_ context.Context, postID, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(postID)
	if p == nil {
		return apperrors.NotFoundf("post not found")
	}
	if contains(p.Likes, userID) {
		return apperrors.Conflictf("post already liked")
	}
	p.Likes = append(p.Likes, userID)
	return nil
}

func (r *PostRepository) AddComment(_ context.Context, postID primitive.ObjectID, comment models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(postID)
	if p == nil {
		return apperrors.NotFoundf("post not found")
	}
	p.Comments = append(p.Comments, comment)
	return nil
}

func (r *PostRepository) ByAuthors(_ context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := []models.Post{}
	for _, p := range r.posts {
		if contains(authors, p.Author) {
			posts = append(posts, copyPost(p))
		}
	}
	// Stable sort over the insertion-ordered slice keeps equal timestamps
	// in insertion order.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (r *PostRepository) SearchByContent(_ context.Context, query string, limit int64) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	posts := []models.Post{}
	for _, p := range r.posts {
		if int64(len(posts)) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Content), needle) {
			posts = append(posts, copyPost(p))
		}
	}
	return posts, nil
}

func (r *PostRepository) find(id primitive.ObjectID) *models.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func copyPost(p *models.Post) models.Post {
	cp := *p
	cp.Likes = append([]primitive.ObjectID(nil), p.Likes...)
	cp.Comments = append([]models.Comment(nil), p.Comments...)
	return cp
}
