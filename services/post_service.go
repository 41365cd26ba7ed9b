package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository"
)

// PostService owns post creation, the like/comment collections, and feed
// composition.
type PostService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	notifier *NotificationService
	now      func() time.Time
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, notifier *NotificationService) *PostService {
	return &PostService{posts: posts, users: users, notifier: notifier, now: time.Now}
}

// Create stores a new post with empty like and comment collections.
func (s *PostService) Create(ctx context.Context, author primitive.ObjectID, content, imageURL string) (models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return models.Post{}, apperrors.Validationf("content is required")
	}

	post := models.Post{
		ID:        primitive.NewObjectID(),
		Author:    author,
		Content:   content,
		ImageURL:  imageURL,
		Likes:     []primitive.ObjectID{},
		Comments:  []models.Comment{},
		CreatedAt: s.now().UTC(),
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Like adds userID to the post's like set. Liking twice is a rejected
// duplicate action, not a no-op.
func (s *PostService) Like(ctx context.Context, postID, userID primitive.ObjectID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := s.posts.Like(ctx, postID, userID); err != nil {
		return err
	}
	s.notifier.Notify(ctx, post.Author, userID, models.NotificationLike, "liked your post")
	return nil
}

// AddComment appends a comment to the post, preserving arrival order.
func (s *PostService) AddComment(ctx context.Context, postID, author primitive.ObjectID, content string) (models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return models.Comment{}, apperrors.Validationf("content is required")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.posts.AddComment(ctx, postID, comment); err != nil {
		return models.Comment{}, err
	}
	s.notifier.Notify(ctx, post.Author, author, models.NotificationComment, "commented on your post")
	return comment, nil
}

// Feed composes the viewer's visible post set: posts authored by the viewer
// or by anyone the viewer follows, newest first, joined with author fields.
// The follow graph is consulted fresh on every call, so an unfollow takes
// effect on the next composition.
func (s *PostService) Feed(ctx context.Context, viewerID primitive.ObjectID) ([]models.FeedPost, error) {
	viewer, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	authors := append([]primitive.ObjectID{viewerID}, viewer.Following...)
	posts, err := s.posts.ByAuthors(ctx, authors)
	if err != nil {
		return nil, err
	}
	return joinAuthors(ctx, s.users, posts)
}

// UserPosts returns one user's posts, newest first.
func (s *PostService) UserPosts(ctx context.Context, userID primitive.ObjectID) ([]models.FeedPost, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	posts, err := s.posts.ByAuthors(ctx, []primitive.ObjectID{userID})
	if err != nil {
		return nil, err
	}
	return joinAuthors(ctx, s.users, posts)
}

// joinAuthors is the explicit fetch step that attaches author username and
// picture to each post.
func joinAuthors(ctx context.Context, users repository.UserRepository, posts []models.Post) ([]models.FeedPost, error) {
	ids := make([]primitive.ObjectID, 0, len(posts))
	seen := make(map[primitive.ObjectID]bool)
	for _, p := range posts {
		if !seen[p.Author] {
			seen[p.Author] = true
			ids = append(ids, p.Author)
		}
	}

	authors, err := users.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.User, len(authors))
	for _, u := range authors {
		byID[u.ID] = u
	}

	out := make([]models.FeedPost, 0, len(posts))
	for _, p := range posts {
		fp := models.FeedPost{Post: p}
		if u, ok := byID[p.Author]; ok {
			fp.AuthorName = u.Username
			fp.AuthorPicture = u.ProfilePicture
		}
		out = append(out, fp)
	}
	return out, nil
}
