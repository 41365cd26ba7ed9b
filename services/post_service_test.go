package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository/memory"
)

type contentFixture struct {
	posts    *PostService
	social   *SocialService
	users    *memory.UserRepository
	postRepo *memory.PostRepository
	notes    *memory.NotificationRepository
}

func newContentFixture() *contentFixture {
	users := memory.NewUserRepository()
	posts := memory.NewPostRepository()
	notes := memory.NewNotificationRepository()
	notifier := NewNotificationService(notes)
	return &contentFixture{
		posts:    NewPostService(posts, users, notifier),
		social:   NewSocialService(users, notifier),
		users:    users,
		postRepo: posts,
		notes:    notes,
	}
}

func (f *contentFixture) addUser(t *testing.T, username string) primitive.ObjectID {
	t.Helper()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     username + "@x.com",
		Password:  "hash",
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.users.Create(context.Background(), &u))
	return u.ID
}

func TestCreatePost_Validation(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	a := f.addUser(t, "alice")

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := f.posts.Create(ctx, a, content, "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}

	post, err := f.posts.Create(ctx, a, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, a, post.Author)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestLike_DuplicateIsConflict(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	a := f.addUser(t, "alice")
	b := f.addUser(t, "bob")

	post, err := f.posts.Create(ctx, b, "hello", "")
	require.NoError(t, err)

	require.NoError(t, f.posts.Like(ctx, post.ID, a))
	err = f.posts.Like(ctx, post.ID, a)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	got, err := f.posts.UserPosts(ctx, b)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Likes, 1)
}

// Concurrent likes by the same user resolve to exactly one winner; the
// losers see a conflict and the count never exceeds one.
func TestLike_ConcurrentSingleWinner(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	a := f.addUser(t, "alice")
	b := f.addUser(t, "bob")

	post, err := f.posts.Create(ctx, b, "hello", "")
	require.NoError(t, err)

	const workers = 16
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.posts.Like(ctx, post.ID, a)
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, apperrors.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, workers-1, conflicts)

	got, err := f.posts.UserPosts(ctx, b)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Likes, 1)
}

func TestLike_UnknownPost(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	a := f.addUser(t, "alice")

	err := f.posts.Like(context.Background(), primitive.NewObjectID(), a)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddComment_PreservesArrivalOrder(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	a := f.addUser(t, "alice")
	b := f.addUser(t, "bob")

	post, err := f.posts.Create(ctx, b, "hello", "")
	require.NoError(t, err)

	_, err = f.posts.AddComment(ctx, post.ID, a, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = f.posts.AddComment(ctx, primitive.NewObjectID(), a, "hi")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	for _, content := range []string{"first", "second", "third"} {
		_, err := f.posts.AddComment(ctx, post.ID, a, content)
		require.NoError(t, err)
	}

	got, err := f.posts.UserPosts(ctx, b)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Comments, 3)
	assert.Equal(t, "first", got[0].Comments[0].Content)
	assert.Equal(t, "second", got[0].Comments[1].Content)
	assert.Equal(t, "third", got[0].Comments[2].Content)
}

// Feed visibility: a post by author X is visible to the viewer iff X is the
// viewer or X is in the viewer's following set, and unfollowing removes X's
// posts from the very next composition.
func TestFeed_Visibility(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	carol := f.addUser(t, "carol")

	_, err := f.posts.Create(ctx, alice, "mine", "")
	require.NoError(t, err)
	_, err = f.posts.Create(ctx, bob, "from bob", "")
	require.NoError(t, err)
	_, err = f.posts.Create(ctx, carol, "from carol", "")
	require.NoError(t, err)

	require.NoError(t, f.social.Follow(ctx, alice, bob))

	feed, err := f.posts.Feed(ctx, alice)
	require.NoError(t, err)
	contents := feedContents(feed)
	assert.ElementsMatch(t, []string{"mine", "from bob"}, contents)
	assert.NotContains(t, contents, "from carol")

	require.NoError(t, f.social.Unfollow(ctx, alice, bob))

	feed, err = f.posts.Feed(ctx, alice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"mine"}, feedContents(feed))
}

func TestFeed_OrderingAndTieBreak(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Minute), base.Add(time.Minute), base.Add(2 * time.Minute)}
	contents := []string{"oldest", "tie-a", "tie-b", "newest"}
	for i := range times {
		tm := times[i]
		f.posts.now = func() time.Time { return tm }
		_, err := f.posts.Create(ctx, alice, contents[i], "")
		require.NoError(t, err)
	}

	feed, err := f.posts.Feed(ctx, alice)
	require.NoError(t, err)
	// Newest first; equal timestamps stay in insertion order.
	assert.Equal(t, []string{"newest", "tie-a", "tie-b", "oldest"}, feedContents(feed))
}

func TestFeed_JoinsAuthorFields(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	_, err := f.social.SetAvatar(ctx, bob, bob, "http://x/bob.png")
	require.NoError(t, err)
	require.NoError(t, f.social.Follow(ctx, alice, bob))
	_, err = f.posts.Create(ctx, bob, "hello", "")
	require.NoError(t, err)

	feed, err := f.posts.Feed(ctx, alice)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "bob", feed[0].AuthorName)
	assert.Equal(t, "http://x/bob.png", feed[0].AuthorPicture)
}

// The end-to-end scenario: A follows B, B posts "hello", A sees exactly that
// post, likes it once, and a second like is rejected with the count still 1.
func TestFeedAndLikeScenario(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	require.NoError(t, f.social.Follow(ctx, alice, bob))
	_, err := f.posts.Create(ctx, bob, "hello", "")
	require.NoError(t, err)

	feed, err := f.posts.Feed(ctx, alice)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "hello", feed[0].Content)
	assert.Equal(t, bob, feed[0].Author)

	require.NoError(t, f.posts.Like(ctx, feed[0].ID, alice))
	err = f.posts.Like(ctx, feed[0].ID, alice)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	feed, err = f.posts.Feed(ctx, alice)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Len(t, feed[0].Likes, 1)
}

func TestLikeAndComment_NotifyAuthor(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")

	post, err := f.posts.Create(ctx, bob, "hello", "")
	require.NoError(t, err)

	require.NoError(t, f.posts.Like(ctx, post.ID, alice))
	_, err = f.posts.AddComment(ctx, post.ID, alice, "nice")
	require.NoError(t, err)

	// Liking your own post must not notify yourself.
	own, err := f.posts.Create(ctx, alice, "self", "")
	require.NoError(t, err)
	require.NoError(t, f.posts.Like(ctx, own.ID, alice))

	got, err := f.notes.ByRecipient(ctx, bob, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)

	aliceNotes, err := f.notes.ByRecipient(ctx, alice, 20)
	require.NoError(t, err)
	assert.Empty(t, aliceNotes)
}

func feedContents(feed []models.FeedPost) []string {
	out := make([]string, 0, len(feed))
	for _, p := range feed {
		out = append(out, p.Content)
	}
	return out
}
