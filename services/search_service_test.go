package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/apperrors"
)

func TestSearch(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	ctx := context.Background()
	f.addUser(t, "alice")
	f.addUser(t, "alicia")
	bob := f.addUser(t, "bob")

	_, err := f.posts.Create(ctx, bob, "Hello World", "")
	require.NoError(t, err)

	svc := NewSearchService(f.users, f.postRepo, 10)

	users, err := svc.Users(ctx, "ALIC")
	require.NoError(t, err)
	assert.Len(t, users, 2)

	posts, err := svc.Posts(ctx, "hello")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "bob", posts[0].AuthorName)

	_, err = svc.Users(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = svc.Posts(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSearch_CapsResults(t *testing.T) {
	t.Parallel()

	f := newContentFixture()
	for i := 0; i < 15; i++ {
		f.addUser(t, fmt.Sprintf("user%02d", i))
	}

	svc := NewSearchService(f.users, f.postRepo, 10)
	got, err := svc.Users(context.Background(), "user")
	require.NoError(t, err)
	assert.Len(t, got, 10)
}
