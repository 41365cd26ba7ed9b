package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"socialnet/apperrors"
	"socialnet/repository/memory"
	"socialnet/token"
)

func newAuthService() (*AuthService, *memory.UserRepository) {
	users := memory.NewUserRepository()
	return NewAuthService(users, token.NewManager("test-secret", time.Hour)), users
}

func TestRegister(t *testing.T) {
	t.Parallel()

	svc, users := newAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice", result.User.Username)
	assert.Empty(t, result.User.Followers)
	assert.Empty(t, result.User.Following)

	stored, err := users.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw123")))
}

func TestRegister_EmptyFields(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	for _, tc := range []struct{ username, email, password string }{
		{"", "a@x.com", "pw"},
		{"a", "", "pw"},
		{"a", "a@x.com", ""},
	} {
		_, err := svc.Register(ctx, tc.username, tc.email, tc.password)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "other", "alice@x.com", "pw456")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

// Email uniqueness must hold under concurrent registration: exactly one of
// the racing registrations wins, the rest see a conflict.
func TestRegister_ConcurrentDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, users := newAuthService()
	ctx := context.Background()

	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, fmt.Sprintf("user%d", i), "same@x.com", "pw123")
			errs <- err
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

	_, err := users.GetByEmail(ctx, "same@x.com")
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "alice@x.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)
}

// A wrong password and a nonexistent email must be indistinguishable to the
// caller.
func TestLogin_UniformInvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "pw123")
	require.NoError(t, err)

	_, errWrongPassword := svc.Login(ctx, "alice@x.com", "nope")
	_, errUnknownEmail := svc.Login(ctx, "ghost@x.com", "pw123")

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.ErrorIs(t, errWrongPassword, apperrors.ErrAuth)
	assert.ErrorIs(t, errUnknownEmail, apperrors.ErrAuth)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}
