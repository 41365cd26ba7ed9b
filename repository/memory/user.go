// Package memory provides in-process implementations of the repository
// interfaces. They back the unit tests and mirror the mongo implementations'
// error and ordering semantics exactly.
package memory

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"socialnet/apperrors"
	"socialnet/models"
	"socialnet/repository"
)

// UserRepository keeps users in a map guarded by one mutex; the single lock
// is what makes Follow/Unfollow atomic here.
type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.Conflictf("email already registered")
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.get(id)
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return models.User{}, apperrors.NotFoundf("user not found")
}

func (r *UserRepository) GetMany(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, id primitive.ObjectID, upd repository.ProfileUpdate) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, apperrors.NotFoundf("user not found")
	}
	u.Username = upd.Username
	u.Bio = upd.Bio
	u.ProfilePicture = upd.ProfilePicture
	return copyUser(u), nil
}

func (r *UserRepository) SetAvatar(_ context.Context, id primitive.ObjectID, url string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return models.User{}, apperrors.NotFoundf("user not found")
	}
	u.ProfilePicture = url
	return copyUser(u), nil
}

func (r *UserRepository) Follow(_ context.Context, actor, target primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.users[actor]
	if !ok {
		return apperrors.NotFoundf("user not found")
	}
	t, ok := r.users[target]
	if !ok {
		return apperrors.NotFoundf("user not found")
	}
	if contains(a.Following, target) {
		return apperrors.Conflictf("already following this user")
	}
	a.Following = append(a.Following, target)
	t.Followers = append(t.Followers, actor)
	return nil
}

func (r *UserRepository) Unfollow(_ context.Context, actor, target primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.users[actor]
	if !ok || !contains(a.Following, target) {
		return apperrors.Conflictf("not following this user")
	}
	a.Following = remove(a.Following, target)
	if t, ok := r.users[target]; ok {
		t.Followers = remove(t.Followers, actor)
	}
	return nil
}

func (r *UserRepository) SearchByUsername(_ context.Context, query string, limit int64) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	users := []models.User{}
	for _, u := range r.users {
		if int64(len(users)) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(u.Username), needle) {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}

func (r *UserRepository) get(id primitive.ObjectID) (models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return models.User{}, apperrors.NotFoundf("user not found")
	}
	return copyUser(u), nil
}

func copyUser(u *models.User) models.User {
	cp := *u
	cp.Followers = append([]primitive.ObjectID(nil), u.Followers...)
	cp.Following = append([]primitive.ObjectID(nil), u.Following...)
	return cp
}

func contains(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
