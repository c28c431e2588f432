package memory

import (
	"context"
	"sync"

	"github.com/grubline/recipebox/internal/domain/user"
)

type UsersRepo struct {
	mu         sync.RWMutex
	byUsername map[string]user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		byUsername: make(map[string]user.User),
	}
}

func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[u.Username]; exists {
		return user.User{}, user.ErrUsernameTaken
	}

	r.byUsername[u.Username] = u

	return u, nil
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.RLock()
	u, ok := r.byUsername[username]
	r.mu.RUnlock()

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}
