package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/interview-prep/internal/model"
	"github.com/google/uuid"
)

// MemoryUserRepository keeps accounts for the lifetime of the process. It is
// used when no database is configured.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]model.User)}
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Request-scoped strings may alias a reused buffer; the map outlives the request.
	u.Username = strings.Clone(u.Username)
	if _, ok := r.users[u.Username]; ok {
		return ErrUsernameTaken
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.users[u.Username] = *u
	return nil
}
