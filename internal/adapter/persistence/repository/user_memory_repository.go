package repository

import (
	"context"
	"errors"
	"sync"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"
)

// ErrAlreadyExists is returned by the memory stores when an id is reused.
var ErrAlreadyExists = errors.New("record already exists")

type UserMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]entities.User
	byEmail map[string]string
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		byID:    make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserMemoryRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return entities.User{}, interfaces.ErrDuplicateEmail
	}
	if _, ok := r.byID[u.ID]; ok {
		return entities.User{}, ErrAlreadyExists
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *UserMemoryRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *UserMemoryRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return entities.User{}, nil
	}
	return r.byID[id], nil
}

func (r *UserMemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
