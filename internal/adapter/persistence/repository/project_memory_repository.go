package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"
)

// ProjectMemoryRepository keeps projects in process memory. List returns
// projects in creation order, matching what a json-server backed table shows.
type ProjectMemoryRepository struct {
	mu      sync.RWMutex
	items   map[string]entities.Project
	latency time.Duration
}

var _ interfaces.IProjectRepository = (*ProjectMemoryRepository)(nil)

func NewProjectMemoryRepository(latency time.Duration) *ProjectMemoryRepository {
	return &ProjectMemoryRepository{items: make(map[string]entities.Project), latency: latency}
}

func (r *ProjectMemoryRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return entities.Project{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.Project{}, ErrAlreadyExists
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *ProjectMemoryRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return entities.Project{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *ProjectMemoryRepository) Replace(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return entities.Project{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return entities.Project{}, nil
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *ProjectMemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *ProjectMemoryRepository) List(ctx context.Context) ([]entities.Project, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]entities.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
