package repository

import (
	"context"
	"sync"
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"
)

// EstimationMemoryRepository keeps estimations in process memory.
//
// Every value going in or out is deep-copied, so callers can never mutate
// stored sections. Latency, when set, is applied to every call.
type EstimationMemoryRepository struct {
	mu      sync.RWMutex
	items   map[string]entities.Estimation
	latency time.Duration
}

var _ interfaces.IEstimationRepository = (*EstimationMemoryRepository)(nil)

func NewEstimationMemoryRepository(latency time.Duration) *EstimationMemoryRepository {
	return &EstimationMemoryRepository{items: make(map[string]entities.Estimation), latency: latency}
}

func (r *EstimationMemoryRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return entities.Estimation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; ok {
		return entities.Estimation{}, ErrAlreadyExists
	}
	r.items[e.ID] = e.Clone()
	return e.Clone(), nil
}

func (r *EstimationMemoryRepository) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return entities.Estimation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id].Clone(), nil
}

func (r *EstimationMemoryRepository) Replace(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return entities.Estimation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; !ok {
		return entities.Estimation{}, nil
	}
	r.items[e.ID] = e.Clone()
	return e.Clone(), nil
}

func (r *EstimationMemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *EstimationMemoryRepository) List(ctx context.Context) ([]entities.Estimation, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Estimation, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e.Clone())
	}
	return out, nil
}
