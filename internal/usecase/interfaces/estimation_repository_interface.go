package interfaces

import (
	"context"
	"estimaflow/internal/domain/entities"
)

// IEstimationRepository abstracts persistence of the Estimation aggregate.
//
// Lookups of a missing id return a zero Estimation and a nil error; the use case
// turns that into ErrEstimationNotFound. Replace and Delete report whether a
// record existed.
type IEstimationRepository interface {
	Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	GetByID(ctx context.Context, id string) (entities.Estimation, error)
	Replace(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.Estimation, error)
}
