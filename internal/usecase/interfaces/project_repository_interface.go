package interfaces

import (
	"context"
	"estimaflow/internal/domain/entities"
)

// IProjectRepository abstracts persistence of projects. Same missing-record
// conventions as IEstimationRepository.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Replace(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.Project, error)
}
