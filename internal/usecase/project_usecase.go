package usecase

import (
	"context"
	"errors"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/query"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// ProjectListOptions drives the project table: filters, ordering and paging.
type ProjectListOptions struct {
	Filter    query.ProjectFilter
	SortField string
	SortDir   query.SortDirection
	Page      query.Page
}

type IProjectUseCase interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Replace(ctx context.Context, id string, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ProjectListOptions) (query.Result[entities.Project], error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p = normalizeProject(p)
	if err := ValidateProject(p); err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	logger.Get(ctx).Info().Str("project_id", created.ID).Str("status", string(created.Status)).Msg("project created")
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Replace(ctx context.Context, id string, p entities.Project) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p = normalizeProject(p)
	if err := ValidateProject(p); err != nil {
		return entities.Project{}, err
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Replace(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	logger.Get(ctx).Info().Str("project_id", updated.ID).Msg("project replaced")
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProjectID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProjectNotFound
	}
	logger.Get(ctx).Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (u *ProjectUseCase) List(ctx context.Context, opts ProjectListOptions) (query.Result[entities.Project], error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return query.Result[entities.Project]{}, err
	}
	filtered := query.FilterProjects(all, opts.Filter)
	if opts.SortField != "" {
		filtered = query.SortProjects(filtered, opts.SortField, opts.SortDir)
	}
	return query.Paginate(filtered, opts.Page), nil
}

func normalizeProject(p entities.Project) entities.Project {
	p.Customer = strings.TrimSpace(p.Customer)
	p.ProjectName = strings.TrimSpace(p.ProjectName)
	p.RefNumber = strings.TrimSpace(p.RefNumber)
	p.Email = strings.TrimSpace(p.Email)
	p.DueDate = strings.TrimSpace(p.DueDate)
	return p
}
