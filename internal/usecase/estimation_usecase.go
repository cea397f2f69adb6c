package usecase

import (
	"context"
	"errors"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/pricing"
	"estimaflow/internal/domain/query"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEstimationNotFound  = errors.New("estimation not found")
	ErrInvalidEstimationID = errors.New("invalid estimation id")
)

// IEstimationUseCase exposes the estimation screens' operations.
//
// Updates always replace the whole aggregate; there is no partial update.
type IEstimationUseCase interface {
	Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error)
	GetByID(ctx context.Context, id string) (entities.Estimation, error)
	Replace(ctx context.Context, id string, e entities.Estimation) (entities.Estimation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f query.EstimationFilter, p query.Page) (query.Result[entities.Estimation], error)
	Totals(ctx context.Context, id string) (pricing.Totals, error)
}

type EstimationUseCase struct {
	repo interfaces.IEstimationRepository
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(repo interfaces.IEstimationRepository) *EstimationUseCase {
	return &EstimationUseCase{repo: repo}
}

func (u *EstimationUseCase) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	e = normalizeEstimation(e)
	if err := ValidateEstimation(e); err != nil {
		return entities.Estimation{}, err
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	assignLineIDs(&e)

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estimation{}, err
	}
	logger.Get(ctx).Info().
		Str("estimation_id", created.ID).
		Int("sections", len(created.Sections)).
		Int("items", created.ItemCount()).
		Msg("estimation created")
	return created, nil
}

func (u *EstimationUseCase) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimation{}, ErrInvalidEstimationID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimation{}, err
	}
	if e.ID == "" {
		return entities.Estimation{}, ErrEstimationNotFound
	}
	return e, nil
}

func (u *EstimationUseCase) Replace(ctx context.Context, id string, e entities.Estimation) (entities.Estimation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimation{}, ErrInvalidEstimationID
	}
	e = normalizeEstimation(e)
	if err := ValidateEstimation(e); err != nil {
		return entities.Estimation{}, err
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimation{}, err
	}

	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	assignLineIDs(&e)

	updated, err := u.repo.Replace(ctx, e)
	if err != nil {
		return entities.Estimation{}, err
	}
	if updated.ID == "" {
		return entities.Estimation{}, ErrEstimationNotFound
	}
	logger.Get(ctx).Info().Str("estimation_id", updated.ID).Msg("estimation replaced")
	return updated, nil
}

func (u *EstimationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimationID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimationNotFound
	}
	logger.Get(ctx).Info().Str("estimation_id", id).Msg("estimation deleted")
	return nil
}

func (u *EstimationUseCase) List(ctx context.Context, f query.EstimationFilter, p query.Page) (query.Result[entities.Estimation], error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return query.Result[entities.Estimation]{}, err
	}
	return query.Paginate(query.FilterEstimations(all, f), p), nil
}

func (u *EstimationUseCase) Totals(ctx context.Context, id string) (pricing.Totals, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.EstimationTotals(e.Sections), nil
}

func normalizeEstimation(e entities.Estimation) entities.Estimation {
	e = e.Clone()
	e.Name = strings.TrimSpace(e.Name)
	e.Customer = strings.TrimSpace(e.Customer)
	e.Date = strings.TrimSpace(e.Date)
	for i := range e.Sections {
		s := &e.Sections[i]
		s.Title = strings.TrimSpace(s.Title)
		for j := range s.Items {
			it := &s.Items[j]
			it.Title = strings.TrimSpace(it.Title)
			it.Unit = strings.TrimSpace(it.Unit)
		}
	}
	return e
}

// assignLineIDs gives fresh ids to sections and items submitted without one.
func assignLineIDs(e *entities.Estimation) {
	for i := range e.Sections {
		s := &e.Sections[i]
		if s.ID == "" {
			s.ID = "section-" + uuid.NewString()
		}
		for j := range s.Items {
			if s.Items[j].ID == "" {
				s.Items[j].ID = "item-" + uuid.NewString()
			}
		}
	}
}
