package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"
)

// EstimationPostgresRepository stores one row per estimation with its sections
// in a JSONB column.
type EstimationPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IEstimationRepository = (*EstimationPostgresRepository)(nil)

func NewEstimationPostgresRepository(db *sql.DB) *EstimationPostgresRepository {
	return &EstimationPostgresRepository{db: db}
}

const estimationColumns = `id, name, customer, date, sections, created_at, updated_at`

func (r *EstimationPostgresRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	sections, err := marshalSections(e.Sections)
	if err != nil {
		return entities.Estimation{}, err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO estimations (`+estimationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Name, e.Customer, e.Date, sections, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return entities.Estimation{}, fmt.Errorf("insert estimation: %w", err)
	}
	return e, nil
}

func (r *EstimationPostgresRepository) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+estimationColumns+` FROM estimations WHERE id = $1`, id)
	e, err := scanEstimation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Estimation{}, nil
	}
	return e, err
}

func (r *EstimationPostgresRepository) Replace(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	sections, err := marshalSections(e.Sections)
	if err != nil {
		return entities.Estimation{}, err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE estimations SET name = $2, customer = $3, date = $4, sections = $5, updated_at = $6 WHERE id = $1`,
		e.ID, e.Name, e.Customer, e.Date, sections, e.UpdatedAt,
	)
	if err != nil {
		return entities.Estimation{}, fmt.Errorf("update estimation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Estimation{}, nil
	}
	return e, nil
}

func (r *EstimationPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteRow(ctx, r.db, "estimations", id)
}

func (r *EstimationPostgresRepository) List(ctx context.Context) ([]entities.Estimation, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+estimationColumns+` FROM estimations`)
	if err != nil {
		return nil, fmt.Errorf("list estimations: %w", err)
	}
	defer rows.Close()

	out := []entities.Estimation{}
	for rows.Next() {
		e, err := scanEstimation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEstimation(s rowScanner) (entities.Estimation, error) {
	var (
		e   entities.Estimation
		raw []byte
	)
	if err := s.Scan(&e.ID, &e.Name, &e.Customer, &e.Date, &raw, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return entities.Estimation{}, err
	}
	if err := json.Unmarshal(raw, &e.Sections); err != nil {
		return entities.Estimation{}, fmt.Errorf("decode sections of %s: %w", e.ID, err)
	}
	return e, nil
}

func marshalSections(sections []entities.Section) ([]byte, error) {
	if sections == nil {
		sections = []entities.Section{}
	}
	return json.Marshal(sections)
}

func deleteRow(ctx context.Context, db *sql.DB, table, id string) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
