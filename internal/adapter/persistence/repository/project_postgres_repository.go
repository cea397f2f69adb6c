package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"
)

type ProjectPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IProjectRepository = (*ProjectPostgresRepository)(nil)

func NewProjectPostgresRepository(db *sql.DB) *ProjectPostgresRepository {
	return &ProjectPostgresRepository{db: db}
}

const projectColumns = `id, customer, ref_number, project_name, project_number, manager, area_location,
	address, due_date, contact, staff, status, email, created_at, updated_at`

func (r *ProjectPostgresRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		projectArgs(p)...,
	)
	if err != nil {
		return entities.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (r *ProjectPostgresRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Project{}, nil
	}
	return p, err
}

func (r *ProjectPostgresRepository) Replace(ctx context.Context, p entities.Project) (entities.Project, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET customer = $2, ref_number = $3, project_name = $4, project_number = $5,
			manager = $6, area_location = $7, address = $8, due_date = $9, contact = $10, staff = $11,
			status = $12, email = $13, created_at = $14, updated_at = $15
		WHERE id = $1`,
		projectArgs(p)...,
	)
	if err != nil {
		return entities.Project{}, fmt.Errorf("update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Project{}, nil
	}
	return p, nil
}

func (r *ProjectPostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteRow(ctx, r.db, "projects", id)
}

func (r *ProjectPostgresRepository) List(ctx context.Context) ([]entities.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := []entities.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func projectArgs(p entities.Project) []any {
	return []any{
		p.ID, p.Customer, p.RefNumber, p.ProjectName, p.ProjectNumber, p.Manager, p.AreaLocation,
		p.Address, p.DueDate, p.Contact, p.Staff, string(p.Status), p.Email, p.CreatedAt, p.UpdatedAt,
	}
}

func scanProject(s rowScanner) (entities.Project, error) {
	var (
		p      entities.Project
		status string
	)
	err := s.Scan(&p.ID, &p.Customer, &p.RefNumber, &p.ProjectName, &p.ProjectNumber, &p.Manager,
		&p.AreaLocation, &p.Address, &p.DueDate, &p.Contact, &p.Staff, &status, &p.Email,
		&p.CreatedAt, &p.UpdatedAt)
	p.Status = entities.ProjectStatus(status)
	return p, err
}
