package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type UserPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(db *sql.DB) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

func (r *UserPostgresRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return entities.User{}, interfaces.ErrDuplicateEmail
		}
		return entities.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserPostgresRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UserPostgresRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UserPostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserPostgresRepository) getOne(ctx context.Context, where string, arg string) (entities.User, error) {
	var u entities.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, password_hash, created_at FROM users `+where, arg,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
