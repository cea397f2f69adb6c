package interfaces

import (
	"context"
	"errors"
	"estimaflow/internal/domain/entities"
)

// ErrDuplicateEmail is returned by Create when the e-mail is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// IUserRepository stores dashboard operators. Emails are stored lower-cased.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Count(ctx context.Context) (int, error)
}
