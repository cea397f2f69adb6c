package interfaces

import (
	"context"
	"estimaflow/internal/domain/entities"
)

// ISessionStore keeps bearer sessions. Get returns a zero Session when the
// token is unknown.
type ISessionStore interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}
