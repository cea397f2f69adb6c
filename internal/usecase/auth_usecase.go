package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt rejects longer inputs
	maxPasswordBytes = 72
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidSession      = errors.New("invalid or expired session")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrEmailTaken          = errors.New("email already registered")
)

// IAuthUseCase backs login gating of the dashboard.
type IAuthUseCase interface {
	Register(ctx context.Context, email, name, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Authenticate(ctx context.Context, token string) (entities.User, error)
	Logout(ctx context.Context, token string) error
}

type AuthUseCase struct {
	users      interfaces.IUserRepository
	sessions   interfaces.ISessionStore
	ttl        time.Duration
	bcryptCost int
	now        func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, sessions interfaces.ISessionStore, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{
		users:      users,
		sessions:   sessions,
		ttl:        ttl,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func (u *AuthUseCase) Register(ctx context.Context, email, name, password string) (entities.User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	var p problems
	p.required("email", email)
	if email != "" && !strings.Contains(email, "@") {
		p.add("email", "must be a valid e-mail address")
	}
	p.required("name", name)
	if len(password) < minPasswordLength {
		p.add("password", "must be at least 8 characters")
	}
	if len(password) > maxPasswordBytes {
		p.add("password", "must be at most 72 bytes")
	}
	if err := p.err(ErrInvalidRegistration); err != nil {
		return entities.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return entities.User{}, err
	}

	created, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    u.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateEmail) {
			return entities.User{}, ErrEmailTaken
		}
		return entities.User{}, err
	}
	logger.Get(ctx).Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	user, err := u.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return entities.Session{}, err
	}
	if user.ID == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Get(ctx).Warn().Str("user_id", user.ID).Msg("login rejected")
		return entities.Session{}, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return entities.Session{}, err
	}
	now := u.now().UTC()
	s := entities.Session{Token: token, UserID: user.ID, CreatedAt: now, ExpiresAt: now.Add(u.ttl)}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.Session{}, err
	}
	logger.Get(ctx).Info().Str("user_id", user.ID).Time("expires_at", s.ExpiresAt).Msg("login succeeded")
	return s, nil
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrInvalidSession
	}

	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.User{}, err
	}
	if s.Token == "" {
		return entities.User{}, ErrInvalidSession
	}
	if s.Expired(u.now()) {
		_ = u.sessions.Delete(ctx, token)
		return entities.User{}, ErrInvalidSession
	}

	user, err := u.users.GetByID(ctx, s.UserID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrInvalidSession
	}
	return user, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidSession
	}
	return u.sessions.Delete(ctx, token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
