package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estimaflow/internal/adapter/http/handlers/mocks"
	"estimaflow/internal/adapter/http/middleware"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(uc usecase.IAuthUseCase) *gin.Engine {
	h := NewAuthHandler(uc)
	r := gin.New()
	r.POST("/v1/auth/register", h.Register)
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	r.GET("/v1/auth/me", middleware.BearerAuth(uc), h.Me)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newAuthRouter(mocks.NewMockIAuthUseCase(ctrl))

		w := serve(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.test"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)
		uc.EXPECT().Register(gomock.Any(), "a@b.test", "Ann", "password123").Return(entities.User{}, usecase.ErrEmailTaken)

		w := serve(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.test","name":"Ann","password":"password123"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created without password hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)
		uc.EXPECT().Register(gomock.Any(), "a@b.test", "Ann", "password123").
			Return(entities.User{ID: "u-1", Email: "a@b.test", Name: "Ann", PasswordHash: "secret-hash"}, nil)

		w := serve(r, http.MethodPost, "/v1/auth/register", `{"email":"a@b.test","name":"Ann","password":"password123"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "u-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		for k := range body {
			if k == "password_hash" || k == "PasswordHash" {
				t.Fatalf("password hash leaked: %s", w.Body.String())
			}
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)
		uc.EXPECT().Login(gomock.Any(), "a@b.test", "nope").Return(entities.Session{}, usecase.ErrInvalidCredentials)

		w := serve(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.test","password":"nope"}`)
		if w.Code != http.StatusUnauthorized || decodeError(t, w).Code != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("token issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)
		exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Login(gomock.Any(), "a@b.test", "password123").Return(entities.Session{Token: "tok", ExpiresAt: exp}, nil)

		w := serve(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.test","password":"password123"}`)
		var body struct {
			Token     string    `json:"token"`
			TokenType string    `json:"token_type"`
			ExpiresAt time.Time `json:"expires_at"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || w.Code != http.StatusOK {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
		if body.Token != "tok" || body.TokenType != "Bearer" || !body.ExpiresAt.Equal(exp) {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	withToken := func(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("logout without token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		w := serve(newAuthRouter(mocks.NewMockIAuthUseCase(ctrl)), http.MethodPost, "/v1/auth/logout", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

		w := withToken(newAuthRouter(uc), http.MethodPost, "/v1/auth/logout")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("logout store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Logout(gomock.Any(), "tok").Return(errors.New("boom"))

		w := withToken(newAuthRouter(uc), http.MethodPost, "/v1/auth/logout")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("me", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		uc.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.User{ID: "u-1", Email: "a@b.test"}, nil)

		w := withToken(newAuthRouter(uc), http.MethodGet, "/v1/auth/me")
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["email"] != "a@b.test" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}
