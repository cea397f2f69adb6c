package handlers

import (
	"net/http"

	"estimaflow/internal/adapter/http/dto/request"
	"estimaflow/internal/adapter/http/dto/response"
	"estimaflow/internal/adapter/http/middleware"
	"estimaflow/internal/usecase"
	"estimaflow/pkg"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Name, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}

	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		writeError(c, pkg.ErrUnauthorized)
		return
	}
	if err := h.usecase.Logout(c.Request.Context(), token); err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Me must run behind middleware.BearerAuth.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, pkg.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}
