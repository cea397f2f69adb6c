package middleware

import (
	"errors"
	"net/http"
	"strings"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase"
	"estimaflow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const currentUserKey = "current_user"

var errInvalidAuthHeader = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Expected header Authorization: Bearer <token>", http.StatusUnauthorized)

// BearerAuth resolves the bearer token to a user through the auth use case.
// Missing, unknown and expired tokens are rejected with 401.
func BearerAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(errInvalidAuthHeader.HTTPStatus, errInvalidAuthHeader.ToHTTPError())
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := pkg.ErrUnauthorized
			if !isSessionError(err) {
				logger.FromGin(c).Error().Err(err).Msg("session lookup failed")
				appErr = pkg.ErrInternal
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(currentUserKey, user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// Browsers cannot set headers on websocket upgrades, so those may pass the
// token as the access_token query parameter instead.
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		if websocket.IsWebSocketUpgrade(c.Request) {
			token := strings.TrimSpace(c.Query("access_token"))
			return token, token != ""
		}
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// CurrentUser returns the user stored by BearerAuth.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return entities.User{}, false
	}
	u, ok := v.(entities.User)
	return u, ok
}

func isSessionError(err error) bool {
	return errors.Is(err, usecase.ErrInvalidSession)
}
