package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/micromarket/backend/internal/repo"
	"github.com/micromarket/backend/internal/tokens"
)

const (
	CtxUserID   = "user_id"
	CtxUserType = "user_type"
)

// BearerAuth verifies the Authorization header and loads the token's user, so
// protected handlers always see a user that still exists in the store.
func BearerAuth(secret []byte, r *repo.GormRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			claims, err := tokens.Parse(raw, secret)
			if err != nil {
				if errors.Is(err, tokens.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := r.GetUserByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, repo.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
			}

			c.Set(CtxUserID, user.ID.String())
			c.Set(CtxUserType, user.UserType)

			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
