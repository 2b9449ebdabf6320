package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edusport/internal/apperrors"
	"edusport/internal/models"
	"edusport/internal/session"
	"edusport/internal/store"
)

const userContextKey = "currentUser"

// CurrentUser returns the authenticated user stashed by RequireAuth.
func CurrentUser(c echo.Context) (models.User, bool) {
	user, ok := c.Get(userContextKey).(models.User)
	return user, ok
}

// RequireAuth resolves the session cookie to a user and stores it in the
// request context. Stale cookies are cleared on the way out.
func RequireAuth(sessions *session.Store, db *store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return apperrors.Unauthorized("Unauthorized")
			}

			userID, ok := sessions.Get(cookie.Value)
			if !ok {
				clearSessionCookie(c)
				return apperrors.Unauthorized("Unauthorized")
			}

			user, ok := db.GetUser(userID)
			if !ok || !user.Active {
				sessions.Delete(cookie.Value)
				clearSessionCookie(c)
				return apperrors.Unauthorized("Unauthorized")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireRole gates a route to users whose role name is in the allow list.
// It must run after RequireAuth.
func RequireRole(db *store.Store, names ...models.RoleName) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return apperrors.Unauthorized("Unauthorized")
			}
			role, ok := db.GetRole(user.RoleID)
			if !ok {
				return apperrors.Forbidden("Forbidden")
			}
			for _, name := range names {
				if role.Name == name {
					return next(c)
				}
			}
			return apperrors.Forbidden("Forbidden")
		}
	}
}

// IsAdmin reports whether the context user has the admin role.
func IsAdmin(c echo.Context, db *store.Store) bool {
	user, ok := CurrentUser(c)
	if !ok {
		return false
	}
	role, ok := db.GetRole(user.RoleID)
	return ok && role.Name == models.RoleAdmin
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
}
