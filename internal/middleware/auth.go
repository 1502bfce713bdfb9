package middleware

import (
	"net/http"

	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/apperr"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "currentUser"

// SessionCookieName carries the bearer string for the page flow. The API
// flow uses the Authorization header only.
const SessionCookieName = "token"

// Authenticated gates API routes: the Authorization header must resolve to a
// live user. On success the immutable user context is injected once.
func Authenticated(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// OptionalAuthenticated resolves the user context when credentials are
// presented but lets anonymous requests through. Used by public leaderboard
// routes whose payload varies per viewer.
func OptionalAuthenticated(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			user, err := auth.Authenticate(header)
			if err != nil {
				utils.AbortWithError(c, err)
				return
			}
			c.Set(contextUserKey, user)
		}
		c.Next()
	}
}

// AdminOnly gates admin API routes. Must run after Authenticated; a
// non-admin user gets a forbidden error, distinct from the unauthenticated
// case.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.AbortWithError(c, apperr.NotLoggedIn("authentication required"))
			return
		}
		if !user.IsAdmin {
			utils.AbortWithError(c, apperr.Forbidden("admin access required"))
			return
		}
		c.Next()
	}
}

// AuthenticatedWeb gates page routes: the session cookie must resolve to a
// live user, otherwise the browser is redirected to the sign-in page.
func AuthenticatedWeb(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}

		user, err := auth.AuthenticateToken(raw)
		if err != nil {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// AdminOnlyWeb gates admin page routes. A signed-in non-admin is silently
// sent home, unlike the unauthenticated redirect to the sign-in page.
func AdminOnlyWeb() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user context injected by an auth gate, or nil for
// anonymous requests.
func CurrentUser(c *gin.Context) *service.AuthenticatedUser {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*service.AuthenticatedUser)
	if !ok {
		return nil
	}
	return user
}
