package security

import (
	"net/http"

	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "currentUser"

// UserResolver maps a verified session identity back to a live user row.
type UserResolver interface {
	GetActiveUserByEmail(email string) (*models.User, error)
}

// SessionMiddleware resolves the session cookie to a User and stores it in
// the request context. Any failure redirects to the login page, never an
// error body.
func SessionMiddleware(sessions *SessionManager, resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		user, err := resolver.GetActiveUserByEmail(claims.Email)
		if err != nil || user == nil {
			redirectToLogin(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by SessionMiddleware, or nil on
// unprotected routes.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
