package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/3zshihri-ux/warehouse-management-system1/internal/users"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgBadCredentials = "بيانات الدخول غير صحيحة"
	msgLoggedOut      = "تم تسجيل الخروج"
)

type Handler struct {
	users    users.UserRepository
	sessions *security.SessionManager
	log      *zap.Logger
}

func NewHandler(repo users.UserRepository, sessions *security.SessionManager, log *zap.Logger) *Handler {
	return &Handler{
		users:    repo,
		sessions: sessions,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)
}

// Home sends the browser to the dashboard when the session cookie resolves
// to a live user, and to the login page otherwise.
func (h *Handler) Home(c *gin.Context) {
	token, err := c.Cookie(security.SessionCookieName)
	if err == nil && token != "" {
		if claims, err := h.sessions.Verify(token); err == nil {
			if user, err := h.users.GetActiveUserByEmail(claims.Email); err == nil && user != nil {
				c.Redirect(http.StatusFound, "/dashboard")
				return
			}
		}
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Msg": c.Query("msg"),
	})
}

func (h *Handler) Login(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.PostForm("email")))
	password := c.PostForm("password")

	user, err := h.users.GetActiveUserByEmail(email)
	if err != nil {
		h.log.Error("Failed to look up user on login", zap.Error(err))
	}
	if user == nil || !security.VerifyPassword(password, user.PasswordHash) {
		c.Redirect(http.StatusFound, "/login?msg="+url.QueryEscape(msgBadCredentials))
		return
	}

	token, err := h.sessions.Sign(user.Email, user.Role)
	if err != nil {
		h.log.Error("Failed to sign session token", zap.Error(err))
		c.Redirect(http.StatusFound, "/login?msg="+url.QueryEscape(msgBadCredentials))
		return
	}

	c.SetCookie(security.SessionCookieName, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(security.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login?msg="+url.QueryEscape(msgLoggedOut))
}
