package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/3zshihri-ux/warehouse-management-system1/pkg/models"
	"github.com/3zshihri-ux/warehouse-management-system1/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetActiveUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) PersistUser(email, passwordHash, role string) error {
	args := m.Called(email, passwordHash, role)
	return args.Error(0)
}

func newLoginRouter(repo *MockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := security.NewSessionManager("test-secret", time.Hour)
	handler := NewHandler(repo, sessions, zap.NewNop())

	router := gin.New()
	router.POST("/login", handler.Login)
	router.GET("/logout", handler.Logout)
	return router
}

func postLogin(router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginRedirectsUnknownUserToLoginWithMessage(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetActiveUserByEmail", "nobody@example.com").Return(nil, nil).Once()

	recorder := postLogin(newLoginRouter(repo), "nobody@example.com", "whatever")

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Location"), "/login?msg=")
	repo.AssertExpectations(t)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := security.HashPassword("correct-password")
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetActiveUserByEmail", "admin@example.com").
		Return(&models.User{ID: 1, Email: "admin@example.com", PasswordHash: hash, Role: "admin", IsActive: true}, nil).Once()

	recorder := postLogin(newLoginRouter(repo), "admin@example.com", "wrong-password")

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Location"), "/login?msg=")
	repo.AssertExpectations(t)
}

func TestLoginNormalizesEmailAndSetsSessionCookie(t *testing.T) {
	hash, err := security.HashPassword("correct-password")
	assert.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetActiveUserByEmail", "admin@example.com").
		Return(&models.User{ID: 1, Email: "admin@example.com", PasswordHash: hash, Role: "admin", IsActive: true}, nil).Once()

	recorder := postLogin(newLoginRouter(repo), "  Admin@Example.COM ", "correct-password")

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/dashboard", recorder.Header().Get("Location"))

	cookies := recorder.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == security.SessionCookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	repo.AssertExpectations(t)
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	repo := new(MockUserRepository)
	router := newLoginRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Location"), "/login?msg=")

	cookies := recorder.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, security.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}
