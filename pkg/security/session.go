package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookieName = "wms_session"

// SessionManager signs and verifies the session token carried in the
// browser cookie. The token is an HS256 JWT holding the authenticated
// user's email and role.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

type SessionClaims struct {
	Email string
	Role  string
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *SessionManager) Sign(email, role string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SessionManager) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid session claims")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("session token missing email claim")
	}
	role, _ := claims["role"].(string)

	return &SessionClaims{Email: email, Role: role}, nil
}
