// utils/auth.go
package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"hairlab-backoffice/models"
)

const (
	SessionCookie  = "session"
	authContextKey = "auth"
)

var ErrInvalidSession = errors.New("invalid session")

// SessionClaims is the payload of the session token handed to the browser.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for sessionID valid for ttl.
func GenerateSessionToken(secret, sessionID, role string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set")
	}
	now := time.Now()
	expires := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		SessionID: sessionID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	return signed, expires, err
}

func ParseSessionToken(secret, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// TokenExpiry reads the exp claim of a backend token without verifying it.
// The backend owns that key; this only bounds how long the session is kept.
func TokenExpiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// SessionResolver turns a session token into the caller's identity.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.AuthContext, error)
}

func sessionToken(c *gin.Context) string {
	tokenString := c.GetHeader("Authorization")
	if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
		return tokenString[7:]
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware requires a live session, either as a bearer token or the
// session cookie, and puts its AuthContext on the request.
func AuthMiddleware(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			RespondWithError(c, http.StatusUnauthorized, "Authorization required")
			return
		}

		auth, err := sessions.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			RespondWithError(c, http.StatusUnauthorized, "Session expired, please log in again")
			return
		}

		c.Set(authContextKey, auth)
		c.Set("userId", auth.User.ID)
		c.Set("role", auth.User.Role)
		c.Next()
	}
}

// CurrentAuth returns the AuthContext placed by AuthMiddleware.
func CurrentAuth(c *gin.Context) (*models.AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return nil, false
	}
	auth, ok := v.(*models.AuthContext)
	return auth, ok && auth != nil
}

// DenyRoles rejects callers whose role is one of roles.
func DenyRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := CurrentAuth(c)
		if !ok {
			RespondWithError(c, http.StatusUnauthorized, "Authorization required")
			return
		}
		for _, r := range roles {
			if auth.Role() == r {
				RespondWithError(c, http.StatusForbidden, "You do not have access to this page")
				return
			}
		}
		c.Next()
	}
}
