package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campusd-dev/campusd/internal/auth"
	"github.com/campusd-dev/campusd/internal/models"
	"github.com/campusd-dev/campusd/internal/roles"
)

const (
	bearerPrefix = "Bearer "
)

var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidAuthFormat = errors.New("invalid authorization header format")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUserNotFound      = errors.New("user not found")
)

// SessionData represents the authenticated session context for a request
type SessionData struct {
	UserID string     `json:"user_id"`
	Email  string     `json:"email"`
	Role   roles.Role `json:"role"`
}

func setSession(c *gin.Context, sessionData *SessionData) {
	c.Set("session", sessionData)
}

func GetSessionData(c *gin.Context) (*SessionData, bool) {
	session, exists := c.Get("session")
	if !exists {
		return nil, false
	}

	sessionData, ok := session.(*SessionData)
	return sessionData, ok
}

func extractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidAuthFormat
	}

	token := strings.TrimPrefix(authHeader, bearerPrefix)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

func respondWithError(c *gin.Context, log zerolog.Logger, statusCode int, err error, message string) {
	log.Warn().Err(err).Msg(message)
	c.JSON(statusCode, gin.H{"error": message})
	c.Abort()
}

// JWTAuthMiddleware validates JWT tokens and attaches the session to the
// request context
func JWTAuthMiddleware(db *gorm.DB, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, err := extractBearerToken(authHeader)
		if err != nil {
			var message string
			switch err {
			case ErrMissingAuthHeader:
				message = "Missing authorization header"
			case ErrInvalidAuthFormat:
				message = "Invalid authorization header format"
			case ErrEmptyToken:
				message = "Empty token"
			}
			respondWithError(c, log, http.StatusUnauthorized, err, message)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			respondWithError(c, log, http.StatusUnauthorized, ErrInvalidToken, "Invalid or expired token")
			return
		}

		// Verify user still exists
		var user models.User
		if err := db.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			respondWithError(c, log, http.StatusUnauthorized, ErrUserNotFound, "User not found")
			return
		}

		setSession(c, &SessionData{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
		})

		c.Next()
	}
}

// RoleRequiredMiddleware ensures the authenticated user holds one of the
// allowed roles. Must run after JWTAuthMiddleware: an unauthenticated
// request is rejected with 401 there before any role check happens here.
func RoleRequiredMiddleware(log zerolog.Logger, allowed ...roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData, exists := GetSessionData(c)
		if !exists {
			respondWithError(c, log, http.StatusUnauthorized, errors.New("no session"), "Unauthorized")
			return
		}

		if !roles.Member(sessionData.Role, allowed) {
			respondWithError(c, log, http.StatusForbidden, errors.New("insufficient role"), "Insufficient role")
			return
		}

		c.Next()
	}
}
