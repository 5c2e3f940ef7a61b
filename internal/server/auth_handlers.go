package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusd-dev/campusd/internal/auth"
	"github.com/campusd-dev/campusd/internal/models"
	"github.com/campusd-dev/campusd/internal/roles"
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	EnrollmentID string `json:"enrollment_id" binding:"required,alphanum,min=3"`
	Department   string `json:"department" binding:"required"`
	Role         string `json:"role" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
}

// RegisterResponse carries the registration outcome. Registration never
// logs the new account in; the client logs in explicitly afterwards.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token string      `json:"token"`
	User  *UserDetail `json:"user"`
}

// UserDetail represents user information returned in responses
type UserDetail struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         roles.Role `json:"role"`
	EnrollmentID string     `json:"enrollment_id"`
	Department   string     `json:"department"`
	CreatedAt    time.Time  `json:"created_at"`
}

func userDetail(user *models.User) *UserDetail {
	return &UserDetail{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
		EnrollmentID: user.EnrollmentID,
		Department:   user.Department,
		CreatedAt:    user.CreatedAt,
	}
}

// register creates a new account. Self-registration is limited to the
// student and faculty roles; admins are provisioned out of band.
func (s *Server) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := roles.Normalize(roles.Role(req.Role))
	if role != roles.Student && role != roles.Faculty {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be STUDENT or FACULTY"})
		return
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to check existing email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Role:         role,
		EnrollmentID: req.EnrollmentID,
		Department:   req.Department,
	}

	if err := s.db.Create(user).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Str("role", string(user.Role)).Msg("User registered")

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "Registration Successful! Please Login.",
	})
}

// login authenticates with email and password
func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := auth.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	s.logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("User logged in")

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  userDetail(&user),
	})
}

// getCurrentUser returns the authenticated user's record
func (s *Server) getCurrentUser(c *gin.Context) {
	sessionData, exists := GetSessionData(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := s.db.Where("id = ?", sessionData.UserID).First(&user).Error; err != nil {
		s.logger.Error().Err(err).Str("user_id", sessionData.UserID).Msg("Failed to find user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, userDetail(&user))
}

// listUsers returns the user directory (admin only)
func (s *Server) listUsers(c *gin.Context) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	userDetails := make([]*UserDetail, len(users))
	for i := range users {
		userDetails[i] = userDetail(&users[i])
	}

	c.JSON(http.StatusOK, userDetails)
}
