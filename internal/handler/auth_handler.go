package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tvhub/internal/repository"
	"github.com/tvhub/internal/service"
	"github.com/tvhub/pkg/response"
)

// AuthHandler handles signup and login requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles user registration
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.authService.Signup(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUsername),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrPasswordTooWeak),
			errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrNametagTaken):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "failed to register user")
		}
		return
	}

	response.Created(c, session)
}

// Login handles user login by email and password
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "wrong password")
			return
		}
		response.InternalError(c, "failed to login")
		return
	}

	response.Success(c, session)
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}
