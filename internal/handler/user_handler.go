package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tvhub/internal/middleware"
	"github.com/tvhub/internal/repository"
	"github.com/tvhub/internal/service"
	"github.com/tvhub/pkg/response"
)

// UserHandler handles user profile requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List returns all users without credential fields
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}
	response.Success(c, users)
}

// Me returns the profile of the authenticated user
// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.Get(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to load user")
		return
	}

	response.Success(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"nametag":  user.Nametag,
		"email":    user.Email,
		"avatar":   user.Avatar,
	})
}

// ChangePassword verifies the current password and sets a new one
// PUT /users/:id
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Password        string `json:"password" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "fill in all fields")
		return
	}

	err := h.userService.ChangePassword(id, req.Password, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrPasswordMismatch), errors.Is(err, service.ErrWrongPassword):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "failed to update password")
		}
		return
	}

	response.Message(c, "password updated successfully")
}

// UpdateUserData replaces username, email and avatar
// PUT /users/update-userdata/:id
func (h *UserHandler) UpdateUserData(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Avatar   string `json:"avatar" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "fill in all fields")
		return
	}

	user, err := h.userService.UpdateUserData(id, req.Username, req.Email, req.Avatar)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrUsernameTaken):
			response.BadRequest(c, "username already exists")
		default:
			response.InternalError(c, "failed to update user")
		}
		return
	}

	response.Success(c, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"nametag":  user.Nametag,
		"email":    user.Email,
		"avatar":   user.Avatar,
	})
}

// Delete removes a user; ?cascade=true also removes their likes,
// favorites and playlists
// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cascade := c.Query("cascade") == "true"

	if err := h.userService.Delete(id, cascade); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to delete user")
		return
	}

	response.Message(c, "user deleted successfully")
}

// RegisterRoutes registers user routes. The profile route requires a
// bearer token.
func (h *UserHandler) RegisterRoutes(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/me", authMiddleware, h.Me)
		users.PUT("/update-userdata/:id", h.UpdateUserData)
		users.PUT("/:id", h.ChangePassword)
		users.DELETE("/:id", h.Delete)
	}
}
