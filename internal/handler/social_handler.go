package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tvhub/internal/repository"
	"github.com/tvhub/internal/service"
	"github.com/tvhub/pkg/response"
)

// SocialHandler handles like and favorite requests
type SocialHandler struct {
	socialService *service.SocialService
}

// NewSocialHandler creates a new SocialHandler
func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// LikedChannels returns the channels a user liked
// GET /liked/liked/:userId
func (h *SocialHandler) LikedChannels(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	channels, err := h.socialService.LikedChannels(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to list liked channels")
		return
	}
	response.Success(c, channels)
}

// Like records that a user liked a channel
// POST /liked/like/:userId/:channelId
func (h *SocialHandler) Like(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		return
	}

	if err := h.socialService.Like(userID, channelID); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, repository.ErrChannelNotFound):
			response.NotFound(c, "channel not found")
		case errors.Is(err, service.ErrAlreadyLiked):
			response.BadRequest(c, "channel already liked")
		default:
			response.InternalError(c, "failed to like channel")
		}
		return
	}

	response.Created(c, gin.H{"message": "channel liked successfully"})
}

// Unlike removes a like
// DELETE /liked/unlike/:userId/:channelId
func (h *SocialHandler) Unlike(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		return
	}

	if err := h.socialService.Unlike(userID, channelID); err != nil {
		if errors.Is(err, service.ErrNotLiked) {
			response.BadRequest(c, "channel is not liked")
			return
		}
		response.InternalError(c, "failed to unlike channel")
		return
	}

	response.Message(c, "channel unliked successfully")
}

// ChannelsWithLikes returns every channel with its like count and likers
// GET /liked/channelswithlikes
func (h *SocialHandler) ChannelsWithLikes(c *gin.Context) {
	channels, err := h.socialService.ChannelsWithLikes()
	if err != nil {
		response.InternalError(c, "failed to list channels with likes")
		return
	}
	response.Success(c, channels)
}

// FavoriteChannels returns the channels a user favorited
// GET /favorite/favorites/:userId
func (h *SocialHandler) FavoriteChannels(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	channels, err := h.socialService.FavoriteChannels(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to list favorite channels")
		return
	}
	response.Success(c, channels)
}

// Favorite records that a user favorited a channel
// POST /favorite/favorites
func (h *SocialHandler) Favorite(c *gin.Context) {
	var req struct {
		UserID    uint `json:"userId" binding:"required"`
		ChannelID uint `json:"channelId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId and channelId are required")
		return
	}

	if err := h.socialService.Favorite(req.UserID, req.ChannelID); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, repository.ErrChannelNotFound):
			response.NotFound(c, "channel not found")
		case errors.Is(err, service.ErrAlreadyFavorited):
			response.BadRequest(c, "channel already favorited")
		default:
			response.InternalError(c, "failed to favorite channel")
		}
		return
	}

	response.Created(c, gin.H{"message": "channel favorited successfully"})
}

// Unfavorite removes a favorite
// DELETE /favorite/unfavorite/:userId/:channelId
func (h *SocialHandler) Unfavorite(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		return
	}

	if err := h.socialService.Unfavorite(userID, channelID); err != nil {
		if errors.Is(err, service.ErrNotFavorited) {
			response.BadRequest(c, "channel is not favorited")
			return
		}
		response.InternalError(c, "failed to unfavorite channel")
		return
	}

	response.Message(c, "channel unfavorited successfully")
}

// RegisterRoutes registers like and favorite routes
func (h *SocialHandler) RegisterRoutes(r *gin.Engine) {
	liked := r.Group("/liked")
	{
		liked.GET("/liked/:userId", h.LikedChannels)
		liked.GET("/channelswithlikes", h.ChannelsWithLikes)
		liked.POST("/like/:userId/:channelId", h.Like)
		liked.DELETE("/unlike/:userId/:channelId", h.Unlike)
	}

	favorite := r.Group("/favorite")
	{
		favorite.GET("/favorites/:userId", h.FavoriteChannels)
		favorite.POST("/favorites", h.Favorite)
		favorite.DELETE("/unfavorite/:userId/:channelId", h.Unfavorite)
	}
}
