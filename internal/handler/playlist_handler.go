package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tvhub/internal/repository"
	"github.com/tvhub/internal/service"
	"github.com/tvhub/pkg/response"
)

// PlaylistHandler handles playlist requests
type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler
func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService: playlistService,
	}
}

// Create adds a playlist for a user
// POST /playlists/createplaylist
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req struct {
		UserID uint   `json:"userId" binding:"required"`
		Name   string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId and name are required")
		return
	}

	playlist, err := h.playlistService.Create(req.UserID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, service.ErrPlaylistExists):
			response.BadRequest(c, "playlist with this name already exists")
		default:
			response.InternalError(c, "failed to create playlist")
		}
		return
	}

	response.Created(c, playlist)
}

// AddItem puts a channel into a playlist
// POST /playlists/addplaylist
func (h *PlaylistHandler) AddItem(c *gin.Context) {
	var req struct {
		PlaylistID uint `json:"playlistId" binding:"required"`
		ChannelID  uint `json:"channelId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "playlistId and channelId are required")
		return
	}

	if err := h.playlistService.AddItem(req.PlaylistID, req.ChannelID); err != nil {
		switch {
		case errors.Is(err, repository.ErrPlaylistNotFound):
			response.NotFound(c, "playlist not found")
		case errors.Is(err, repository.ErrChannelNotFound):
			response.NotFound(c, "channel not found")
		case errors.Is(err, service.ErrChannelInPlaylist):
			response.BadRequest(c, "channel is already in the playlist")
		default:
			response.InternalError(c, "failed to add channel to playlist")
		}
		return
	}

	response.Created(c, gin.H{"message": "channel added to playlist"})
}

// ListForUser returns the playlists owned by a user
// GET /playlists/listplaylist/:userId
func (h *PlaylistHandler) ListForUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	playlists, err := h.playlistService.ListForUser(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to list playlists")
		return
	}
	response.Success(c, playlists)
}

// Items returns the channels inside a playlist
// GET /playlists/playlist/:userId/:playlistId
func (h *PlaylistHandler) Items(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}

	channels, err := h.playlistService.Items(userID, playlistID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, repository.ErrPlaylistNotFound):
			response.NotFound(c, "playlist not found")
		default:
			response.InternalError(c, "failed to list playlist channels")
		}
		return
	}
	response.Success(c, channels)
}

// Rename changes a playlist name
// PUT /playlists/updateplaylist
func (h *PlaylistHandler) Rename(c *gin.Context) {
	var req struct {
		UserID     uint   `json:"userId" binding:"required"`
		PlaylistID uint   `json:"playlistId" binding:"required"`
		Name       string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId, playlistId and name are required")
		return
	}

	if err := h.playlistService.Rename(req.UserID, req.PlaylistID, req.Name); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, repository.ErrPlaylistNotFound):
			response.NotFound(c, "playlist not found")
		case errors.Is(err, service.ErrPlaylistExists):
			response.BadRequest(c, "playlist with this name already exists")
		default:
			response.InternalError(c, "failed to rename playlist")
		}
		return
	}

	response.Message(c, "playlist renamed successfully")
}

// RemoveItem takes a channel out of a playlist
// DELETE /playlists/deleteplaylistitem/:playlistId/:channelId
func (h *PlaylistHandler) RemoveItem(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		return
	}

	if err := h.playlistService.RemoveItem(playlistID, channelID); err != nil {
		switch {
		case errors.Is(err, repository.ErrPlaylistNotFound):
			response.NotFound(c, "playlist not found")
		case errors.Is(err, repository.ErrChannelNotFound):
			response.NotFound(c, "channel not found")
		case errors.Is(err, service.ErrChannelNotInPlaylist):
			response.BadRequest(c, "channel is not in the playlist")
		default:
			response.InternalError(c, "failed to remove channel from playlist")
		}
		return
	}

	response.Message(c, "channel removed from playlist")
}

// Delete removes a playlist; ?cascade=true also removes its items
// DELETE /playlists/deleteplaylist/:userId/:playlistId
func (h *PlaylistHandler) Delete(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}
	cascade := c.Query("cascade") == "true"

	if err := h.playlistService.Delete(userID, playlistID, cascade); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, repository.ErrPlaylistNotFound):
			response.NotFound(c, "playlist not found")
		default:
			response.InternalError(c, "failed to delete playlist")
		}
		return
	}

	response.Message(c, "playlist deleted successfully")
}

// RegisterRoutes registers playlist routes
func (h *PlaylistHandler) RegisterRoutes(r *gin.Engine) {
	playlists := r.Group("/playlists")
	{
		playlists.POST("/createplaylist", h.Create)
		playlists.POST("/addplaylist", h.AddItem)
		playlists.GET("/listplaylist/:userId", h.ListForUser)
		playlists.GET("/playlist/:userId/:playlistId", h.Items)
		playlists.PUT("/updateplaylist", h.Rename)
		playlists.DELETE("/deleteplaylistitem/:playlistId/:channelId", h.RemoveItem)
		playlists.DELETE("/deleteplaylist/:userId/:playlistId", h.Delete)
	}
}
