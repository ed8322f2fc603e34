package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tvhub/internal/repository"
	"github.com/tvhub/internal/service"
	"github.com/tvhub/pkg/response"
)

// ChannelHandler handles catalog requests
type ChannelHandler struct {
	channelService *service.ChannelService
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(channelService *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{
		channelService: channelService,
	}
}

// List returns all channels
// GET /channels
func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.channelService.List()
	if err != nil {
		response.InternalError(c, "failed to list channels")
		return
	}
	if len(channels) == 0 {
		response.NotFound(c, "no channels found")
		return
	}
	response.Success(c, channels)
}

// Get returns one channel
// GET /channels/:id
func (h *ChannelHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	channel, err := h.channelService.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			response.NotFound(c, "channel not found")
			return
		}
		response.InternalError(c, "failed to load channel")
		return
	}
	response.Success(c, channel)
}

// ListByCategoria returns the channels of a category
// GET /channels/categoria/:categoria
func (h *ChannelHandler) ListByCategoria(c *gin.Context) {
	channels, err := h.channelService.ListByCategoria(c.Param("categoria"))
	if err != nil {
		response.InternalError(c, "failed to list channels")
		return
	}
	if len(channels) == 0 {
		response.NotFound(c, "category not found")
		return
	}
	response.Success(c, channels)
}

// Create adds a channel to the catalog
// POST /channels
func (h *ChannelHandler) Create(c *gin.Context) {
	var req service.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	channel, err := h.channelService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrChannelExists) {
			response.BadRequest(c, "this channel already exists")
			return
		}
		response.InternalError(c, "failed to create channel")
		return
	}

	response.Created(c, gin.H{
		"message": fmt.Sprintf("channel %s created successfully", channel.Name),
		"channel": channel,
	})
}

// Update replaces the channel fields
// PUT /channels/:id
func (h *ChannelHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	channel, err := h.channelService.Update(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			response.NotFound(c, "channel not found")
			return
		}
		response.InternalError(c, "failed to update channel")
		return
	}

	response.Message(c, fmt.Sprintf("channel %s updated successfully", channel.Name))
}

// Delete removes a channel; ?cascade=true also removes likes, favorites
// and playlist items pointing at it
// DELETE /channels/:id
func (h *ChannelHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cascade := c.Query("cascade") == "true"

	if err := h.channelService.Delete(id, cascade); err != nil {
		if errors.Is(err, repository.ErrChannelNotFound) {
			response.NotFound(c, "channel not found")
			return
		}
		response.InternalError(c, "failed to delete channel")
		return
	}

	response.Message(c, "channel deleted successfully")
}

// DeleteAll removes every channel
// DELETE /channels/deletall
func (h *ChannelHandler) DeleteAll(c *gin.Context) {
	if err := h.channelService.DeleteAll(); err != nil {
		response.InternalError(c, "failed to delete channels")
		return
	}
	response.Message(c, "all channels deleted")
}

// RegisterRoutes registers channel routes
func (h *ChannelHandler) RegisterRoutes(r *gin.Engine) {
	channels := r.Group("/channels")
	{
		channels.GET("", h.List)
		channels.GET("/categoria/:categoria", h.ListByCategoria)
		channels.GET("/:id", h.Get)
		channels.POST("", h.Create)
		channels.PUT("/:id", h.Update)
		channels.DELETE("/deletall", h.DeleteAll)
		channels.DELETE("/:id", h.Delete)
	}
}
