package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tvhub/internal/service"
	"github.com/tvhub/pkg/response"
)

// AnalyticsHandler exposes the catalog engagement reports
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// ChannelPerformance returns per-channel like and favorite counts
// GET /analytics/channel-performance
func (h *AnalyticsHandler) ChannelPerformance(c *gin.Context) {
	stats, err := h.analyticsService.ChannelPerformance(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to compute channel performance")
		return
	}
	response.Success(c, stats)
}

// TopUsersByLikes ranks users by likes given
// GET /analytics/top-users-likes
func (h *AnalyticsHandler) TopUsersByLikes(c *gin.Context) {
	ranks, err := h.analyticsService.TopUsersByLikes()
	if err != nil {
		response.InternalError(c, "failed to rank users")
		return
	}
	response.Success(c, ranks)
}

// PopularCategories rolls engagement up by category
// GET /analytics/popular-categories
func (h *AnalyticsHandler) PopularCategories(c *gin.Context) {
	stats, err := h.analyticsService.PopularCategories()
	if err != nil {
		response.InternalError(c, "failed to compute popular categories")
		return
	}
	response.Success(c, stats)
}

// LikesEvolution returns the monthly like series
// GET /analytics/likes-evolution
func (h *AnalyticsHandler) LikesEvolution(c *gin.Context) {
	series, err := h.analyticsService.LikesEvolution()
	if err != nil {
		response.InternalError(c, "failed to compute likes evolution")
		return
	}
	response.Success(c, series)
}

// RegistrationsEvolution returns the monthly signup series
// GET /analytics/registrations-evolution
func (h *AnalyticsHandler) RegistrationsEvolution(c *gin.Context) {
	series, err := h.analyticsService.RegistrationsEvolution()
	if err != nil {
		response.InternalError(c, "failed to compute registrations evolution")
		return
	}
	response.Success(c, series)
}

// MostLikedChannel returns the channel with the most likes
// GET /analytics/most-liked-channel
func (h *AnalyticsHandler) MostLikedChannel(c *gin.Context) {
	channel, err := h.analyticsService.MostLikedChannel()
	if err != nil {
		if errors.Is(err, service.ErrNoEngagement) {
			response.NotFound(c, "no likes recorded yet")
			return
		}
		response.InternalError(c, "failed to compute most liked channel")
		return
	}
	response.Success(c, channel)
}

// MostFavoritedChannel returns the channel with the most favorites
// GET /analytics/most-favorited-channel
func (h *AnalyticsHandler) MostFavoritedChannel(c *gin.Context) {
	channel, err := h.analyticsService.MostFavoritedChannel()
	if err != nil {
		if errors.Is(err, service.ErrNoEngagement) {
			response.NotFound(c, "no favorites recorded yet")
			return
		}
		response.InternalError(c, "failed to compute most favorited channel")
		return
	}
	response.Success(c, channel)
}

// RegisterRoutes registers analytics routes
func (h *AnalyticsHandler) RegisterRoutes(r *gin.Engine) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/channel-performance", h.ChannelPerformance)
		analytics.GET("/top-users-likes", h.TopUsersByLikes)
		analytics.GET("/popular-categories", h.PopularCategories)
		analytics.GET("/likes-evolution", h.LikesEvolution)
		analytics.GET("/registrations-evolution", h.RegistrationsEvolution)
		analytics.GET("/most-liked-channel", h.MostLikedChannel)
		analytics.GET("/most-favorited-channel", h.MostFavoritedChannel)
	}
}
