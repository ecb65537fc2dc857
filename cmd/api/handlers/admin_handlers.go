package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"feed-admin/cmd/api/services"
)

// @Summary Feed statistics
// @Description Aggregate post counts from the feed service
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StatsDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /stats [get]
func StatsHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Stats(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Trigger score recalculation
// @Description The feed service recalculates asynchronously; only an acknowledgement is returned
// @Tags admin
// @Produce json
// @Success 202 {object} dto.MessageResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /scores/recalculate [post]
func RecalculateScoresHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.RecalculateScores(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, out)
	}
}

// @Summary Dashboard overview
// @Description Stats and the first post page, loaded concurrently; each part reports its own error
// @Tags admin
// @Produce json
// @Success 200 {object} dto.OverviewDTO
// @Router /overview [get]
func OverviewHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Overview(c.Request.Context()))
	}
}

// HealthHandler reports whether the feed service is reachable.
func HealthHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := svc.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "feed_service": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
