package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/api/services"
)

// @Summary Dispatch a moderation action
// @Description Runs hide, restore, delete, feature or unfeature on one post. Rejected with 409 while another action for the same post is executing.
// @Tags actions
// @Accept json
// @Produce json
// @Param view_id path string true "View ID"
// @Param body body dto.ActionRequestDTO true "Action"
// @Success 200 {object} dto.ActionResultDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 409 {object} dto.ErrorResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/actions [post]
func DispatchActionHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ActionRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.Dispatch(c.Request.Context(), c.Param("view_id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Action state of a post
// @Tags actions
// @Produce json
// @Param view_id path string true "View ID"
// @Param post_id path string true "Post ID"
// @Success 200 {object} dto.ActionStatusDTO
// @Router /views/{view_id}/actions/{post_id} [get]
func ActionStatusHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ActionStatus(c.Param("view_id"), c.Param("post_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
