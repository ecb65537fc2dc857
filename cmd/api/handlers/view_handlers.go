package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feed-admin/cmd/api/dto"
	"feed-admin/cmd/api/httpclient"
	"feed-admin/cmd/api/services"
)

// CreateViewHandler godoc
// @Summary      Mount a dashboard view
// @Description  Creates view-local state for one operator and loads the first post page
// @Tags         views
// @Produce      json
// @Success      201  {object}  dto.ViewDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /views [post]
func CreateViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		out, err := svc.CreateView(ctx, httpclient.BearerTokenFromContext(ctx))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary Get a view
// @Tags views
// @Produce json
// @Param view_id path string true "View ID"
// @Success 200 {object} dto.ViewDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /views/{view_id} [get]
func GetViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.View(c.Param("view_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Close a view
// @Description Discards all list state of the view
// @Tags views
// @Produce json
// @Param view_id path string true "View ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /views/{view_id} [delete]
func CloseViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.CloseView(c.Param("view_id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "view closed"})
	}
}

// -------------------- posts --------------------

// @Summary Post table state
// @Tags posts
// @Produce json
// @Param view_id path string true "View ID"
// @Success 200 {object} dto.PostsViewDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/posts [get]
func GetPostsHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Posts(c.Param("view_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Change the post filter
// @Description Replaces the table with page 0 of the new status/search filter. Status is ACTIVE, HIDDEN, DELETED or empty for all.
// @Tags posts
// @Accept json
// @Produce json
// @Param view_id path string true "View ID"
// @Param body body dto.FilterRequestDTO true "Filter"
// @Success 200 {object} dto.PostsViewDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/posts/filter [post]
func SetFilterHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FilterRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.SetFilter(c.Request.Context(), c.Param("view_id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Jump to a page
// @Description The page index is 0-based and clamped to the existing pages
// @Tags posts
// @Accept json
// @Produce json
// @Param view_id path string true "View ID"
// @Param body body dto.PageRequestDTO true "Page"
// @Success 200 {object} dto.PostsViewDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/posts/page [post]
func GoToPageHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.GoToPage(c.Request.Context(), c.Param("view_id"), req.Page)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Change the page size
// @Description Goes back to page 0
// @Tags posts
// @Accept json
// @Produce json
// @Param view_id path string true "View ID"
// @Param body body dto.PageSizeRequestDTO true "Page size"
// @Success 200 {object} dto.PostsViewDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/posts/page-size [post]
func SetPageSizeHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PageSizeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.SetPageSize(c.Request.Context(), c.Param("view_id"), req.Size)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Navigate the post table
// @Tags posts
// @Accept json
// @Produce json
// @Param view_id path string true "View ID"
// @Param body body dto.NavigateRequestDTO true "first, prev, next or last"
// @Success 200 {object} dto.PostsViewDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/posts/navigate [post]
func NavigateHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NavigateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.Navigate(c.Request.Context(), c.Param("view_id"), req.Direction)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Refresh the current page
// @Tags posts
// @Produce json
// @Param view_id path string true "View ID"
// @Success 200 {object} dto.PostsViewDTO
// @Router /views/{view_id}/posts/refresh [post]
func RefreshPostsHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.RefreshPosts(c.Request.Context(), c.Param("view_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// -------------------- detail --------------------

// @Summary Select a post
// @Description Loads the post and arms its likes/comments/shares tabs; tabs load on activation
// @Tags detail
// @Accept json
// @Produce json
// @Param view_id path string true "View ID"
// @Param body body dto.SelectPostRequestDTO true "Post"
// @Success 200 {object} dto.DetailDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/detail [post]
func SelectPostHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SelectPostRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		out, err := svc.SelectPost(c.Request.Context(), c.Param("view_id"), req.PostID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Detail panel state
// @Tags detail
// @Produce json
// @Param view_id path string true "View ID"
// @Success 200 {object} dto.DetailDTO
// @Router /views/{view_id}/detail [get]
func GetDetailHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Detail(c.Param("view_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Close the detail panel
// @Tags detail
// @Produce json
// @Param view_id path string true "View ID"
// @Success 200 {object} dto.MessageResponseDTO
// @Router /views/{view_id}/detail [delete]
func ClearSelectionHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ClearSelection(c.Param("view_id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "selection cleared"})
	}
}

// @Summary Activate a detail tab
// @Description Loads the first page of the tab the first time it is activated for the selected post
// @Tags detail
// @Produce json
// @Param view_id path string true "View ID"
// @Param tab path string true "likes, comments or shares"
// @Success 200 {object} dto.DetailDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 409 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/detail/tabs/{tab}/activate [post]
func ActivateTabHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ActivateTab(c.Request.Context(), c.Param("view_id"), c.Param("tab"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Load more of a detail tab
// @Tags detail
// @Produce json
// @Param view_id path string true "View ID"
// @Param tab path string true "likes, comments or shares"
// @Success 200 {object} dto.DetailDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 409 {object} dto.ErrorResponseDTO
// @Router /views/{view_id}/detail/tabs/{tab}/more [post]
func LoadMoreHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.LoadMore(c.Request.Context(), c.Param("view_id"), c.Param("tab"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Drain notifications
// @Description Returns pending notifications oldest first and clears them
// @Tags views
// @Produce json
// @Param view_id path string true "View ID"
// @Success 200 {object} dto.NotificationsDTO
// @Router /views/{view_id}/notifications [get]
func NotificationsHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Notifications(c.Param("view_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
