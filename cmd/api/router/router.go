package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"feed-admin/cmd/api/handlers"
	"feed-admin/cmd/api/metrics"
	"feed-admin/cmd/api/middleware"
	"feed-admin/cmd/api/services"
	_ "feed-admin/docs"
)

type Deps struct {
	Views *services.ViewService
	Admin *services.AdminService
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), metrics.PrometheusMiddleware())

	r.GET("/health", handlers.HealthHandler(deps.Admin))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1", middleware.OperatorToken())
	{
		api.POST("/views", handlers.CreateViewHandler(deps.Views))

		view := api.Group("/views/:view_id")
		view.GET("", handlers.GetViewHandler(deps.Views))
		view.DELETE("", handlers.CloseViewHandler(deps.Views))

		view.GET("/posts", handlers.GetPostsHandler(deps.Views))
		view.POST("/posts/filter", handlers.SetFilterHandler(deps.Views))
		view.POST("/posts/page", handlers.GoToPageHandler(deps.Views))
		view.POST("/posts/page-size", handlers.SetPageSizeHandler(deps.Views))
		view.POST("/posts/navigate", handlers.NavigateHandler(deps.Views))
		view.POST("/posts/refresh", handlers.RefreshPostsHandler(deps.Views))

		view.POST("/detail", handlers.SelectPostHandler(deps.Views))
		view.GET("/detail", handlers.GetDetailHandler(deps.Views))
		view.DELETE("/detail", handlers.ClearSelectionHandler(deps.Views))
		view.POST("/detail/tabs/:tab/activate", handlers.ActivateTabHandler(deps.Views))
		view.POST("/detail/tabs/:tab/more", handlers.LoadMoreHandler(deps.Views))

		view.POST("/actions", handlers.DispatchActionHandler(deps.Views))
		view.GET("/actions/:post_id", handlers.ActionStatusHandler(deps.Views))

		view.GET("/notifications", handlers.NotificationsHandler(deps.Views))

		api.GET("/stats", handlers.StatsHandler(deps.Admin))
		api.POST("/scores/recalculate", handlers.RecalculateScoresHandler(deps.Admin))
		api.GET("/overview", handlers.OverviewHandler(deps.Admin))
	}

	return r
}

// WithCORS wraps h for browser dashboards served from other origins.
// An empty origin list leaves h unchanged.
func WithCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		return h
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Span-Id"},
		AllowCredentials: true,
	}).Handler(h)
}
