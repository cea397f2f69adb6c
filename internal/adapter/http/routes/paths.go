package routes

import (
	"net/http"

	"estimaflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing        = "/ping"
	PathAuth        = "/auth"
	PathEstimations = "/estimations"
	PathProjects    = "/projects"
	PathPricing     = "/pricing"
	PathDashboard   = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, limit, requireAuth gin.HandlerFunc) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", limit, h.Register)
		auth.POST("/login", limit, h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", requireAuth, h.Me)
	}
}

func addEstimationRoutes(rg *gin.RouterGroup, h *handlers.EstimationHandler) {
	estimations := rg.Group(PathEstimations)
	{
		estimations.GET("", h.List)
		estimations.POST("", h.Create)
		estimations.GET("/:id", h.Get)
		// json-server accepted both verbs as a whole-object replace.
		estimations.PUT("/:id", h.Replace)
		estimations.PATCH("/:id", h.Replace)
		estimations.DELETE("/:id", h.Delete)
		estimations.GET("/:id/totals", h.Totals)
		estimations.GET("/:id/export", h.Export)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.List)
		projects.POST("", h.Create)
		projects.GET("/statuses", h.Statuses)
		projects.GET("/:id", h.Get)
		projects.PUT("/:id", h.Replace)
		projects.PATCH("/:id", h.Replace)
		projects.DELETE("/:id", h.Delete)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/preview", h.Preview)
		pricing.GET("/live", h.Live)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard, h.Summary)
}
