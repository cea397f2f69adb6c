package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "estimaflow/docs"
	"estimaflow/internal/adapter/http/handlers"
	"estimaflow/internal/adapter/http/middleware"
	"estimaflow/internal/config"
	"estimaflow/internal/infrastructure/export"
	"estimaflow/internal/infrastructure/session"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	sessionSweepInterval = 5 * time.Minute
	shutdownTimeout      = 10 * time.Second
)

// Run wires the stores selected by cfg, serves the API and blocks until ctx is
// cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sessions := session.NewMemoryStore()
	sessions.StartJanitor(ctx, sessionSweepInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, st, sessions),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Global().Info().Str("port", cfg.Port).Str("store", cfg.StoreKind).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Global().Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(cfg *config.Config, st stores, sessions *session.MemoryStore) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg, st, sessions)
	return router
}

func getRoutes(router *gin.Engine, cfg *config.Config, st stores, sessions *session.MemoryStore) {
	estimationUseCase := usecase.NewEstimationUseCase(st.estimations)
	projectUseCase := usecase.NewProjectUseCase(st.projects)
	authUseCase := usecase.NewAuthUseCase(st.users, sessions, cfg.SessionTTL)
	dashboardUseCase := usecase.NewDashboardUseCase(st.projects, st.estimations)

	estimationHandler := handlers.NewEstimationHandler(estimationUseCase, export.NewEstimationWorkbook())
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	pricingHandler := handlers.NewPricingHandler(usecase.NewPricingUseCase(), cfg.WSAllowedOrigins)
	authHandler := handlers.NewAuthHandler(authUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMinute)
	requireAuth := middleware.BearerAuth(authUseCase)

	// Public
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, loginLimiter.Middleware(), requireAuth)

	// Authenticated
	private := v1.Group("", requireAuth)
	addEstimationRoutes(private, estimationHandler)
	addProjectRoutes(private, projectHandler)
	addPricingRoutes(private, pricingHandler)
	addDashboardRoutes(private, dashboardHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromGin(c).Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
