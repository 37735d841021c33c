package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/handler/api"
	reqdto "vehicle-rental/internal/handler/dto/request"
	"vehicle-rental/internal/handler/middleware"
	"vehicle-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	BookingHandler *api.BookingHandler
	PaymentHandler *api.PaymentHandler
	NewRelic       *newrelic.Application       `optional:"true"`
	Idempotency    middleware.IdempotencyStore `optional:"true"`
}

func NewRouter(p RouterParams) error {
	if err := reqdto.RegisterValidations(); err != nil {
		return err
	}
	setupMiddleware(p.Engine, p.Config, p.Logger, p.NewRelic)
	setupRoutes(p)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, nrApp *newrelic.Application) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewRelic(nrApp))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	auth := p.AuthMiddleware
	idempotent := middleware.Idempotency(p.Idempotency, p.Config.Redis.IdempotencyTTL)
	adminOnly := auth.RequireRoleAtLeast(user.RoleAdmin)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(auth.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: p.BookingHandler.Create, Mw: []gin.HandlerFunc{idempotent}},
			{Method: http.MethodGet, Path: "", Handler: p.BookingHandler.List, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodGet, Path: "/my-bookings", Handler: p.BookingHandler.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: p.BookingHandler.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: p.BookingHandler.UpdateStatus, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.BookingHandler.Cancel},
			{Method: http.MethodGet, Path: "/:id/receipt", Handler: p.BookingHandler.Receipt},
		})

		payments := apiGroup.Group("/payments")
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/process", Handler: p.PaymentHandler.Process, Mw: []gin.HandlerFunc{idempotent}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
