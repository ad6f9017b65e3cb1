package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"ortomat-backend/internal/device"
	"ortomat-backend/internal/domain/staff"
	"ortomat-backend/internal/handler/api"
	"ortomat-backend/internal/handler/middleware"
	"ortomat-backend/internal/pkg/config"
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
	Gateway        *device.Gateway

	Payments *api.PaymentHandler
	Lockers  *api.LockerHandler
	Cells    *api.CellHandler
	Devices  *api.DeviceHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	auth := p.AuthMiddleware

	engine.GET("/health", healthCheck)
	// controllers authenticate with their own token during the handshake
	engine.GET("/ws/device", gin.WrapH(p.Gateway))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/webhook/:provider", Handler: p.Payments.Webhook},
				{Method: http.MethodPost, Path: "", Handler: p.Payments.Initiate},
				{Method: http.MethodPost, Path: "/:invoiceId/sync", Handler: p.Payments.Sync,
					Mw: []gin.HandlerFunc{auth.RequireAuth(), auth.RequireRole(staff.RoleAdmin)}},
			})
		}

		lockers := apiGroup.Group("/lockers")
		{
			addRoutes(lockers, []route{
				{Method: http.MethodGet, Path: "/:id/cells", Handler: p.Lockers.ListCells},
			})

			staffOnly := lockers.Group("")
			staffOnly.Use(auth.RequireAuth())
			addRoutes(staffOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Lockers.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Lockers.Get},
				{Method: http.MethodGet, Path: "/:id/cells/:number/history", Handler: p.Lockers.CellHistory},
				{Method: http.MethodPost, Path: "/:id/cells/:number/refill", Handler: p.Cells.Refill,
					Mw: []gin.HandlerFunc{auth.RequireRole(staff.RoleCourier)}},
				{Method: http.MethodPost, Path: "/:id/cells/:number/fill", Handler: p.Cells.Fill,
					Mw: []gin.HandlerFunc{auth.RequireRole(staff.RoleCourier)}},
			})

			admin := lockers.Group("")
			admin.Use(auth.RequireAuth(), auth.RequireRole(staff.RoleAdmin))
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Lockers.Create},
				{Method: http.MethodPost, Path: "/:id/cells/:number/open", Handler: p.Cells.Open},
				{Method: http.MethodPost, Path: "/:id/cells/:number/assign", Handler: p.Cells.Assign},
				{Method: http.MethodPost, Path: "/:id/cells/:number/unassign", Handler: p.Cells.Unassign},
			})
		}

		devices := apiGroup.Group("/devices")
		devices.Use(auth.RequireAuth(), auth.RequireRole(staff.RoleAdmin))
		{
			addRoutes(devices, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Devices.List},
			})
		}
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
