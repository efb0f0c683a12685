package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-stay-engine/internal/domain/actor"
	"room-stay-engine/internal/handler/api"
	"room-stay-engine/internal/handler/middleware"
	"room-stay-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Rooms        *api.RoomHandler
	Bookings     *api.BookingHandler
	Stays        *api.StayHandler
	Availability *api.AvailabilityHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleOperator)}
	admin := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(actor.RoleAdmin)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Rooms.CreateRoom, Mw: admin},
			{Method: http.MethodGet, Path: "", Handler: h.Rooms.ListRooms},
			{Method: http.MethodGet, Path: "/:ref", Handler: h.Rooms.GetRoom},
			{Method: http.MethodPost, Path: "/:ref/ready", Handler: h.Rooms.MarkReady, Mw: operator},
			{Method: http.MethodPost, Path: "/:ref/out-of-service", Handler: h.Rooms.TakeOutOfService, Mw: operator},
			{Method: http.MethodPost, Path: "/:ref/back-in-service", Handler: h.Rooms.ReturnToService, Mw: operator},
			{Method: http.MethodPost, Path: "/:ref/maintenance", Handler: h.Rooms.ScheduleMaintenance, Mw: admin},
		})

		addRoutes(apiGroup.Group("/maintenance"), []route{
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Rooms.ClearMaintenance, Mw: admin},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.CreateBooking, Mw: operator},
			{Method: http.MethodPost, Path: "/validate", Handler: h.Bookings.ValidateBooking},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.GetBooking},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.CancelBooking, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Bookings.ConvertToStay, Mw: operator},
		})

		addRoutes(apiGroup.Group("/stays"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Stays.CheckIn, Mw: operator},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Stays.GetStay},
			{Method: http.MethodPost, Path: "/:id/orders", Handler: h.Stays.LinkOrder, Mw: operator},
			{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Stays.Checkout, Mw: operator},
			{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Stays.GetInvoice},
		})

		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Availability.RoomAvailability},
			{Method: http.MethodGet, Path: "/summary", Handler: h.Availability.MonthSummary},
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
