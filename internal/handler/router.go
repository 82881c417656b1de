package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbooking/internal/handler/api"
	"fitbooking/internal/handler/middleware"
	"fitbooking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, classHandler *api.ClassHandler, bookingHandler *api.BookingHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, classHandler, bookingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, classHandler *api.ClassHandler, bookingHandler *api.BookingHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		classes := apiGroup.Group("/classes")
		{
			addRoutes(classes, []route{
				{Method: http.MethodGet, Path: "", Handler: classHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: classHandler.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: classHandler.Availability},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/book", Handler: bookingHandler.Create},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListByEmail},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
