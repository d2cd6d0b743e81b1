package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-ops/internal/handler/api"
	"hotel-ops/internal/handler/middleware"
	"hotel-ops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Room         *api.RoomHandler
	Booking      *api.BookingHandler
	Housekeeping *api.HousekeepingHandler
	Customer     *api.CustomerHandler
	Food         *api.FoodHandler
	File         *api.FileHandler
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
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update},
				{Method: http.MethodPost, Path: "/:id/close", Handler: h.Booking.Close},
			})
		}

		tasks := apiGroup.Group("/housekeeping/tasks")
		tasks.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tasks, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Housekeeping.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Housekeeping.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Housekeeping.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Housekeeping.Update},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: h.Housekeeping.Advance},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Housekeeping.Delete},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete},
			})
		}

		foods := apiGroup.Group("/foods")
		foods.Use(authMiddleware.RequireAuth())
		{
			addRoutes(foods, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Food.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Food.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Food.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Food.Update},
				{Method: http.MethodPost, Path: "/:id/image", Handler: h.Food.UploadImage},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Food.Delete},
			})
		}

		files := apiGroup.Group("/files")
		files.Use(authMiddleware.RequireAuth())
		{
			files.GET("/*key", h.File.Serve)
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
