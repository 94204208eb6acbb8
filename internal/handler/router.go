package handler

import (
	"net/http"

	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/handler/api"
	"parking-reservation/internal/handler/middleware"
	"parking-reservation/internal/infra/ratelimit"
	"parking-reservation/internal/observability/metrics"
	"parking-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Auth        *api.AuthHandler
	Lot         *api.LotHandler
	Reservation *api.ReservationHandler
	User        *api.UserHandler
	Consistency *api.ConsistencyHandler

	AuthMiddleware *middleware.AuthMiddleware
	Logger         *middleware.Logger
	Limiter        ratelimit.Limiter
	Metrics        *metrics.Metrics
}

func NewRouter(engine *gin.Engine, cfg config.Config, p RouterParams) {
	setupMiddleware(engine, cfg, p)
	setupRoutes(engine, cfg, p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.MetricsMiddleware(p.Metrics))
	engine.Use(p.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, p RouterParams) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	loginLimit := middleware.RateLimit(p.Limiter, middleware.ByClientIP("login"),
		cfg.RateLimit.LoginAttempts, cfg.RateLimit.Window)
	resetLimit := middleware.RateLimit(p.Limiter, middleware.ByClientIP("reset"),
		cfg.RateLimit.LoginAttempts, cfg.RateLimit.Window)
	bookingLimit := middleware.RateLimit(p.Limiter, middleware.ByUser("booking"),
		cfg.RateLimit.BookingBurst, cfg.RateLimit.Window)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login, Mw: []gin.HandlerFunc{loginLimit}},
				{Method: http.MethodPost, Path: "/reset-password", Handler: p.Auth.ResetPassword, Mw: []gin.HandlerFunc{resetLimit}},
			})

			authRequired := auth.Group("")
			authRequired.Use(p.AuthMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(p.AuthMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/lots", Handler: p.Lot.List},
				{Method: http.MethodGet, Path: "/lots/:id", Handler: p.Lot.Get},
				{Method: http.MethodPost, Path: "/lots/:id/reservations", Handler: p.Reservation.Book, Mw: []gin.HandlerFunc{bookingLimit}},
				{Method: http.MethodGet, Path: "/reservations", Handler: p.Reservation.List},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: p.Reservation.Get},
				{Method: http.MethodPost, Path: "/reservations/:id/release", Handler: p.Reservation.Release},
				{Method: http.MethodPut, Path: "/users/me", Handler: p.User.UpdateProfile},
				{Method: http.MethodDelete, Path: "/users/me", Handler: p.User.DeactivateSelf},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(p.AuthMiddleware.RequireAuth(), p.AuthMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/lots", Handler: p.Lot.Create},
				{Method: http.MethodPut, Path: "/lots/:id", Handler: p.Lot.Update},
				{Method: http.MethodPost, Path: "/lots/:id/toggle", Handler: p.Lot.Toggle},
				{Method: http.MethodGet, Path: "/lots/:id/spots", Handler: p.Lot.ListSpots},
				{Method: http.MethodDelete, Path: "/lots/:id/spots/:number", Handler: p.Lot.DeleteSpot},
				{Method: http.MethodGet, Path: "/users", Handler: p.User.List},
				{Method: http.MethodGet, Path: "/users/:id", Handler: p.User.Get},
				{Method: http.MethodPost, Path: "/users/:id/toggle", Handler: p.User.Toggle},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: p.Reservation.AdminGet},
				{Method: http.MethodGet, Path: "/consistency", Handler: p.Consistency.Check},
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
