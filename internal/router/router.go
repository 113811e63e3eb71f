package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"studentboard/internal/auth"
	"studentboard/internal/config"
	"studentboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	resourceHandler *handler.ResourceHandler,
	searchHandler *handler.SearchHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	authRoutes := e.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)

	// Protected routes: the access gate runs before every handler.
	// Echo matches static segments before params, so /api/search does not
	// collide with /api/:type.
	api := e.Group("/api", auth.Gate(cfg.JWTSecret))

	api.GET("/search", searchHandler.Search)

	api.GET("/:type", resourceHandler.List)
	api.POST("/:type", resourceHandler.Create, auth.RequireAdmin)
	api.GET("/:type/:id", resourceHandler.Get)
	api.PUT("/:type/:id", resourceHandler.Update, auth.RequireAdmin)
	api.DELETE("/:type/:id", resourceHandler.Delete, auth.RequireAdmin)
	api.POST("/:type/:id/archive", resourceHandler.Archive, auth.RequireAdmin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
