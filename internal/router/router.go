// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the routes,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/qrgen/internal/handler"
	"github.com/deppfellow/qrgen/internal/middleware"
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware stack, the
// global error handler and every route.
//
// Order matters:
//   - RequestID first, so everything after it can log the ID
//   - New Relic before EnhanceTracing/EnhanceContext, so the transaction exists
//   - EnhanceContext before RequestLogger, so the API line has request fields
//   - Recover innermost, so a panic still produces a logged 500
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.BodyLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerQRRoutes(router, h)

	return router
}
