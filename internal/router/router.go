// Package router builds the Echo instance: middleware order, the global
// error handler and route registration.
package router

import (
	"github.com/deppfellow/org-directory/internal/handler"
	"github.com/deppfellow/org-directory/internal/middleware"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes. Order matters: the request id and
// the New Relic transaction must exist before the request logger is built,
// and the request logger must exist before anything logs.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mws := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		mws.Tracing.NewRelicMiddleware(),
		mws.Tracing.EnhanceTracing(),
		mws.ContextEnhancer.EnhanceContext(),
		mws.Global.RequestLogger(),
		mws.Global.Recover(),
		mws.Global.CORS(),
		mws.Global.Secure(),
	)

	registerSystemRoutes(router, h)
	registerDirectoryRoutes(router, h)
	registerSectionRoutes(router, h)
	registerDivisionRoutes(router, h)

	return router
}
