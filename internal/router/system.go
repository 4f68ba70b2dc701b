package router

import (
	"net/http"

	"github.com/deppfellow/org-directory/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not directory data:
// liveness, deployment marker, health, docs and static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.System.Handler, h.System.Root, http.StatusOK))
	r.GET("/deploy", handler.Handle(h.System.Handler, h.System.Deploy, http.StatusOK))

	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
